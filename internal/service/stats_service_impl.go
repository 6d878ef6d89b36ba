package service

import (
	"context"

	"github.com/alexanderramin/iamonit/internal/app"
	"github.com/alexanderramin/iamonit/internal/repository"
	"github.com/alexanderramin/iamonit/internal/stats"
)

type statsService struct {
	tasks repository.TaskRepo
}

func NewStatsService(tasks repository.TaskRepo) StatsService {
	return &statsService{tasks: tasks}
}

// Summary streams the matching tasks through a stats.Aggregator.
func (s *statsService) Summary(ctx context.Context, req app.StatsRequest) (*stats.Summary, error) {
	agg := stats.NewAggregator(app.TodayOr(req.Today))
	filter := repository.TaskFilter{CourseID: req.CourseID, ProgramID: req.ProgramID}
	err := s.tasks.Walk(ctx, filter, func(l repository.TaskListing) error {
		agg.Add(&l.Task, l.CourseCode)
		return nil
	})
	if err != nil {
		return nil, err
	}
	summary := agg.Summary()
	return &summary, nil
}
