package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/iamonit/internal/app"
	"github.com/alexanderramin/iamonit/internal/db"
	"github.com/alexanderramin/iamonit/internal/domain"
	"github.com/alexanderramin/iamonit/internal/repository"
	"github.com/alexanderramin/iamonit/internal/stats"
)

type taskService struct {
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	cascade  cascader
	observer UseCaseObserver
}

func NewTaskService(tasks repository.TaskRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TaskService {
	obs := useCaseObserverOrNoop(observers)
	return &taskService{
		tasks:    tasks,
		uow:      uow,
		cascade:  cascader{uow: uow, observer: obs},
		observer: obs,
	}
}

// Create inserts a task under an existing course. An unset status means Not
// Completed; the submission marker defaults to not submitted.
func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.Status == "" {
		t.Status = domain.StatusNotCompleted
	}
	t.Normalize()
	if err := t.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := requireCourse(ctx, tx, t.CourseID); err != nil {
			return err
		}
		return repository.NewSQLiteTaskRepo(tx).Create(ctx, t)
	})
}

func (s *taskService) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context, q app.TaskQuery) ([]app.TaskView, error) {
	if q.Status != "" && !q.Status.Valid() {
		return nil, &domain.ValidationError{
			Field:  "status",
			Reason: fmt.Sprintf("must be one of Not Completed, In progress, Completed (got %q)", q.Status),
		}
	}
	today := app.TodayOr(q.Today)

	views := []app.TaskView{}
	filter := repository.TaskFilter{CourseID: q.CourseID, ProgramID: q.ProgramID, Status: q.Status}
	err := s.tasks.Walk(ctx, filter, func(l repository.TaskListing) error {
		views = append(views, app.TaskView{
			Task:        l.Task,
			CourseCode:  l.CourseCode,
			CourseName:  l.CourseName,
			ProgramID:   l.ProgramID,
			ProgramName: l.ProgramName,
			Urgency:     stats.Classify(l.Task.DueDate, today),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

// Update replaces the whole record: optional fields left unset are cleared.
func (s *taskService) Update(ctx context.Context, t *domain.Task) (n int64, err error) {
	t.Normalize()
	if err := t.Validate(); err != nil {
		return 0, err
	}
	t.UpdatedAt = time.Now().UTC()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := requireCourse(ctx, tx, t.CourseID); err != nil {
			return err
		}
		var err error
		n, err = repository.NewSQLiteTaskRepo(tx).Update(ctx, t)
		return err
	})
	return n, err
}

// Patch changes only the fields set in patch, reading and writing the task
// in one transaction.
func (s *taskService) Patch(ctx context.Context, id int64, patch domain.TaskPatch) (n int64, err error) {
	if patch.Empty() {
		return 0, &domain.ValidationError{
			Field:  "patch",
			Reason: "must set at least one of status, submission_marker, priority, notes",
		}
	}
	startedAt := time.Now().UTC()
	fields := map[string]any{"task_id": id}
	defer observe(ctx, s.observer, "patch-task", startedAt, fields, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteTaskRepo(tx)
		t, err := repo.GetByID(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := patch.Apply(t, time.Now().UTC()); err != nil {
			return err
		}
		n, err = repo.Update(ctx, t)
		return err
	})
	fields["updated"] = n
	return n, err
}

func (s *taskService) Delete(ctx context.Context, id int64) (*app.DeleteResult, error) {
	return s.cascade.deleteTask(ctx, id)
}
