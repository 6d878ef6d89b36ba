package service

import (
	"context"

	"github.com/alexanderramin/iamonit/internal/app"
	"github.com/alexanderramin/iamonit/internal/domain"
	"github.com/alexanderramin/iamonit/internal/importer"
	"github.com/alexanderramin/iamonit/internal/stats"
)

// Update and Patch methods return the number of rows changed: 1, or 0 when
// the target id does not exist.

type ProgramService interface {
	Create(ctx context.Context, p *domain.Program) error
	GetByID(ctx context.Context, id int64) (*domain.Program, error)
	List(ctx context.Context) ([]*domain.Program, error)
	Update(ctx context.Context, p *domain.Program) (int64, error)
	Delete(ctx context.Context, id int64) (*app.DeleteResult, error)
}

type CourseService interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
	List(ctx context.Context, programID *int64) ([]app.CourseView, error)
	Update(ctx context.Context, c *domain.Course) (int64, error)
	Delete(ctx context.Context, id int64) (*app.DeleteResult, error)
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context, q app.TaskQuery) ([]app.TaskView, error)
	Update(ctx context.Context, t *domain.Task) (int64, error)
	Patch(ctx context.Context, id int64, patch domain.TaskPatch) (int64, error)
	Delete(ctx context.Context, id int64) (*app.DeleteResult, error)
}

type StatsService interface {
	Summary(ctx context.Context, req app.StatsRequest) (*stats.Summary, error)
}

type ImportService interface {
	ImportProgram(ctx context.Context, filePath string) (*app.ImportResult, error)
	ImportProgramFromSchema(ctx context.Context, schema *importer.ImportSchema) (*app.ImportResult, error)
}
