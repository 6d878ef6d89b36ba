package repository

import (
	"context"

	"github.com/alexanderramin/iamonit/internal/domain"
)

// CourseListing is a course joined with its program's name.
type CourseListing struct {
	Course      domain.Course
	ProgramName string
}

// TaskListing is a task joined with its course and program, as the task
// table shows it.
type TaskListing struct {
	Task        domain.Task
	CourseCode  string
	CourseName  string
	ProgramID   int64
	ProgramName string
}

// TaskFilter narrows task listings. Set fields combine with AND.
type TaskFilter struct {
	CourseID  *int64
	ProgramID *int64
	Status    domain.TaskStatus
}

type ProgramRepo interface {
	Create(ctx context.Context, p *domain.Program) error
	GetByID(ctx context.Context, id int64) (*domain.Program, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]*domain.Program, error)
	Update(ctx context.Context, p *domain.Program) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type CourseRepo interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, programID *int64) ([]CourseListing, error)
	Update(ctx context.Context, c *domain.Course) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	DeleteByProgram(ctx context.Context, programID int64) (int64, error)
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	Walk(ctx context.Context, f TaskFilter, fn func(TaskListing) error) error
	Update(ctx context.Context, t *domain.Task) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	DeleteByCourse(ctx context.Context, courseID int64) (int64, error)
	DeleteByProgram(ctx context.Context, programID int64) (int64, error)
}
