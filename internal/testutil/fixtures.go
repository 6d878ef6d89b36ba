package testutil

import (
	"time"

	"github.com/alexanderramin/iamonit/internal/domain"
)

// Program options
type ProgramOption func(*domain.Program)

func WithCollege(c string) ProgramOption {
	return func(p *domain.Program) {
		p.College = &c
	}
}

func WithSemester(s string) ProgramOption {
	return func(p *domain.Program) {
		p.Semester = &s
	}
}

func NewTestProgram(name string, opts ...ProgramOption) *domain.Program {
	now := time.Now().UTC().Truncate(time.Second)
	p := &domain.Program{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func NewTestCourse(programID int64, code, name string) *domain.Course {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Course{
		ProgramID: programID,
		Code:      code,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Task options
type TaskOption func(*domain.Task)

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		day := domain.CalendarDay(d)
		t.DueDate = &day
	}
}

// WithNoDueDate leaves the task undated, as an imported task may be.
func WithNoDueDate() TaskOption {
	return func(t *domain.Task) {
		t.DueDate = nil
	}
}

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithTaskType(tt domain.TaskType) TaskOption {
	return func(t *domain.Task) {
		t.Type = tt
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithWeight(w float64) TaskOption {
	return func(t *domain.Task) {
		t.Weight = &w
	}
}

func WithSubmission(m domain.SubmissionMarker) TaskOption {
	return func(t *domain.Task) {
		t.Submission = m
	}
}

func WithNotes(n string) TaskOption {
	return func(t *domain.Task) {
		t.Notes = &n
	}
}

// NewTestTask returns an Assignment due a week from now that has not been
// started.
func NewTestTask(courseID int64, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC().Truncate(time.Second)
	due := domain.CalendarDay(now.AddDate(0, 0, 7))
	t := &domain.Task{
		CourseID:  courseID,
		Title:     title,
		Type:      domain.TaskAssignment,
		DueDate:   &due,
		Status:    domain.StatusNotCompleted,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
