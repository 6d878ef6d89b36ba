package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/iamonit/internal/domain"
)

// GeneratedProgram is an import converted to domain objects. Parent ids are
// unset until the rows above them are inserted.
type GeneratedProgram struct {
	Program *domain.Program
	Courses []GeneratedCourse
}

type GeneratedCourse struct {
	Course *domain.Course
	Tasks  []*domain.Task
}

// TaskCount returns the number of tasks across all courses.
func (g *GeneratedProgram) TaskCount() int {
	n := 0
	for _, c := range g.Courses {
		n += len(c.Tasks)
	}
	return n
}

// Convert transforms a validated ImportSchema into domain objects ready for persistence.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema, now time.Time) (*GeneratedProgram, error) {
	program := &domain.Program{
		Name:      schema.Program.Name,
		College:   schema.Program.College,
		Semester:  schema.Program.Semester,
		CreatedAt: now,
		UpdatedAt: now,
	}
	program.Normalize()

	out := &GeneratedProgram{
		Program: program,
		Courses: make([]GeneratedCourse, 0, len(schema.Courses)),
	}
	for _, c := range schema.Courses {
		course := &domain.Course{
			Code:      c.Code,
			Name:      c.Name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		course.Normalize()

		tasks := make([]*domain.Task, 0, len(c.Tasks))
		for _, ti := range c.Tasks {
			task, err := convertTask(&ti, now)
			if err != nil {
				return nil, fmt.Errorf("course %q task %q: %w", c.Code, ti.Title, err)
			}
			tasks = append(tasks, task)
		}
		out.Courses = append(out.Courses, GeneratedCourse{Course: course, Tasks: tasks})
	}
	return out, nil
}

func convertTask(ti *TaskImport, now time.Time) (*domain.Task, error) {
	status := domain.TaskStatus(ti.Status)
	if status == "" {
		status = domain.StatusNotCompleted
	}

	marker := domain.NotSubmitted
	if ti.SubmissionMarker != "" {
		m, err := domain.ParseSubmissionMarker(ti.SubmissionMarker)
		if err != nil {
			return nil, err
		}
		marker = m
	}

	var due *time.Time
	if ti.DueDate != nil && *ti.DueDate != "" {
		d, err := domain.ParseDate(*ti.DueDate)
		if err != nil {
			return nil, err
		}
		due = &d
	}

	t := &domain.Task{
		Title:      ti.Title,
		Type:       domain.TaskType(ti.Type),
		DueDate:    due,
		Status:     status,
		Priority:   domain.Priority(ti.Priority),
		Weight:     ti.Weight,
		Submission: marker,
		Notes:      ti.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	t.Normalize()
	return t, nil
}
