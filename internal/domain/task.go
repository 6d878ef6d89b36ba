package domain

import (
	"strings"
	"time"
)

// Task is a gradable item with a deadline inside a Course.
type Task struct {
	ID         int64
	CourseID   int64
	Title      string
	Type       TaskType
	DueDate    *time.Time
	Status     TaskStatus
	Priority   Priority
	Weight     *float64
	Submission SubmissionMarker
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (t *Task) Normalize() {
	t.Title = strings.TrimSpace(t.Title)
	t.Notes = OptionalString(t.Notes)
	if t.DueDate != nil {
		d := CalendarDay(*t.DueDate)
		t.DueDate = &d
	}
}

// Validate checks a task supplied for create or full replace. Both require
// every mandatory field, including the due date.
func (t *Task) Validate() error {
	if err := t.validateCommon(); err != nil {
		return err
	}
	if t.DueDate == nil {
		return required("due_date")
	}
	return nil
}

// ValidateImported is Validate without the due date requirement; imported
// syllabus items may be undated.
func (t *Task) ValidateImported() error {
	return t.validateCommon()
}

func (t *Task) validateCommon() error {
	switch {
	case t.CourseID <= 0:
		return required("course_id")
	case t.Title == "":
		return required("title")
	case t.Type == "":
		return required("type")
	case !t.Type.Valid():
		return invalid("type", "must be one of Quiz, Assignment, Exam, Group Project (got %q)", t.Type)
	case t.Status == "":
		return required("status")
	case !t.Status.Valid():
		return invalid("status", "must be one of Not Completed, In progress, Completed (got %q)", t.Status)
	case !t.Priority.Valid():
		return invalid("priority", "must be one of High, Medium, Low (got %q)", t.Priority)
	}
	if t.Weight != nil && !validWeight(*t.Weight) {
		return invalid("weight", "must be between 0 and 100 (got %g)", *t.Weight)
	}
	return nil
}

// validWeight rejects NaN as well as out-of-range values; NaN compares
// false against both bounds.
func validWeight(w float64) bool {
	return w >= 0 && w <= 100
}

func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// TaskPatch carries the fields of a partial update; nil means unchanged.
// ClearPriority and ClearNotes null the field explicitly.
type TaskPatch struct {
	Status        *TaskStatus
	Submission    *SubmissionMarker
	Priority      *Priority
	Notes         *string
	ClearPriority bool
	ClearNotes    bool
}

func (p TaskPatch) Empty() bool {
	return p.Status == nil && p.Submission == nil && p.Priority == nil && p.Notes == nil &&
		!p.ClearPriority && !p.ClearNotes
}

// Apply writes the patch onto t and revalidates the enum fields it touched.
func (p TaskPatch) Apply(t *Task, now time.Time) error {
	if p.Status != nil {
		if !p.Status.Valid() {
			return invalid("status", "must be one of Not Completed, In progress, Completed (got %q)", *p.Status)
		}
		t.Status = *p.Status
	}
	if p.Submission != nil {
		t.Submission = *p.Submission
	}
	if p.ClearPriority {
		t.Priority = PriorityNone
	} else if p.Priority != nil {
		if !p.Priority.Valid() {
			return invalid("priority", "must be one of High, Medium, Low (got %q)", *p.Priority)
		}
		t.Priority = *p.Priority
	}
	if p.ClearNotes {
		t.Notes = nil
	} else if p.Notes != nil {
		t.Notes = OptionalString(p.Notes)
	}
	t.UpdatedAt = now
	return nil
}
