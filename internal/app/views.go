package app

import (
	"time"

	"github.com/alexanderramin/iamonit/internal/domain"
	"github.com/alexanderramin/iamonit/internal/stats"
)

// CourseView is a course as listed, with its program's name.
type CourseView struct {
	domain.Course
	ProgramName string
}

// TaskView is a task as listed: joined with its course and program and
// labelled with its urgency as of the query's day.
type TaskView struct {
	domain.Task
	CourseCode  string
	CourseName  string
	ProgramID   int64
	ProgramName string
	Urgency     stats.Urgency
}

// TaskQuery narrows a task listing. Set filters combine with AND. Today is
// the reference day for urgency labels; the zero value means now.
type TaskQuery struct {
	CourseID  *int64
	ProgramID *int64
	Status    domain.TaskStatus
	Today     time.Time
}

// StatsRequest scopes a stats summary. Today works as in TaskQuery.
type StatsRequest struct {
	CourseID  *int64
	ProgramID *int64
	Today     time.Time
}

// DeleteResult reports what a cascading delete removed. Deleted is 1 when
// the target existed and 0 otherwise.
type DeleteResult struct {
	Deleted        int64
	CoursesDeleted int64
	TasksDeleted   int64
}

// ImportResult holds the outcome of a program import.
type ImportResult struct {
	Program     *domain.Program
	CourseCount int
	TaskCount   int
}

// TodayOr returns t, or the current time when t is zero.
func TodayOr(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
