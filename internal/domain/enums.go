package domain

type TaskType string

const (
	TaskQuiz         TaskType = "Quiz"
	TaskAssignment   TaskType = "Assignment"
	TaskExam         TaskType = "Exam"
	TaskGroupProject TaskType = "Group Project"
)

// TaskTypes lists the accepted task types in display order.
var TaskTypes = []TaskType{TaskQuiz, TaskAssignment, TaskExam, TaskGroupProject}

func (t TaskType) Valid() bool {
	switch t {
	case TaskQuiz, TaskAssignment, TaskExam, TaskGroupProject:
		return true
	}
	return false
}

type TaskStatus string

const (
	StatusNotCompleted TaskStatus = "Not Completed"
	StatusInProgress   TaskStatus = "In progress"
	StatusCompleted    TaskStatus = "Completed"
)

// TaskStatuses lists the accepted statuses in workflow order.
var TaskStatuses = []TaskStatus{StatusNotCompleted, StatusInProgress, StatusCompleted}

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusNotCompleted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Next returns the status after s in workflow order, wrapping around.
func (s TaskStatus) Next() TaskStatus {
	for i, st := range TaskStatuses {
		if st == s {
			return TaskStatuses[(i+1)%len(TaskStatuses)]
		}
	}
	return StatusNotCompleted
}

// Priority is optional on a task; the zero value means none.
type Priority string

const (
	PriorityNone   Priority = ""
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

func (p Priority) Valid() bool {
	switch p {
	case PriorityNone, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// SubmissionMarker records whether a task has been handed in.
type SubmissionMarker int

const (
	NotSubmitted SubmissionMarker = iota
	Submitted
)

const (
	submittedText    = "submitted"
	notSubmittedText = "not_submitted"
)

func (m SubmissionMarker) String() string {
	if m == Submitted {
		return submittedText
	}
	return notSubmittedText
}

// ParseSubmissionMarker accepts only the canonical forms produced by String.
func ParseSubmissionMarker(s string) (SubmissionMarker, error) {
	switch s {
	case submittedText:
		return Submitted, nil
	case notSubmittedText:
		return NotSubmitted, nil
	}
	return NotSubmitted, invalid("submission_marker", "must be %q or %q (got %q)", submittedText, notSubmittedText, s)
}

func (m SubmissionMarker) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *SubmissionMarker) UnmarshalText(b []byte) error {
	parsed, err := ParseSubmissionMarker(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Toggle flips the marker.
func (m SubmissionMarker) Toggle() SubmissionMarker {
	if m == Submitted {
		return NotSubmitted
	}
	return Submitted
}
