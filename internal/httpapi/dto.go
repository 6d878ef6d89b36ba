package httpapi

import (
	"time"

	"github.com/alexanderramin/iamonit/internal/app"
	"github.com/alexanderramin/iamonit/internal/domain"
	"github.com/alexanderramin/iamonit/internal/stats"
)

type programJSON struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	College   *string `json:"college"`
	Semester  *string `json:"semester"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func toProgramJSON(p *domain.Program) programJSON {
	return programJSON{
		ID:        p.ID,
		Name:      p.Name,
		College:   p.College,
		Semester:  p.Semester,
		CreatedAt: formatTimestamp(p.CreatedAt),
		UpdatedAt: formatTimestamp(p.UpdatedAt),
	}
}

type courseJSON struct {
	ID          int64  `json:"id"`
	ProgramID   int64  `json:"program_id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	ProgramName string `json:"program_name,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func toCourseJSON(c *domain.Course, programName string) courseJSON {
	return courseJSON{
		ID:          c.ID,
		ProgramID:   c.ProgramID,
		Code:        c.Code,
		Name:        c.Name,
		ProgramName: programName,
		CreatedAt:   formatTimestamp(c.CreatedAt),
		UpdatedAt:   formatTimestamp(c.UpdatedAt),
	}
}

type taskJSON struct {
	ID               int64                   `json:"id"`
	CourseID         int64                   `json:"course_id"`
	Title            string                  `json:"title"`
	Type             domain.TaskType         `json:"type"`
	DueDate          *string                 `json:"due_date"`
	Status           domain.TaskStatus       `json:"status"`
	Priority         *string                 `json:"priority"`
	Weight           *float64                `json:"weight"`
	SubmissionMarker domain.SubmissionMarker `json:"submission_marker"`
	Notes            *string                 `json:"notes"`
	CreatedAt        string                  `json:"created_at"`
	UpdatedAt        string                  `json:"updated_at"`

	CourseCode  string         `json:"course_code,omitempty"`
	CourseName  string         `json:"course_name,omitempty"`
	ProgramID   int64          `json:"program_id,omitempty"`
	ProgramName string         `json:"program_name,omitempty"`
	Urgency     *stats.Urgency `json:"urgency,omitempty"`
}

func toTaskJSON(t *domain.Task) taskJSON {
	out := taskJSON{
		ID:               t.ID,
		CourseID:         t.CourseID,
		Title:            t.Title,
		Type:             t.Type,
		Status:           t.Status,
		Weight:           t.Weight,
		SubmissionMarker: t.Submission,
		Notes:            t.Notes,
		CreatedAt:        formatTimestamp(t.CreatedAt),
		UpdatedAt:        formatTimestamp(t.UpdatedAt),
	}
	if t.DueDate != nil {
		d := t.DueDate.Format(domain.DateLayout)
		out.DueDate = &d
	}
	if t.Priority != domain.PriorityNone {
		p := string(t.Priority)
		out.Priority = &p
	}
	return out
}

func toTaskViewJSON(v *app.TaskView) taskJSON {
	out := toTaskJSON(&v.Task)
	out.CourseCode = v.CourseCode
	out.CourseName = v.CourseName
	out.ProgramID = v.ProgramID
	out.ProgramName = v.ProgramName
	u := v.Urgency
	out.Urgency = &u
	return out
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

type programRequest struct {
	Name     string  `json:"name"`
	College  *string `json:"college"`
	Semester *string `json:"semester"`
}

func (r programRequest) toDomain(id int64) *domain.Program {
	return &domain.Program{ID: id, Name: r.Name, College: r.College, Semester: r.Semester}
}

type courseRequest struct {
	ProgramID int64  `json:"program_id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
}

func (r courseRequest) toDomain(id int64) *domain.Course {
	return &domain.Course{ID: id, ProgramID: r.ProgramID, Code: r.Code, Name: r.Name}
}

// taskRequest is the full record accepted by create and replace. An empty
// priority string means none.
type taskRequest struct {
	CourseID         int64                    `json:"course_id"`
	Title            string                   `json:"title"`
	Type             domain.TaskType          `json:"type"`
	DueDate          *string                  `json:"due_date"`
	Status           domain.TaskStatus        `json:"status"`
	Priority         *string                  `json:"priority"`
	Weight           *float64                 `json:"weight"`
	SubmissionMarker *domain.SubmissionMarker `json:"submission_marker"`
	Notes            *string                  `json:"notes"`
}

func (r taskRequest) toDomain(id int64) (*domain.Task, error) {
	t := &domain.Task{
		ID:       id,
		CourseID: r.CourseID,
		Title:    r.Title,
		Type:     r.Type,
		Status:   r.Status,
		Weight:   r.Weight,
		Notes:    r.Notes,
	}
	if r.DueDate != nil && *r.DueDate != "" {
		d, err := domain.ParseDate(*r.DueDate)
		if err != nil {
			return nil, &domain.ValidationError{Field: "due_date", Reason: err.Error()}
		}
		t.DueDate = &d
	}
	if r.Priority != nil {
		t.Priority = domain.Priority(*r.Priority)
	}
	if r.SubmissionMarker != nil {
		t.Submission = *r.SubmissionMarker
	}
	return t, nil
}

// taskPatchRequest carries a partial update. An empty priority or notes
// string clears the field.
type taskPatchRequest struct {
	Status           *domain.TaskStatus       `json:"status"`
	SubmissionMarker *domain.SubmissionMarker `json:"submission_marker"`
	Priority         *string                  `json:"priority"`
	Notes            *string                  `json:"notes"`
}

func (r taskPatchRequest) toDomain() domain.TaskPatch {
	p := domain.TaskPatch{Status: r.Status, Submission: r.SubmissionMarker}
	if r.Priority != nil {
		if *r.Priority == "" {
			p.ClearPriority = true
		} else {
			p.Priority = domain.Ptr(domain.Priority(*r.Priority))
		}
	}
	if r.Notes != nil {
		if *r.Notes == "" {
			p.ClearNotes = true
		} else {
			p.Notes = r.Notes
		}
	}
	return p
}
