package formatter

import (
	"strconv"
	"time"

	"github.com/alexanderramin/iamonit/internal/app"
	"github.com/alexanderramin/iamonit/internal/domain"
	"github.com/alexanderramin/iamonit/internal/stats"
)

// TaskHeaders are the columns of a task listing, shared with the board.
var TaskHeaders = []string{"ID", "DUE", "WHEN", "COURSE", "TITLE", "TYPE", "STATUS", "PRIORITY", "SUBMITTED"}

// TaskCells returns the plain-text cells of one task row.
func TaskCells(v app.TaskView) []string {
	return []string{
		strconv.FormatInt(v.ID, 10),
		DueDate(v.DueDate),
		UrgencyLabel(v.Urgency),
		v.CourseCode,
		v.Title,
		string(v.Type),
		string(v.Status),
		string(v.Priority),
		submittedMark(v.Submission),
	}
}

// FormatTasks renders a task listing with urgency and status colouring.
func FormatTasks(tasks []app.TaskView) string {
	if len(tasks) == 0 {
		return Empty("tasks")
	}
	rows := make([][]string, 0, len(tasks))
	for _, v := range tasks {
		cells := TaskCells(v)
		urgency := UrgencyStyle(v.Urgency.Category)
		cells[0] = Dim(cells[0])
		cells[1] = urgency.Render(cells[1])
		cells[2] = urgency.Render(cells[2])
		cells[3] = StyleBlue.Render(cells[3])
		cells[6] = StatusStyle(v.Status).Render(cells[6])
		cells[7] = PriorityStyle(v.Priority).Render(OrDash(cells[7]))
		if v.Submission == domain.Submitted {
			cells[8] = StyleGreen.Render(cells[8])
		} else {
			cells[8] = Dim(cells[8])
		}
		rows = append(rows, cells)
	}
	return RenderTable(TaskHeaders, rows)
}

// DueDate renders a due date as YYYY-MM-DD, or "-" when the task has none.
func DueDate(d *time.Time) string {
	if d == nil {
		return "-"
	}
	return d.Format(domain.DateLayout)
}

// UrgencyLabel returns the urgency label, or "-" for categories without one.
func UrgencyLabel(u stats.Urgency) string {
	if u.Label == "" {
		return "-"
	}
	return u.Label
}

func submittedMark(m domain.SubmissionMarker) string {
	if m == domain.Submitted {
		return "yes"
	}
	return "no"
}
