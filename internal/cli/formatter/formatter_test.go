package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/iamonit/internal/app"
	"github.com/alexanderramin/iamonit/internal/domain"
	"github.com/alexanderramin/iamonit/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"ID", "NAME"},
		[][]string{{"1", "Short"}, {"10", "A longer name"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID  NAME", lines[0])
	assert.Equal(t, "──  ─────────────", lines[1])
	assert.Equal(t, "1   Short", lines[2])
	assert.Equal(t, "10  A longer name", lines[3])
}

func TestRenderTableAligned_RightAlignsCounts(t *testing.T) {
	out := stripANSI(RenderTableAligned(
		[]string{"COURSE", "TASKS"},
		[][]string{{"CS101", "3"}, {"MATH200", "12"}},
		[]bool{false, true},
	))
	assert.Contains(t, out, "CS101        3\n")
	assert.Contains(t, out, "MATH200     12\n")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestFormatPrograms(t *testing.T) {
	college := "Engineering"
	out := stripANSI(FormatPrograms([]*domain.Program{
		{ID: 1, Name: "BSc Computer Science", College: &college},
	}))
	assert.Contains(t, out, "BSc Computer Science")
	assert.Contains(t, out, "Engineering")
	assert.Contains(t, out, "SEMESTER")

	assert.Equal(t, "No programs yet.\n", stripANSI(FormatPrograms(nil)))
}

func TestFormatCourses_ShowsProgramName(t *testing.T) {
	out := stripANSI(FormatCourses([]app.CourseView{
		{Course: domain.Course{ID: 4, ProgramID: 1, Code: "CS101", Name: "Intro"}, ProgramName: "BSc CS"},
	}))
	assert.Contains(t, out, "CS101")
	assert.Contains(t, out, "BSc CS")
}

func TestFormatTasks(t *testing.T) {
	due := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	tasks := []app.TaskView{
		{
			Task: domain.Task{
				ID: 7, Title: "Problem set 3", Type: domain.TaskAssignment, DueDate: &due,
				Status: domain.StatusInProgress, Priority: domain.PriorityHigh,
			},
			CourseCode: "CS101",
			Urgency:    stats.Urgency{Category: stats.CategoryOverdue, Label: "1 day(s) overdue"},
		},
		{
			Task:       domain.Task{ID: 8, Title: "Reading", Type: domain.TaskQuiz, Status: domain.StatusCompleted, Submission: domain.Submitted},
			CourseCode: "CS101",
			Urgency:    stats.Urgency{Category: stats.CategoryNone},
		},
	}
	out := stripANSI(FormatTasks(tasks))

	assert.Contains(t, out, "2025-06-09")
	assert.Contains(t, out, "1 day(s) overdue")
	assert.Contains(t, out, "Problem set 3")
	assert.Contains(t, out, "In progress")
	assert.Contains(t, out, "High")
	assert.Contains(t, out, "yes")
	assert.Less(t, strings.Index(out, "Problem set 3"), strings.Index(out, "Reading"))
}

func TestTaskCells_UndatedTask(t *testing.T) {
	cells := TaskCells(app.TaskView{Task: domain.Task{ID: 3, Title: "Essay"}})
	assert.Equal(t, "-", cells[1])
	assert.Equal(t, "-", cells[2])
	assert.Equal(t, "no", cells[8])
}

func TestFormatSummary(t *testing.T) {
	out := stripANSI(FormatSummary(&stats.Summary{
		Today: "2025-06-10", Total: 3, Overdue: 1, DueSoon: 1, Completed: 1, CompletionRate: 33,
		Courses: []stats.CourseSummary{{CourseID: 1, CourseCode: "CS101", Total: 3, Completed: 1, CompletionPercent: 33}},
	}))
	assert.Contains(t, out, "STATS AS OF 2025-06-10")
	assert.Contains(t, out, "3 tasks")
	assert.Contains(t, out, "1 overdue")
	assert.Contains(t, out, "1 due soon")
	assert.Contains(t, out, "1 completed (33%)")
	assert.Contains(t, out, "CS101")
	assert.Contains(t, out, "33%")
}

func TestFormatSummary_Empty(t *testing.T) {
	out := stripANSI(FormatSummary(&stats.Summary{Today: "2025-06-10"}))
	assert.Contains(t, out, "0 tasks")
	assert.Contains(t, out, "No tasks yet.")
}
