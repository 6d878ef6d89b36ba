package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/iamonit/internal/stats"
)

// SummaryLine renders the headline counts on one line, as the board shows
// them above the task table.
func SummaryLine(s *stats.Summary) string {
	overdue := fmt.Sprintf("%d overdue", s.Overdue)
	if s.Overdue > 0 {
		overdue = StyleRed.Render(overdue)
	}
	soon := fmt.Sprintf("%d due soon", s.DueSoon)
	if s.DueSoon > 0 {
		soon = StyleYellow.Render(soon)
	}
	return strings.Join([]string{
		fmt.Sprintf("%d tasks", s.Total),
		overdue,
		soon,
		StyleGreen.Render(fmt.Sprintf("%d completed (%d%%)", s.Completed, s.CompletionRate)),
	}, Dim(" · "))
}

// FormatSummary renders the stats box followed by the per-course table.
func FormatSummary(s *stats.Summary) string {
	var b strings.Builder
	b.WriteString(RenderBox("Stats as of "+s.Today, SummaryLine(s)))
	b.WriteString("\n\n")

	if len(s.Courses) == 0 {
		b.WriteString(Empty("tasks"))
		return b.String()
	}
	rows := make([][]string, 0, len(s.Courses))
	for _, c := range s.Courses {
		rows = append(rows, []string{
			StyleBlue.Render(c.CourseCode),
			strconv.Itoa(c.Total),
			strconv.Itoa(c.Completed),
			fmt.Sprintf("%d%%", c.CompletionPercent),
		})
	}
	b.WriteString(RenderTableAligned(
		[]string{"COURSE", "TASKS", "DONE", "RATE"},
		rows,
		[]bool{false, true, true, true},
	))
	return b.String()
}
