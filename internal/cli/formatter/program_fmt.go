package formatter

import (
	"strconv"

	"github.com/alexanderramin/iamonit/internal/app"
	"github.com/alexanderramin/iamonit/internal/domain"
)

// FormatPrograms renders programs as a table ordered as given.
func FormatPrograms(programs []*domain.Program) string {
	if len(programs) == 0 {
		return Empty("programs")
	}
	rows := make([][]string, 0, len(programs))
	for _, p := range programs {
		rows = append(rows, []string{
			Dim(strconv.FormatInt(p.ID, 10)),
			Bold(p.Name),
			OrDash(domain.StrOrEmpty(p.College)),
			OrDash(domain.StrOrEmpty(p.Semester)),
		})
	}
	return RenderTable([]string{"ID", "NAME", "COLLEGE", "SEMESTER"}, rows)
}

// FormatCourses renders courses with their program name.
func FormatCourses(courses []app.CourseView) string {
	if len(courses) == 0 {
		return Empty("courses")
	}
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{
			Dim(strconv.FormatInt(c.ID, 10)),
			StyleBlue.Render(c.Code),
			c.Name,
			OrDash(c.ProgramName),
		})
	}
	return RenderTable([]string{"ID", "CODE", "NAME", "PROGRAM"}, rows)
}
