// Package stats derives dashboard figures from task rows: completion and
// deadline counts, and the per-task due-date urgency.
package stats

import (
	"sort"
	"time"

	"github.com/alexanderramin/iamonit/internal/domain"
)

// CourseSummary is the completion tally of one course.
type CourseSummary struct {
	CourseID          int64  `json:"course_id"`
	CourseCode        string `json:"course_code"`
	Total             int    `json:"total"`
	Completed         int    `json:"completed"`
	CompletionPercent int    `json:"completion_percent"`
}

// Summary is the aggregate over every task fed to an Aggregator.
type Summary struct {
	Today          string          `json:"today"`
	Total          int             `json:"total"`
	Overdue        int             `json:"overdue"`
	DueSoon        int             `json:"due_soon"`
	Completed      int             `json:"completed"`
	CompletionRate int             `json:"completion_rate"`
	Courses        []CourseSummary `json:"courses"`
}

// Aggregator accumulates task counts one row at a time. The zero value is not
// usable; construct it with NewAggregator.
type Aggregator struct {
	today   time.Time
	summary Summary
	courses map[int64]*CourseSummary
	order   []int64
}

func NewAggregator(today time.Time) *Aggregator {
	day := domain.CalendarDay(today)
	return &Aggregator{
		today:   day,
		summary: Summary{Today: day.Format(domain.DateLayout)},
		courses: make(map[int64]*CourseSummary),
	}
}

// Add counts one task. courseCode labels the per-course entry the first
// time the course is seen.
func (a *Aggregator) Add(t *domain.Task, courseCode string) {
	s := &a.summary
	s.Total++

	cs, ok := a.courses[t.CourseID]
	if !ok {
		cs = &CourseSummary{CourseID: t.CourseID, CourseCode: courseCode}
		a.courses[t.CourseID] = cs
		a.order = append(a.order, t.CourseID)
	}
	cs.Total++

	if t.IsCompleted() {
		s.Completed++
		cs.Completed++
		return
	}
	if t.DueDate == nil {
		return
	}
	diff := domain.DaysBetween(a.today, *t.DueDate)
	switch {
	case diff < 0:
		s.Overdue++
	case diff <= DueSoonWindow:
		s.DueSoon++
	}
}

// Summary returns the totals so far with courses ordered by code.
func (a *Aggregator) Summary() Summary {
	out := a.summary
	out.CompletionRate = Percent(out.Completed, out.Total)
	out.Courses = make([]CourseSummary, 0, len(a.order))
	for _, id := range a.order {
		cs := *a.courses[id]
		cs.CompletionPercent = Percent(cs.Completed, cs.Total)
		out.Courses = append(out.Courses, cs)
	}
	sort.Slice(out.Courses, func(i, j int) bool {
		ci, cj := out.Courses[i], out.Courses[j]
		if ci.CourseCode != cj.CourseCode {
			return ci.CourseCode < cj.CourseCode
		}
		return ci.CourseID < cj.CourseID
	})
	return out
}

// Percent returns part/total as a whole percentage rounded half up, or 0
// when total is 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return (part*200 + total) / (2 * total)
}
