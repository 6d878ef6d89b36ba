package stats

import (
	"fmt"
	"time"

	"github.com/alexanderramin/iamonit/internal/domain"
)

// Category buckets a task by how close its due date is.
type Category string

const (
	CategoryOverdue  Category = "overdue"
	CategoryToday    Category = "today"
	CategorySoon     Category = "soon"
	CategoryUpcoming Category = "upcoming"
	CategoryNormal   Category = "normal"
	CategoryNone     Category = "none"
)

// Urgency is the derived due-date presentation of a task. It is computed on
// every read and never stored.
type Urgency struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
}

// DueSoonWindow is the inclusive number of days ahead that count as due soon.
const DueSoonWindow = 7

// Classify labels a due date relative to today. Both sides are reduced to
// their calendar day first.
func Classify(due *time.Time, today time.Time) Urgency {
	if due == nil {
		return Urgency{Category: CategoryNone}
	}
	diff := domain.DaysBetween(today, *due)
	switch {
	case diff < 0:
		return Urgency{Category: CategoryOverdue, Label: fmt.Sprintf("%d day(s) overdue", -diff)}
	case diff == 0:
		return Urgency{Category: CategoryToday, Label: "Today"}
	case diff == 1:
		return Urgency{Category: CategorySoon, Label: "Tomorrow"}
	case diff <= DueSoonWindow:
		return Urgency{Category: CategoryUpcoming, Label: fmt.Sprintf("In %d days", diff)}
	default:
		return Urgency{Category: CategoryNormal}
	}
}
