package domain

import (
	"fmt"
	"time"
)

// DateLayout is the storage and wire format for due dates.
const DateLayout = "2006-01-02"

// CalendarDay strips the time of day from t, keeping t's own calendar date,
// and returns it as UTC midnight so day differences are exact multiples of
// 24h.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD due date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween returns to - from in whole calendar days. time.Duration
// saturates at about 292 years, so it compares day numbers instead.
func DaysBetween(from, to time.Time) int {
	return int(dayNumber(to) - dayNumber(from))
}

// dayNumber counts days since the Unix epoch. CalendarDay is UTC midnight,
// so the division is exact for dates on either side of 1970.
func dayNumber(t time.Time) int64 {
	return CalendarDay(t).Unix() / secondsPerDay
}
