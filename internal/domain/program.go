package domain

import (
	"strings"
	"time"
)

// Program is the top-level grouping of courses, e.g. a degree for a term.
type Program struct {
	ID        int64
	Name      string
	College   *string
	Semester  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Normalize trims text fields and nulls empty optionals.
func (p *Program) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.College = OptionalString(p.College)
	p.Semester = OptionalString(p.Semester)
}

func (p *Program) Validate() error {
	if p.Name == "" {
		return required("name")
	}
	return nil
}
