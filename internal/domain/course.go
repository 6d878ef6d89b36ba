package domain

import (
	"strings"
	"time"
)

// Course belongs to exactly one Program.
type Course struct {
	ID        int64
	ProgramID int64
	Code      string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Course) Normalize() {
	c.Code = strings.TrimSpace(c.Code)
	c.Name = strings.TrimSpace(c.Name)
}

func (c *Course) Validate() error {
	switch {
	case c.ProgramID <= 0:
		return required("program_id")
	case c.Code == "":
		return required("code")
	case c.Name == "":
		return required("name")
	}
	return nil
}

// Label renders the course the way lists show it: "CS101 - Intro".
func (c *Course) Label() string {
	return c.Code + " - " + c.Name
}
