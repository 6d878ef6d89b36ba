package importer

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/iamonit/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if strings.TrimSpace(schema.Program.Name) == "" {
		errs = append(errs, fmt.Errorf("program.name is required"))
	}

	codes := make(map[string]bool)
	for i, c := range schema.Courses {
		prefix := fmt.Sprintf("courses[%d]", i)
		code := strings.TrimSpace(c.Code)

		if code == "" {
			errs = append(errs, fmt.Errorf("%s.code is required", prefix))
		} else if codes[code] {
			errs = append(errs, fmt.Errorf("%s.code: duplicate code %q", prefix, code))
		} else {
			codes[code] = true
		}
		if strings.TrimSpace(c.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}

		for j, t := range c.Tasks {
			errs = append(errs, validateTask(fmt.Sprintf("%s.tasks[%d]", prefix, j), &t)...)
		}
	}

	return errs
}

func validateTask(prefix string, t *TaskImport) []error {
	var errs []error

	if strings.TrimSpace(t.Title) == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", prefix))
	}
	if t.Type == "" {
		errs = append(errs, fmt.Errorf("%s.type is required", prefix))
	} else if !domain.TaskType(t.Type).Valid() {
		errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, t.Type))
	}
	if t.Status != "" && !domain.TaskStatus(t.Status).Valid() {
		errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, t.Status))
	}
	if !domain.Priority(t.Priority).Valid() {
		errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", prefix, t.Priority))
	}
	if t.Weight != nil && (math.IsNaN(*t.Weight) || *t.Weight < 0 || *t.Weight > 100) {
		errs = append(errs, fmt.Errorf("%s.weight must be between 0 and 100", prefix))
	}
	if t.SubmissionMarker != "" {
		if _, err := domain.ParseSubmissionMarker(t.SubmissionMarker); err != nil {
			errs = append(errs, fmt.Errorf("%s.submission_marker: invalid value %q", prefix, t.SubmissionMarker))
		}
	}
	if t.DueDate != nil && *t.DueDate != "" {
		if _, err := domain.ParseDate(*t.DueDate); err != nil {
			errs = append(errs, fmt.Errorf("%s.due_date: invalid date format %q (expected YYYY-MM-DD)", prefix, *t.DueDate))
		}
	}

	return errs
}
