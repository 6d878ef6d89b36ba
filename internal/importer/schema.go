package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level structure of a program import file.
type ImportSchema struct {
	Program ProgramImport  `json:"program" yaml:"program"`
	Courses []CourseImport `json:"courses" yaml:"courses"`
}

// ProgramImport defines the program-level fields in the import file.
type ProgramImport struct {
	Name     string  `json:"name" yaml:"name"`
	College  *string `json:"college,omitempty" yaml:"college,omitempty"`
	Semester *string `json:"semester,omitempty" yaml:"semester,omitempty"`
}

// CourseImport defines a course and its tasks.
type CourseImport struct {
	Code  string       `json:"code" yaml:"code"`
	Name  string       `json:"name" yaml:"name"`
	Tasks []TaskImport `json:"tasks,omitempty" yaml:"tasks,omitempty"`
}

// TaskImport defines a task in the import file. DueDate and Status may be
// omitted.
type TaskImport struct {
	Title            string   `json:"title" yaml:"title"`
	Type             string   `json:"type" yaml:"type"`
	DueDate          *string  `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	Status           string   `json:"status,omitempty" yaml:"status,omitempty"`
	Priority         string   `json:"priority,omitempty" yaml:"priority,omitempty"`
	Weight           *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
	SubmissionMarker string   `json:"submission_marker,omitempty" yaml:"submission_marker,omitempty"`
	Notes            *string  `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// LoadImportSchema reads and parses an import file. The format follows the
// extension: .json, .yaml or .yml.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data, filepath.Ext(path))
}

// ParseImportSchema decodes data in the format named by ext.
func ParseImportSchema(data []byte, ext string) (*ImportSchema, error) {
	var schema ImportSchema
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported import format %q (want .json, .yaml or .yml)", ext)
	}
	return &schema, nil
}
