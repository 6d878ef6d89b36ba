package importer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptrStr(s string) *string     { return &s }
func ptrFloat(f float64) *float64 { return &f }

func validMinimalSchema() *ImportSchema {
	return &ImportSchema{
		Program: ProgramImport{Name: "BSc Computing"},
		Courses: []CourseImport{
			{Code: "CS101", Name: "Programming", Tasks: []TaskImport{
				{Title: "Quiz 1", Type: "Quiz", DueDate: ptrStr("2026-11-02")},
			}},
		},
	}
}

func TestValidateImportSchema_ValidMinimal(t *testing.T) {
	errs := ValidateImportSchema(validMinimalSchema())
	assert.Empty(t, errs)
}

func TestValidateImportSchema_ValidFull(t *testing.T) {
	schema := &ImportSchema{
		Program: ProgramImport{Name: "BSc", College: ptrStr("Engineering"), Semester: ptrStr("Fall")},
		Courses: []CourseImport{
			{Code: "CS101", Name: "Programming", Tasks: []TaskImport{
				{
					Title:            "Project",
					Type:             "Group Project",
					DueDate:          ptrStr("2026-12-01"),
					Status:           "In progress",
					Priority:         "High",
					Weight:           ptrFloat(30),
					SubmissionMarker: "submitted",
					Notes:            ptrStr("team of 3"),
				},
				{Title: "Reading list", Type: "Assignment"},
			}},
			{Code: "MATH200", Name: "Calculus"},
		},
	}
	assert.Empty(t, ValidateImportSchema(schema))
}

func TestValidateImportSchema_MissingFields(t *testing.T) {
	schema := &ImportSchema{
		Courses: []CourseImport{
			{Tasks: []TaskImport{{}}},
		},
	}

	errs := ValidateImportSchema(schema)
	msgs := errorStrings(errs)
	assert.Contains(t, msgs, "program.name is required")
	assert.Contains(t, msgs, "courses[0].code is required")
	assert.Contains(t, msgs, "courses[0].name is required")
	assert.Contains(t, msgs, "courses[0].tasks[0].title is required")
	assert.Contains(t, msgs, "courses[0].tasks[0].type is required")
}

func TestValidateImportSchema_DuplicateCourseCode(t *testing.T) {
	schema := validMinimalSchema()
	schema.Courses = append(schema.Courses, CourseImport{Code: "CS101", Name: "Again"})

	errs := ValidateImportSchema(schema)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "duplicate code")
}

func TestValidateImportSchema_InvalidEnums(t *testing.T) {
	schema := validMinimalSchema()
	schema.Courses[0].Tasks = []TaskImport{{
		Title:            "Bad",
		Type:             "Essay",
		Status:           "done",
		Priority:         "urgent",
		Weight:           ptrFloat(120),
		SubmissionMarker: "Yes",
		DueDate:          ptrStr("11/02/2026"),
	}}

	errs := ValidateImportSchema(schema)
	assert.Len(t, errs, 6, "every bad field is reported")
}

func TestValidateImportSchema_NonFiniteWeight(t *testing.T) {
	for _, w := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		schema := validMinimalSchema()
		schema.Courses[0].Tasks[0].Weight = ptrFloat(w)

		errs := ValidateImportSchema(schema)
		if assert.Len(t, errs, 1, "weight %g", w) {
			assert.Contains(t, errs[0].Error(), "courses[0].tasks[0].weight")
		}
	}
}

func TestValidateImportSchema_UndatedTaskAllowed(t *testing.T) {
	schema := validMinimalSchema()
	schema.Courses[0].Tasks[0].DueDate = nil

	assert.Empty(t, ValidateImportSchema(schema))
}

func errorStrings(errs []error) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Error()
	}
	return out
}
