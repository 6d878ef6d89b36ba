package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/iamonit/internal/app"
	"github.com/alexanderramin/iamonit/internal/domain"
	"github.com/alexanderramin/iamonit/internal/importer"
	"github.com/alexanderramin/iamonit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validImportSchema() *importer.ImportSchema {
	return &importer.ImportSchema{
		Program: importer.ProgramImport{Name: "BSc Computing", Semester: strPtr("Fall 2026")},
		Courses: []importer.CourseImport{
			{Code: "CS101", Name: "Programming", Tasks: []importer.TaskImport{
				{Title: "Quiz 1", Type: "Quiz", DueDate: strPtr("2026-11-02")},
				{Title: "Reading", Type: "Assignment"},
			}},
			{Code: "MATH200", Name: "Calculus", Tasks: []importer.TaskImport{
				{Title: "Midterm", Type: "Exam", DueDate: strPtr("2026-11-20"), Status: "In progress"},
			}},
		},
	}
}

func TestImportProgram_FromSchema(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewImportService(testutil.NewTestUoW(env.db))

	res, err := svc.ImportProgramFromSchema(ctx, validImportSchema())
	require.NoError(t, err)
	assert.Equal(t, 2, res.CourseCount)
	assert.Equal(t, 3, res.TaskCount)
	assert.NotZero(t, res.Program.ID)

	views, err := env.tasks.List(ctx, app.TaskQuery{ProgramID: &res.Program.ID})
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "Quiz 1", views[0].Title)
	assert.Equal(t, "Midterm", views[1].Title)
	assert.Equal(t, "Reading", views[2].Title, "undated imports sort last")
	assert.Nil(t, views[2].DueDate)
	assert.Equal(t, "MATH200", views[1].CourseCode)
}

func TestImportProgram_FromYAMLFile(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(t.TempDir(), "term.yml")
	require.NoError(t, os.WriteFile(path, []byte(`program:
  name: Nursing
courses:
  - code: NUR100
    name: Foundations
    tasks:
      - title: Care plan
        type: Group Project
        due_date: "2026-12-01"
        submission_marker: submitted
`), 0o644))

	res, err := NewImportService(testutil.NewTestUoW(env.db)).ImportProgram(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Nursing", res.Program.Name)
	assert.Equal(t, 1, res.TaskCount)
}

func TestImportProgram_ValidationErrorsReportedTogether(t *testing.T) {
	env := newTestEnv(t)
	schema := validImportSchema()
	schema.Program.Name = ""
	schema.Courses[0].Tasks[0].Type = "Essay"

	_, err := NewImportService(testutil.NewTestUoW(env.db)).ImportProgramFromSchema(context.Background(), schema)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "import validation failed (2 errors)")
	assert.Contains(t, err.Error(), "program.name is required")
	assert.Contains(t, err.Error(), "courses[0].tasks[0].type")
	assert.Equal(t, 0, countRows(t, env.db, "programs"))
}

func TestImportProgram_RollbackOnTaskCreateFailure(t *testing.T) {
	env := newTestEnv(t)

	// ExecContext calls: #1 program, #2 CS101, #3 Quiz 1, #4 Reading.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     env.db,
		FailOn: 4,
		Err:    fmt.Errorf("injected task create failure"),
	}

	_, err := NewImportService(failUoW).ImportProgramFromSchema(context.Background(), validImportSchema())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected task create failure")

	assert.Equal(t, 0, countRows(t, env.db, "programs"))
	assert.Equal(t, 0, countRows(t, env.db, "courses"))
	assert.Equal(t, 0, countRows(t, env.db, "tasks"))
}
