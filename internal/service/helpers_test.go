package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/iamonit/internal/domain"
	"github.com/alexanderramin/iamonit/internal/repository"
	"github.com/alexanderramin/iamonit/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db       *sql.DB
	programs ProgramService
	courses  CourseService
	tasks    TaskService
	stats    StatsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	return &testEnv{
		db:       database,
		programs: NewProgramService(repository.NewSQLiteProgramRepo(database), uow),
		courses:  NewCourseService(repository.NewSQLiteCourseRepo(database), uow),
		tasks:    NewTaskService(repository.NewSQLiteTaskRepo(database), uow),
		stats:    NewStatsService(repository.NewSQLiteTaskRepo(database)),
	}
}

func (e *testEnv) program(t *testing.T, name string) *domain.Program {
	t.Helper()
	p := &domain.Program{Name: name}
	require.NoError(t, e.programs.Create(context.Background(), p))
	return p
}

func (e *testEnv) course(t *testing.T, programID int64, code string) *domain.Course {
	t.Helper()
	c := &domain.Course{ProgramID: programID, Code: code, Name: code + " course"}
	require.NoError(t, e.courses.Create(context.Background(), c))
	return c
}

func (e *testEnv) task(t *testing.T, courseID int64, title string, due string, status domain.TaskStatus) *domain.Task {
	t.Helper()
	d := mustDate(t, due)
	task := &domain.Task{CourseID: courseID, Title: title, Type: domain.TaskAssignment, DueDate: &d, Status: status}
	require.NoError(t, e.tasks.Create(context.Background(), task))
	return task
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func countRows(t *testing.T, database *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}
