package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/iamonit/internal/domain"
	"github.com/alexanderramin/iamonit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taskFixture struct {
	db       *sql.DB
	repo     *SQLiteTaskRepo
	progA    *domain.Program
	progB    *domain.Program
	courseA  *domain.Course
	courseA2 *domain.Course
	courseB  *domain.Course
}

func newTaskFixture(t *testing.T) *taskFixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	f := &taskFixture{db: db, repo: NewSQLiteTaskRepo(db)}
	progRepo := NewSQLiteProgramRepo(db)
	f.progA = testutil.NewTestProgram("Alpha")
	f.progB = testutil.NewTestProgram("Beta")
	require.NoError(t, progRepo.Create(ctx, f.progA))
	require.NoError(t, progRepo.Create(ctx, f.progB))

	courseRepo := NewSQLiteCourseRepo(db)
	f.courseA = testutil.NewTestCourse(f.progA.ID, "CS101", "Programming")
	f.courseA2 = testutil.NewTestCourse(f.progA.ID, "CS102", "Data Structures")
	f.courseB = testutil.NewTestCourse(f.progB.ID, "BIO110", "Biology")
	require.NoError(t, courseRepo.Create(ctx, f.courseA))
	require.NoError(t, courseRepo.Create(ctx, f.courseA2))
	require.NoError(t, courseRepo.Create(ctx, f.courseB))
	return f
}

func day(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestTaskRepo_RoundTripsEveryField(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	task := testutil.NewTestTask(f.courseA.ID, "Lab 1",
		testutil.WithTaskType(domain.TaskGroupProject),
		testutil.WithDueDate(day("2026-11-03")),
		testutil.WithStatus(domain.StatusInProgress),
		testutil.WithPriority(domain.PriorityHigh),
		testutil.WithWeight(12.5),
		testutil.WithSubmission(domain.Submitted),
		testutil.WithNotes("bring laptop"),
	)
	require.NoError(t, f.repo.Create(ctx, task))

	got, err := f.repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lab 1", got.Title)
	assert.Equal(t, domain.TaskGroupProject, got.Type)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, "2026-11-03", got.DueDate.Format(domain.DateLayout))
	assert.Equal(t, domain.StatusInProgress, got.Status)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	require.NotNil(t, got.Weight)
	assert.InDelta(t, 12.5, *got.Weight, 0.0001)
	assert.Equal(t, domain.Submitted, got.Submission)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "bring laptop", *got.Notes)
}

func TestTaskRepo_OptionalFieldsStayNull(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	task := testutil.NewTestTask(f.courseA.ID, "Plain")
	require.NoError(t, f.repo.Create(ctx, task))

	var priority, weight, notes sql.NullString
	require.NoError(t, f.db.QueryRow(
		`SELECT priority, weight, notes FROM tasks WHERE id = ?`, task.ID,
	).Scan(&priority, &weight, &notes))
	assert.False(t, priority.Valid)
	assert.False(t, weight.Valid)
	assert.False(t, notes.Valid)

	got, err := f.repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityNone, got.Priority)
	assert.Equal(t, domain.NotSubmitted, got.Submission)
}

func TestTaskRepo_GetMissingIsNotFound(t *testing.T) {
	f := newTaskFixture(t)

	_, err := f.repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTaskRepo_ListOrdersByDueDateThenID(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	later := testutil.NewTestTask(f.courseA.ID, "later", testutil.WithDueDate(day("2026-12-01")))
	undated := testutil.NewTestTask(f.courseA.ID, "undated", testutil.WithNoDueDate())
	first := testutil.NewTestTask(f.courseB.ID, "first", testutil.WithDueDate(day("2026-10-20")))
	tieA := testutil.NewTestTask(f.courseA2.ID, "tie-a", testutil.WithDueDate(day("2026-11-01")))
	tieB := testutil.NewTestTask(f.courseA.ID, "tie-b", testutil.WithDueDate(day("2026-11-01")))
	for _, task := range []*domain.Task{later, undated, first, tieA, tieB} {
		require.NoError(t, f.repo.Create(ctx, task))
	}

	listings, err := walkAll(ctx, f.repo, TaskFilter{})
	require.NoError(t, err)

	var titles []string
	for _, l := range listings {
		titles = append(titles, l.Task.Title)
	}
	assert.Equal(t, []string{"first", "tie-a", "tie-b", "later", "undated"}, titles)
}

func TestTaskRepo_ListJoinsCourseAndProgram(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	require.NoError(t, f.repo.Create(ctx, testutil.NewTestTask(f.courseB.ID, "Dissection")))

	listings, err := walkAll(ctx, f.repo, TaskFilter{})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	l := listings[0]
	assert.Equal(t, "BIO110", l.CourseCode)
	assert.Equal(t, "Biology", l.CourseName)
	assert.Equal(t, f.progB.ID, l.ProgramID)
	assert.Equal(t, "Beta", l.ProgramName)
}

func TestTaskRepo_ListFiltersCombineWithAnd(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	require.NoError(t, f.repo.Create(ctx, testutil.NewTestTask(f.courseA.ID, "a-open")))
	require.NoError(t, f.repo.Create(ctx, testutil.NewTestTask(f.courseA.ID, "a-done", testutil.WithStatus(domain.StatusCompleted))))
	require.NoError(t, f.repo.Create(ctx, testutil.NewTestTask(f.courseA2.ID, "a2-done", testutil.WithStatus(domain.StatusCompleted))))
	require.NoError(t, f.repo.Create(ctx, testutil.NewTestTask(f.courseB.ID, "b-done", testutil.WithStatus(domain.StatusCompleted))))

	tests := []struct {
		name   string
		filter TaskFilter
		want   int
	}{
		{"no filter", TaskFilter{}, 4},
		{"course", TaskFilter{CourseID: &f.courseA.ID}, 2},
		{"program", TaskFilter{ProgramID: &f.progA.ID}, 3},
		{"status", TaskFilter{Status: domain.StatusCompleted}, 3},
		{"program and status", TaskFilter{ProgramID: &f.progA.ID, Status: domain.StatusCompleted}, 2},
		{"course and status", TaskFilter{CourseID: &f.courseA.ID, Status: domain.StatusCompleted}, 1},
		{"course outside program", TaskFilter{CourseID: &f.courseB.ID, ProgramID: &f.progA.ID}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listings, err := walkAll(ctx, f.repo, tt.filter)
			require.NoError(t, err)
			assert.Len(t, listings, tt.want)
		})
	}
}

func walkAll(ctx context.Context, repo *SQLiteTaskRepo, f TaskFilter) ([]TaskListing, error) {
	var listings []TaskListing
	err := repo.Walk(ctx, f, func(l TaskListing) error {
		listings = append(listings, l)
		return nil
	})
	return listings, err
}

func TestTaskRepo_WalkStopsOnCallbackError(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	for _, title := range []string{"one", "two", "three"} {
		require.NoError(t, f.repo.Create(ctx, testutil.NewTestTask(f.courseA.ID, title)))
	}

	stop := errors.New("stop")
	seen := 0
	err := f.repo.Walk(ctx, TaskFilter{}, func(TaskListing) error {
		seen++
		if seen == 2 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, seen)
}

func TestTaskRepo_UpdateReplacesFields(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	task := testutil.NewTestTask(f.courseA.ID, "Draft", testutil.WithPriority(domain.PriorityLow), testutil.WithNotes("x"))
	require.NoError(t, f.repo.Create(ctx, task))

	task.CourseID = f.courseB.ID
	task.Title = "Final"
	task.Priority = domain.PriorityNone
	task.Notes = nil
	task.Status = domain.StatusCompleted
	task.Submission = domain.Submitted
	n, err := f.repo.Update(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := f.repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, f.courseB.ID, got.CourseID)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, domain.PriorityNone, got.Priority)
	assert.Nil(t, got.Notes)
	assert.Equal(t, domain.StatusCompleted, got.Status)
	assert.Equal(t, domain.Submitted, got.Submission)
}

func TestTaskRepo_DeleteReportsRows(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	task := testutil.NewTestTask(f.courseA.ID, "Gone")
	require.NoError(t, f.repo.Create(ctx, task))

	n, err := f.repo.Delete(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = f.repo.Delete(ctx, task.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}
