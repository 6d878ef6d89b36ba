package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/iamonit/internal/domain"
	"github.com/alexanderramin/iamonit/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoardDriver(t *testing.T, a *App) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newBoardModel(context.Background(), a), teatest.WithSize(140, 30))
	d.DrainInit()
	return d
}

func board(d *teatest.Driver) *boardModel {
	return d.Model.(*boardModel)
}

func TestBoard_LoadsTasksAndSummary(t *testing.T) {
	a := testApp(t)
	seedProgram(t, a)

	d := newBoardDriver(t, a)
	m := board(d)

	require.Len(t, m.tasks, 2)
	require.NotNil(t, m.summary)
	assert.Equal(t, 1, m.summary.Overdue)
	assert.False(t, m.loading)

	view := d.View()
	assert.Contains(t, view, "2025-06-10")
	assert.Contains(t, view, "Problem set 3")
	assert.Contains(t, view, "1 day(s) overdue")
	assert.Contains(t, view, "Showing: All")
}

func TestBoard_Empty(t *testing.T) {
	d := newBoardDriver(t, testApp(t))
	assert.Contains(t, d.View(), "No tasks yet.")
}

func TestBoard_FilterCyclesStatuses(t *testing.T) {
	a := testApp(t)
	seedProgram(t, a)
	d := newBoardDriver(t, a)

	want := []domain.TaskStatus{domain.StatusNotCompleted, domain.StatusInProgress, domain.StatusCompleted, ""}
	counts := []int{1, 1, 0, 2}
	for i, st := range want {
		d.PressKey('f')
		m := board(d)
		assert.Equal(t, st, m.filter)
		assert.Len(t, m.tasks, counts[i], "filter %q", st)
	}
}

func TestBoard_CycleStatusOfSelectedTask(t *testing.T) {
	a := testApp(t)
	s := seedProgram(t, a)
	d := newBoardDriver(t, a)

	// Row 0 is the overdue task; In progress becomes Completed.
	d.PressKey('c')

	got, err := a.Tasks.GetByID(context.Background(), s.overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, got.Status)

	m := board(d)
	assert.Equal(t, 0, m.summary.Overdue)
	assert.Equal(t, 1, m.summary.Completed)
	assert.Contains(t, d.View(), "#1 is now Completed")
}

func TestBoard_ToggleSubmittedOnSecondRow(t *testing.T) {
	a := testApp(t)
	s := seedProgram(t, a)
	d := newBoardDriver(t, a)

	d.PressDown()
	d.PressKey('s')

	got, err := a.Tasks.GetByID(context.Background(), s.later.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Submitted, got.Submission)

	d.PressKey('s')
	got, err = a.Tasks.GetByID(context.Background(), s.later.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.NotSubmitted, got.Submission)
}

func TestBoard_RefreshPicksUpExternalChanges(t *testing.T) {
	a := testApp(t)
	s := seedProgram(t, a)
	d := newBoardDriver(t, a)

	_, err := a.Tasks.Delete(context.Background(), s.later.ID)
	require.NoError(t, err)
	assert.Len(t, board(d).tasks, 2)

	d.PressKey('r')
	assert.Len(t, board(d).tasks, 1)
}

func TestBoard_KeysOnEmptyBoardAreNoOps(t *testing.T) {
	d := newBoardDriver(t, testApp(t))

	d.PressKey('c')
	d.PressKey('s')
	assert.NoError(t, board(d).err)
	assert.Empty(t, board(d).note)
}

func TestBoard_Quit(t *testing.T) {
	d := newBoardDriver(t, testApp(t))
	d.PressKey('q')
	assert.True(t, d.Quitting)

	d = newBoardDriver(t, testApp(t))
	d.PressCtrlC()
	assert.True(t, d.Quitting)
}

func TestBoard_ScopedToProgram(t *testing.T) {
	a := testApp(t)
	seedProgram(t, a)

	m := newBoardModel(context.Background(), a)
	other := int64(99)
	m.programID = &other
	d := teatest.New(t, m)
	d.DrainInit()

	assert.Empty(t, board(d).tasks)
	assert.Equal(t, 0, board(d).summary.Total)
}
