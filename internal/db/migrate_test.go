package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_ReportsFailingStatement(t *testing.T) {
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration 0")
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"programs", "courses", "tasks"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_courses_program",
		"idx_tasks_course",
		"idx_tasks_due_date",
		"idx_tasks_status",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestOpenDB_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestOpenDB_FileDatabaseUsesWAL(t *testing.T) {
	path := t.TempDir() + "/nested/iamonit.db"
	db, err := OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestSchema_RejectsUnknownTaskEnums(t *testing.T) {
	db := openTestDB(t)
	now := "2025-06-01T00:00:00Z"

	res, err := db.Exec(`INSERT INTO programs (name, created_at, updated_at) VALUES ('BSc', ?, ?)`, now, now)
	require.NoError(t, err)
	programID, _ := res.LastInsertId()
	res, err = db.Exec(`INSERT INTO courses (program_id, code, name, created_at, updated_at) VALUES (?, 'CS101', 'Intro', ?, ?)`, programID, now, now)
	require.NoError(t, err)
	courseID, _ := res.LastInsertId()

	_, err = db.Exec(`INSERT INTO tasks (course_id, title, type, status, created_at, updated_at)
		VALUES (?, 'Essay', 'Homework', 'Completed', ?, ?)`, courseID, now, now)
	assert.Error(t, err, "unknown type should violate CHECK")

	_, err = db.Exec(`INSERT INTO tasks (course_id, title, type, status, submission_marker, created_at, updated_at)
		VALUES (?, 'Essay', 'Assignment', 'Completed', 'Yes', ?, ?)`, courseID, now, now)
	assert.Error(t, err, "legacy yes/no marker should violate CHECK")
}

func TestSchema_ParentDeleteBlockedByChildren(t *testing.T) {
	db := openTestDB(t)
	now := "2025-06-01T00:00:00Z"

	res, err := db.Exec(`INSERT INTO programs (name, created_at, updated_at) VALUES ('BSc', ?, ?)`, now, now)
	require.NoError(t, err)
	programID, _ := res.LastInsertId()
	_, err = db.Exec(`INSERT INTO courses (program_id, code, name, created_at, updated_at) VALUES (?, 'CS101', 'Intro', ?, ?)`, programID, now, now)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM programs WHERE id = ?`, programID)
	assert.Error(t, err, "program with courses must not be deletable directly")
}

func TestSchema_IDsNeverReused(t *testing.T) {
	db := openTestDB(t)
	now := "2025-06-01T00:00:00Z"

	res, err := db.Exec(`INSERT INTO programs (name, created_at, updated_at) VALUES ('A', ?, ?)`, now, now)
	require.NoError(t, err)
	first, _ := res.LastInsertId()

	_, err = db.Exec(`DELETE FROM programs WHERE id = ?`, first)
	require.NoError(t, err)

	res, err = db.Exec(`INSERT INTO programs (name, created_at, updated_at) VALUES ('B', ?, ?)`, now, now)
	require.NoError(t, err)
	second, _ := res.LastInsertId()
	assert.Greater(t, second, first)
}
