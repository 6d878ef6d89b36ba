package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the schema. Every statement is idempotent, so Migrate is
// safe to run on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Foreign keys carry no ON DELETE action: removing a parent that still has
// children fails, so cascades must delete bottom-up.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS programs (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		name       TEXT NOT NULL CHECK(length(trim(name)) > 0),
		college    TEXT,
		semester   TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS courses (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		program_id INTEGER NOT NULL REFERENCES programs(id),
		code       TEXT NOT NULL,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_courses_program ON courses(program_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id                INTEGER PRIMARY KEY AUTOINCREMENT,
		course_id         INTEGER NOT NULL REFERENCES courses(id),
		title             TEXT NOT NULL,
		type              TEXT NOT NULL
		                  CHECK(type IN ('Quiz','Assignment','Exam','Group Project')),
		due_date          TEXT,
		status            TEXT NOT NULL DEFAULT 'Not Completed'
		                  CHECK(status IN ('Not Completed','In progress','Completed')),
		priority          TEXT
		                  CHECK(priority IS NULL OR priority IN ('High','Medium','Low')),
		weight            REAL
		                  CHECK(weight IS NULL OR (weight >= 0 AND weight <= 100)),
		submission_marker TEXT NOT NULL DEFAULT 'not_submitted'
		                  CHECK(submission_marker IN ('submitted','not_submitted')),
		notes             TEXT,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_course ON tasks(course_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_due_date ON tasks(due_date)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,
}
