package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/iamonit/internal/db"
	"github.com/alexanderramin/iamonit/internal/domain"
)

const taskColumns = `t.id, t.course_id, t.title, t.type, t.due_date, t.status, t.priority,
	t.weight, t.submission_marker, t.notes, t.created_at, t.updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (course_id, title, type, due_date, status, priority, weight,
			submission_marker, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		t.CourseID,
		t.Title,
		string(t.Type),
		nullableTimeToString(t.DueDate, domain.DateLayout),
		string(t.Status),
		nullablePriority(t.Priority),
		nullableFloat(t.Weight),
		t.Submission.String(),
		nullableString(t.Notes),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	if t.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("reading task id: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks t WHERE t.id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %d: %w", id, domain.ErrNotFound)
	}
	return t, err
}

// Walk streams matching tasks ordered by due date ascending, undated tasks
// last, ties broken by id. A non-nil error from fn stops the walk and is
// returned unchanged.
func (r *SQLiteTaskRepo) Walk(ctx context.Context, f TaskFilter, fn func(TaskListing) error) error {
	query := `SELECT ` + taskColumns + `,
			COALESCE(c.code, ''), COALESCE(c.name, ''),
			COALESCE(c.program_id, 0), COALESCE(p.name, '')
		FROM tasks t
		LEFT JOIN courses c ON t.course_id = c.id
		LEFT JOIN programs p ON c.program_id = p.id`

	var conds []string
	var args []any
	if f.CourseID != nil {
		conds = append(conds, "t.course_id = ?")
		args = append(args, *f.CourseID)
	}
	if f.ProgramID != nil {
		conds = append(conds, "c.program_id = ?")
		args = append(args, *f.ProgramID)
	}
	if f.Status != "" {
		conds = append(conds, "t.status = ?")
		args = append(args, string(f.Status))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY t.due_date IS NULL, t.due_date ASC, t.id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		l, err := scanTaskListing(rows)
		if err != nil {
			return err
		}
		if err := fn(*l); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating tasks: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) (int64, error) {
	query := `UPDATE tasks SET course_id = ?, title = ?, type = ?, due_date = ?, status = ?,
			priority = ?, weight = ?, submission_marker = ?, notes = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.CourseID,
		t.Title,
		string(t.Type),
		nullableTimeToString(t.DueDate, domain.DateLayout),
		string(t.Status),
		nullablePriority(t.Priority),
		nullableFloat(t.Weight),
		t.Submission.String(),
		nullableString(t.Notes),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("updating task: %w", err)
	}
	return res.RowsAffected()
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("deleting task: %w", err)
	}
	return res.RowsAffected()
}

func (r *SQLiteTaskRepo) DeleteByCourse(ctx context.Context, courseID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE course_id = ?`, courseID)
	if err != nil {
		return 0, fmt.Errorf("deleting tasks of course: %w", err)
	}
	return res.RowsAffected()
}

func (r *SQLiteTaskRepo) DeleteByProgram(ctx context.Context, programID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE course_id IN (SELECT id FROM courses WHERE program_id = ?)`, programID)
	if err != nil {
		return 0, fmt.Errorf("deleting tasks of program: %w", err)
	}
	return res.RowsAffected()
}

func nullablePriority(p domain.Priority) any {
	if p == domain.PriorityNone {
		return nil
	}
	return string(p)
}

type taskRow struct {
	t                          domain.Task
	taskType, status, marker   string
	dueDate, priority, notes   sql.NullString
	weight                     sql.NullFloat64
	createdAtStr, updatedAtStr string
}

func (row *taskRow) dest() []any {
	t := &row.t
	return []any{
		&t.ID, &t.CourseID, &t.Title, &row.taskType, &row.dueDate, &row.status, &row.priority,
		&row.weight, &row.marker, &row.notes, &row.createdAtStr, &row.updatedAtStr,
	}
}

func (row *taskRow) finish() (*domain.Task, error) {
	t := row.t
	t.Type = domain.TaskType(row.taskType)
	t.Status = domain.TaskStatus(row.status)
	t.DueDate = parseNullableTime(row.dueDate, domain.DateLayout)
	if row.priority.Valid {
		t.Priority = domain.Priority(row.priority.String)
	}
	t.Weight = floatPtr(row.weight)
	t.Notes = stringPtr(row.notes)
	marker, err := domain.ParseSubmissionMarker(row.marker)
	if err != nil {
		return nil, fmt.Errorf("task %d: %w", t.ID, err)
	}
	t.Submission = marker
	if err := parseTimestamps(row.createdAtStr, row.updatedAtStr, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTask(s rowScanner) (*domain.Task, error) {
	var row taskRow
	if err := s.Scan(row.dest()...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return row.finish()
}

func scanTaskListing(s rowScanner) (*TaskListing, error) {
	var row taskRow
	var l TaskListing
	dest := append(row.dest(), &l.CourseCode, &l.CourseName, &l.ProgramID, &l.ProgramName)
	if err := s.Scan(dest...); err != nil {
		return nil, fmt.Errorf("scanning task listing: %w", err)
	}
	t, err := row.finish()
	if err != nil {
		return nil, err
	}
	l.Task = *t
	return &l, nil
}
