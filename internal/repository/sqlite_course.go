package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/iamonit/internal/db"
	"github.com/alexanderramin/iamonit/internal/domain"
)

const courseColumns = `id, program_id, code, name, created_at, updated_at`

// SQLiteCourseRepo implements CourseRepo using a SQLite database.
type SQLiteCourseRepo struct {
	db db.DBTX
}

// NewSQLiteCourseRepo creates a new SQLiteCourseRepo.
func NewSQLiteCourseRepo(conn db.DBTX) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: conn}
}

func (r *SQLiteCourseRepo) Create(ctx context.Context, c *domain.Course) error {
	query := `INSERT INTO courses (program_id, code, name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		c.ProgramID,
		c.Code,
		c.Name,
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting course: %w", err)
	}
	if c.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("reading course id: %w", err)
	}
	return nil
}

func (r *SQLiteCourseRepo) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = ?`, id)
	c, err := scanCourse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("course %d: %w", id, domain.ErrNotFound)
	}
	return c, err
}

func (r *SQLiteCourseRepo) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := exists(r.db.QueryRowContext(ctx, `SELECT 1 FROM courses WHERE id = ?`, id))
	if err != nil {
		return false, fmt.Errorf("checking course: %w", err)
	}
	return ok, nil
}

// List returns courses ordered by code, optionally restricted to one program.
func (r *SQLiteCourseRepo) List(ctx context.Context, programID *int64) ([]CourseListing, error) {
	query := `SELECT c.id, c.program_id, c.code, c.name, c.created_at, c.updated_at,
			COALESCE(p.name, '') AS program_name
		FROM courses c
		LEFT JOIN programs p ON c.program_id = p.id`
	var args []any
	if programID != nil {
		query += ` WHERE c.program_id = ?`
		args = append(args, *programID)
	}
	query += ` ORDER BY c.code ASC, c.id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	listings := []CourseListing{}
	for rows.Next() {
		var l CourseListing
		var createdAtStr, updatedAtStr string
		c := &l.Course
		if err := rows.Scan(&c.ID, &c.ProgramID, &c.Code, &c.Name, &createdAtStr, &updatedAtStr, &l.ProgramName); err != nil {
			return nil, fmt.Errorf("scanning course listing: %w", err)
		}
		if err := parseTimestamps(createdAtStr, updatedAtStr, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}
	return listings, nil
}

func (r *SQLiteCourseRepo) Update(ctx context.Context, c *domain.Course) (int64, error) {
	query := `UPDATE courses SET program_id = ?, code = ?, name = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		c.ProgramID,
		c.Code,
		c.Name,
		c.UpdatedAt.Format(time.RFC3339),
		c.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("updating course: %w", err)
	}
	return res.RowsAffected()
}

// Delete removes the course row only. Callers delete its tasks first.
func (r *SQLiteCourseRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("deleting course: %w", err)
	}
	return res.RowsAffected()
}

func (r *SQLiteCourseRepo) DeleteByProgram(ctx context.Context, programID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE program_id = ?`, programID)
	if err != nil {
		return 0, fmt.Errorf("deleting courses of program: %w", err)
	}
	return res.RowsAffected()
}

func scanCourse(s rowScanner) (*domain.Course, error) {
	var c domain.Course
	var createdAtStr, updatedAtStr string
	if err := s.Scan(&c.ID, &c.ProgramID, &c.Code, &c.Name, &createdAtStr, &updatedAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning course: %w", err)
	}
	if err := parseTimestamps(createdAtStr, updatedAtStr, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
