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

const programColumns = `id, name, college, semester, created_at, updated_at`

// SQLiteProgramRepo implements ProgramRepo using a SQLite database.
type SQLiteProgramRepo struct {
	db db.DBTX
}

// NewSQLiteProgramRepo creates a new SQLiteProgramRepo.
func NewSQLiteProgramRepo(conn db.DBTX) *SQLiteProgramRepo {
	return &SQLiteProgramRepo{db: conn}
}

func (r *SQLiteProgramRepo) Create(ctx context.Context, p *domain.Program) error {
	query := `INSERT INTO programs (name, college, semester, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		nullableString(p.College),
		nullableString(p.Semester),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting program: %w", err)
	}
	if p.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("reading program id: %w", err)
	}
	return nil
}

func (r *SQLiteProgramRepo) GetByID(ctx context.Context, id int64) (*domain.Program, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+programColumns+` FROM programs WHERE id = ?`, id)
	p, err := scanProgram(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("program %d: %w", id, domain.ErrNotFound)
	}
	return p, err
}

func (r *SQLiteProgramRepo) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := exists(r.db.QueryRowContext(ctx, `SELECT 1 FROM programs WHERE id = ?`, id))
	if err != nil {
		return false, fmt.Errorf("checking program: %w", err)
	}
	return ok, nil
}

// List returns programs alphabetically by name.
func (r *SQLiteProgramRepo) List(ctx context.Context) ([]*domain.Program, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+programColumns+` FROM programs ORDER BY name COLLATE NOCASE ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing programs: %w", err)
	}
	defer rows.Close()

	programs := []*domain.Program{}
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating programs: %w", err)
	}
	return programs, nil
}

// Update replaces every mutable column and reports how many rows matched.
func (r *SQLiteProgramRepo) Update(ctx context.Context, p *domain.Program) (int64, error) {
	query := `UPDATE programs SET name = ?, college = ?, semester = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		nullableString(p.College),
		nullableString(p.Semester),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("updating program: %w", err)
	}
	return res.RowsAffected()
}

// Delete removes the program row only. Callers delete its courses first.
func (r *SQLiteProgramRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM programs WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("deleting program: %w", err)
	}
	return res.RowsAffected()
}

func scanProgram(s rowScanner) (*domain.Program, error) {
	var p domain.Program
	var college, semester sql.NullString
	var createdAtStr, updatedAtStr string

	if err := s.Scan(&p.ID, &p.Name, &college, &semester, &createdAtStr, &updatedAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning program: %w", err)
	}
	p.College = stringPtr(college)
	p.Semester = stringPtr(semester)
	if err := parseTimestamps(createdAtStr, updatedAtStr, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
