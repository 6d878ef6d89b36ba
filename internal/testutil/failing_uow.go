package testutil

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/alexanderramin/iamonit/internal/db"
)

// ErrInjected is returned by FailOnNthExecUoW when Err is nil.
var ErrInjected = errors.New("injected exec failure")

// FailOnNthExecUoW runs each transaction on the real database but fails the
// FailOn-th ExecContext call (counted from 1 per transaction). A zero FailOn
// never fails, which turns the UoW into a recorder of write statements.
// Reads pass through uncounted.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error

	mu    sync.Mutex
	execs []string
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failOnNthExec{DBTX: tx, uow: u}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

// Execs returns the statements attempted so far, across transactions,
// including the one that was made to fail.
func (u *FailOnNthExecUoW) Execs() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.execs...)
}

func (u *FailOnNthExecUoW) record(query string) {
	u.mu.Lock()
	u.execs = append(u.execs, query)
	u.mu.Unlock()
}

type failOnNthExec struct {
	db.DBTX
	uow   *FailOnNthExecUoW
	count int
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.count++
	f.uow.record(query)
	if f.count == f.uow.FailOn {
		if f.uow.Err != nil {
			return nil, f.uow.Err
		}
		return nil, ErrInjected
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
