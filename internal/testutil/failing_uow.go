package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/alexanderramin/huddle/internal/db"
)

// FailOnNthExecUoW is a UnitOfWork whose transaction fails the Nth matching
// ExecContext call with Err, so tests can break a multi-write import at an
// exact statement and check the rollback.
//
// Only statements containing Match are counted; an empty Match counts every
// exec. Counting starts at 1. Reads pass through untouched.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	Match  string
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failingExec{DBTX: tx, uow: u}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failingExec struct {
	db.DBTX
	uow  *FailOnNthExecUoW
	seen atomic.Int32
}

func (f *failingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.Contains(query, f.uow.Match) && f.seen.Add(1) == f.uow.FailOn {
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
