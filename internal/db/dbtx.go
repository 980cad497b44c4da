package db

import (
	"context"
	"database/sql"
)

// DBTX is the querying surface shared by *sql.DB and *sql.Tx. The goal,
// revision, log and session repos take a DBTX, so the same repo code runs
// standalone or inside a UnitOfWork transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Both database/sql handles must keep satisfying DBTX.
var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
