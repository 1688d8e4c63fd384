package database

import (
	"context"
	"database/sql"
)

// DBTX is the handle every repository method runs against. Both *sql.DB and
// *Tx satisfy it, so a repository call joins whatever transaction the caller
// passes in.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
	_ DBTX = (*Tx)(nil)
)
