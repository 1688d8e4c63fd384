package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/thenoetrevino/stockbox/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// sqlite pragmas applied to every pooled connection through the DSN
var sqlitePragmas = []string{
	"_pragma=foreign_keys(1)",
	"_pragma=busy_timeout(5000)",
}

// Conn manages the single logical connection to the inventory store. The
// handle is opened lazily and reopened after Close. Conn is safe for use by
// multiple goroutines.
type Conn struct {
	cfg     config.Database
	dialect Dialect
	dialErr error

	mu sync.Mutex
	db *sql.DB
}

// Open creates a connection manager for cfg. No I/O happens until Acquire.
func Open(cfg config.Database) *Conn {
	dialect, err := DialectFor(cfg.Driver)
	return &Conn{cfg: cfg, dialect: dialect, dialErr: err}
}

// Dialect returns the SQL dialect of the configured backend
func (c *Conn) Dialect() Dialect {
	return c.dialect
}

// Acquire returns the live database handle, opening it if needed.
// Failures are reported as *ConnectionError.
func (c *Conn) Acquire(ctx context.Context) (*sql.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}

	db, err := c.open(ctx)
	if err != nil {
		slog.Error("failed to open database", "driver", c.cfg.Driver, "error", err)
		return nil, &ConnectionError{Driver: c.cfg.Driver, Err: err}
	}

	c.db = db
	return db, nil
}

// Test reports whether the store can be reached. Errors are logged, not returned.
func (c *Conn) Test(ctx context.Context) bool {
	db, err := c.Acquire(ctx)
	if err != nil {
		return false
	}
	if err := db.PingContext(ctx); err != nil {
		slog.Warn("database ping failed", "error", err)
		return false
	}
	return true
}

// Close releases the handle. A later Acquire opens a new one.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	if err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// Begin starts an explicit transaction on the live handle
func (c *Conn) Begin(ctx context.Context) (*Tx, error) {
	db, err := c.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, &TransactionError{Op: "begin", Err: err}
	}
	return &Tx{Tx: tx}, nil
}

func (c *Conn) open(ctx context.Context) (*sql.DB, error) {
	if c.dialErr != nil {
		return nil, c.dialErr
	}

	dsn, err := c.dsn()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(c.dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if c.dialect == SQLite {
		// SQLite benefits from a single writer connection
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	return db, nil
}

// dsn builds the driver connection string, creating the sqlite storage
// directory when the database lives on disk
func (c *Conn) dsn() (string, error) {
	if c.dialect == Postgres {
		return c.cfg.URL, nil
	}

	base := c.cfg.URL
	if base == "" {
		dir, err := c.cfg.DataDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve data directory: %w", err)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
		base, err = c.cfg.Path()
		if err != nil {
			return "", err
		}
	}

	pragmas := sqlitePragmas
	if !strings.Contains(base, ":memory:") && !strings.Contains(base, "mode=memory") {
		pragmas = append(pragmas[:len(pragmas):len(pragmas)], "_pragma=journal_mode(WAL)")
	}

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + strings.Join(pragmas, "&"), nil
}
