// Package database implements the inventory data-access layer: the connection
// manager, schema initialization, box and product repositories, the referential
// cleanup that runs inside every product write, and the Store that ties them together.
package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/stockbox/internal/config"
)

// InitDB opens the configured store and makes sure the schema exists
func InitDB(ctx context.Context, cfg config.Database) (*Conn, error) {
	conn := Open(cfg)

	db, err := conn.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	if err := EnsureSchema(ctx, db, conn.Dialect()); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return conn, nil
}
