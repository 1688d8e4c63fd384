package database

import (
	"context"
	"fmt"
)

// EnsureSchema creates the boxes and products tables when they do not exist.
// Calling it against an initialized database changes nothing.
func EnsureSchema(ctx context.Context, q DBTX, d Dialect) error {
	for _, stmt := range d.schema() {
		if _, err := q.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
