package database

import (
	"context"
	"log/slog"
)

// Cleanup passes, run in this order inside every product write.
const (
	pruneOrphanBoxes = `DELETE FROM boxes WHERE id NOT IN (
		SELECT DISTINCT box_id FROM products
		WHERE box_id IS NOT NULL AND name IS NOT NULL AND quantity > 0)`

	pruneEmptyLocations = `DELETE FROM products WHERE (location IS NULL OR location = '')
		AND id NOT IN (SELECT id FROM products WHERE name IS NOT NULL AND name <> '' AND quantity > 0)`

	pruneEmptyCategories = `DELETE FROM products WHERE (category IS NULL OR category = '')
		AND id NOT IN (SELECT id FROM products WHERE name IS NOT NULL AND name <> '' AND quantity > 0)`
)

// CleanupReport counts the rows each cleanup pass removed
type CleanupReport struct {
	Boxes           int64
	EmptyLocations  int64
	EmptyCategories int64
}

// Total returns the number of rows removed across all passes
func (r CleanupReport) Total() int64 {
	return r.Boxes + r.EmptyLocations + r.EmptyCategories
}

// Cleanup restores referential tidiness after a product write: boxes no valid
// product points at are deleted, then placeholder products with neither a
// location nor a category. It must run on the same handle as the write so
// both commit or roll back together.
func Cleanup(ctx context.Context, q DBTX, logger *slog.Logger) (CleanupReport, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var report CleanupReport
	passes := []struct {
		name  string
		query string
		count *int64
	}{
		{"boxes", pruneOrphanBoxes, &report.Boxes},
		{"empty locations", pruneEmptyLocations, &report.EmptyLocations},
		{"empty categories", pruneEmptyCategories, &report.EmptyCategories},
	}

	for _, pass := range passes {
		res, err := q.ExecContext(ctx, pass.query)
		if err != nil {
			return report, queryErr("clean up "+pass.name, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return report, queryErr("clean up "+pass.name, err)
		}
		*pass.count = n
	}

	if report.Total() > 0 {
		logger.Info("cleanup removed rows",
			"boxes", report.Boxes,
			"empty_locations", report.EmptyLocations,
			"empty_categories", report.EmptyCategories,
		)
	}
	return report, nil
}
