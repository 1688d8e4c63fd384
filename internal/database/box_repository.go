package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/stockbox/internal/models"
)

// BoxRepo issues box statements against an explicit handle.
type BoxRepo struct {
	dialect Dialect
}

// Insert stores b and fills in its generated id
func (r *BoxRepo) Insert(ctx context.Context, q DBTX, b *models.Box) error {
	query := r.dialect.Rebind(`INSERT INTO boxes (name, location) VALUES (?, ?) RETURNING id`)

	var id int
	if err := q.QueryRowContext(ctx, query, nullableText(b.Name), nullableText(b.Location)).Scan(&id); err != nil {
		return queryErr("insert box", err)
	}

	b.ID = id
	return nil
}

// Update overwrites name and location of the stored box
func (r *BoxRepo) Update(ctx context.Context, q DBTX, b *models.Box) error {
	res, err := q.ExecContext(ctx, r.dialect.Rebind(`UPDATE boxes SET name = ?, location = ? WHERE id = ?`),
		nullableText(b.Name), nullableText(b.Location), b.ID,
	)
	if err != nil {
		return queryErr("update box", err)
	}
	if err := expectOne(res, fmt.Errorf("%w: id %d", ErrBoxNotFound, b.ID)); err != nil {
		return queryErr("update box", err)
	}
	return nil
}

// Delete removes the box; products that pointed at it become unboxed
func (r *BoxRepo) Delete(ctx context.Context, q DBTX, id int) error {
	res, err := q.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM boxes WHERE id = ?`), id)
	if err != nil {
		return queryErr("delete box", err)
	}
	if err := expectOne(res, fmt.Errorf("%w: id %d", ErrBoxNotFound, id)); err != nil {
		return queryErr("delete box", err)
	}
	return nil
}

// Get returns a single box
func (r *BoxRepo) Get(ctx context.Context, q DBTX, id int) (*models.Box, error) {
	row := q.QueryRowContext(ctx, r.dialect.Rebind(`SELECT id, name, location FROM boxes WHERE id = ?`), id)
	b, err := scanBox(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrBoxNotFound, id)
	}
	if err != nil {
		return nil, queryErr("get box", err)
	}
	return b, nil
}

// List returns every box ordered by id
func (r *BoxRepo) List(ctx context.Context, q DBTX) ([]*models.Box, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, name, location FROM boxes ORDER BY id`)
	if err != nil {
		return nil, queryErr("list boxes", err)
	}
	defer rows.Close()

	boxes := make([]*models.Box, 0)
	for rows.Next() {
		b, err := scanBox(rows)
		if err != nil {
			return nil, queryErr("list boxes", err)
		}
		boxes = append(boxes, b)
	}
	if err := rows.Err(); err != nil {
		return nil, queryErr("list boxes", err)
	}
	return boxes, nil
}

// FindIDByName returns the id of the first box whose name equals name exactly,
// or 0 when there is none.
func (r *BoxRepo) FindIDByName(ctx context.Context, q DBTX, name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, nil
	}

	var id int
	err := q.QueryRowContext(ctx, r.dialect.Rebind(`SELECT id FROM boxes WHERE name = ? ORDER BY id LIMIT 1`), name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, queryErr("find box by name", err)
	}
	return id, nil
}

func scanBox(row rowScanner) (*models.Box, error) {
	var (
		b        models.Box
		name     sql.NullString
		location sql.NullString
	)
	if err := row.Scan(&b.ID, &name, &location); err != nil {
		return nil, err
	}
	b.Name = nullStringToPtr(name)
	b.Location = nullStringToPtr(location)
	return &b, nil
}
