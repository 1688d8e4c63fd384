package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/stockbox/internal/models"
)

// ProductRepo issues product statements against an explicit handle.
type ProductRepo struct {
	dialect Dialect
}

const productSelect = `SELECT p.id, p.name, p.quantity, p.category, p.box_id, b.name, p.location
	FROM products p LEFT JOIN boxes b ON p.box_id = b.id`

// ============================================================================
// Writes
// ============================================================================

// Insert stores p and fills in its generated id
func (r *ProductRepo) Insert(ctx context.Context, q DBTX, p *models.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	query := r.dialect.Rebind(`INSERT INTO products (name, quantity, category, box_id, location)
		VALUES (?, ?, ?, ?, ?) RETURNING id`)

	var id int
	err := q.QueryRowContext(ctx, query,
		strings.TrimSpace(p.Name), p.Quantity, nullableText(p.Category), nullableID(p.BoxID), nullableText(p.Location),
	).Scan(&id)
	if err != nil {
		return queryErr("insert product", err)
	}

	p.ID = id
	return nil
}

// Update overwrites every writable column of the stored product with p's values
func (r *ProductRepo) Update(ctx context.Context, q DBTX, p *models.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	query := r.dialect.Rebind(`UPDATE products SET name = ?, quantity = ?, category = ?, box_id = ?, location = ?
		WHERE id = ?`)

	res, err := q.ExecContext(ctx, query,
		strings.TrimSpace(p.Name), p.Quantity, nullableText(p.Category), nullableID(p.BoxID), nullableText(p.Location), p.ID,
	)
	if err != nil {
		return queryErr("update product", err)
	}
	if err := expectOne(res, fmt.Errorf("%w: id %d", ErrProductNotFound, p.ID)); err != nil {
		return queryErr("update product", err)
	}
	return nil
}

// Delete removes the product with the given id
func (r *ProductRepo) Delete(ctx context.Context, q DBTX, id int) error {
	res, err := q.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM products WHERE id = ?`), id)
	if err != nil {
		return queryErr("delete product", err)
	}
	if err := expectOne(res, fmt.Errorf("%w: id %d", ErrProductNotFound, id)); err != nil {
		return queryErr("delete product", err)
	}
	return nil
}

// BulkUpdate writes category, box and location of every product with one
// prepared statement. The first failing row stops the batch; the caller's
// transaction decides whether anything is kept.
func (r *ProductRepo) BulkUpdate(ctx context.Context, q DBTX, products []*models.Product) error {
	if len(products) == 0 {
		return nil
	}

	stmt, err := q.PrepareContext(ctx, r.dialect.Rebind(`UPDATE products SET category = ?, box_id = ?, location = ? WHERE id = ?`))
	if err != nil {
		return queryErr("prepare bulk update", err)
	}
	defer stmt.Close()

	for _, p := range products {
		res, err := stmt.ExecContext(ctx, nullableText(p.Category), nullableID(p.BoxID), nullableText(p.Location), p.ID)
		if err != nil {
			return queryErr(fmt.Sprintf("bulk update product %d", p.ID), err)
		}
		if err := expectOne(res, fmt.Errorf("%w: id %d", ErrProductNotFound, p.ID)); err != nil {
			return queryErr("bulk update products", err)
		}
	}
	return nil
}

// ============================================================================
// Reads
// ============================================================================

// Get returns a single product with its box name
func (r *ProductRepo) Get(ctx context.Context, q DBTX, id int) (*models.Product, error) {
	query := r.dialect.Rebind(productSelect + ` WHERE p.id = ?`)
	p, err := scanProduct(q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
	}
	if err != nil {
		return nil, queryErr("get product", err)
	}
	return p, nil
}

// List returns every product ordered by id
func (r *ProductRepo) List(ctx context.Context, q DBTX) ([]*models.Product, error) {
	rows, err := q.QueryContext(ctx, productSelect+` ORDER BY p.id`)
	if err != nil {
		return nil, queryErr("list products", err)
	}
	return collectProducts(rows, "list products")
}

// Search returns the products matching every active predicate of f.
// An empty filter returns the same rows as List.
func (r *ProductRepo) Search(ctx context.Context, q DBTX, f models.ProductFilter) ([]*models.Product, error) {
	query, args, err := searchQuery(f, r.dialect).OrderBy("p.id").Build(r.dialect)
	if err != nil {
		return nil, queryErr("build product search", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, queryErr("search products", err)
	}
	return collectProducts(rows, "search products")
}

// searchQuery translates the filter into WHERE clauses in a fixed order.
// Text comparisons fold case on both sides with the dialect's lowercase function.
func searchQuery(f models.ProductFilter, d Dialect) *Query {
	query := NewQuery(productSelect)

	if term := strings.TrimSpace(f.Term); term != "" {
		pattern := containsPattern(term)
		query.Where(`(`+d.Lower("p.name")+` LIKE ? ESCAPE '\' OR `+d.Lower("b.name")+` LIKE ? ESCAPE '\')`, pattern, pattern)
	}
	if category := models.OptionalString(models.StringValue(f.Category)); category != nil {
		query.Where(d.Lower("p.category")+` = `+d.Lower("?"), *category)
	}
	if location := models.OptionalString(models.StringValue(f.Location)); location != nil {
		query.Where(d.Lower("p.location")+` = `+d.Lower("?"), *location)
	}
	if boxName := models.OptionalString(models.StringValue(f.BoxName)); boxName != nil {
		query.Where(d.Lower("b.name")+` = `+d.Lower("?"), *boxName)
	}
	if f.MinQuantity != nil {
		query.Where(`p.quantity >= ?`, *f.MinQuantity)
	}
	if f.MaxQuantity != nil {
		query.Where(`p.quantity <= ?`, *f.MaxQuantity)
	}

	return query
}

// DistinctCategories returns the non-empty categories in use
func (r *ProductRepo) DistinctCategories(ctx context.Context, q DBTX) ([]string, error) {
	return distinctStrings(ctx, q, "list categories", `SELECT DISTINCT category FROM products
		WHERE category IS NOT NULL AND category <> '' ORDER BY category`)
}

// DistinctLocations returns the non-empty product locations in use
func (r *ProductRepo) DistinctLocations(ctx context.Context, q DBTX) ([]string, error) {
	return distinctStrings(ctx, q, "list locations", `SELECT DISTINCT location FROM products
		WHERE location IS NOT NULL AND location <> '' ORDER BY location`)
}

// DistinctBoxNames returns the names of boxes that hold at least one product
func (r *ProductRepo) DistinctBoxNames(ctx context.Context, q DBTX) ([]string, error) {
	return distinctStrings(ctx, q, "list box names", `SELECT DISTINCT b.name FROM boxes b
		JOIN products p ON p.box_id = b.id
		WHERE b.name IS NOT NULL AND b.name <> '' ORDER BY b.name`)
}

// ============================================================================
// Scanning
// ============================================================================

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var (
		p        models.Product
		category sql.NullString
		boxID    sql.NullInt64
		boxName  sql.NullString
		location sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Quantity, &category, &boxID, &boxName, &location); err != nil {
		return nil, err
	}
	p.Category = nullStringToPtr(category)
	p.BoxID = nullInt64ToPtr(boxID)
	p.BoxName = nullStringToPtr(boxName)
	p.Location = nullStringToPtr(location)
	return &p, nil
}

func collectProducts(rows *sql.Rows, op string) ([]*models.Product, error) {
	defer rows.Close()

	products := make([]*models.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, queryErr(op, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, queryErr(op, err)
	}
	return products, nil
}

func distinctStrings(ctx context.Context, q DBTX, op, query string) ([]string, error) {
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, queryErr(op, err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, queryErr(op, err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, queryErr(op, err)
	}
	return values, nil
}
