package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/stockbox/internal/models"
)

// BoxRef names a box by free text for product writes that resolve it in the
// same transaction. A blank Name leaves the product unboxed. When no box has
// that name, Create decides between inserting one at Location and failing
// with ErrBoxNotFound.
type BoxRef struct {
	Name     string
	Location string
	Create   bool
}

// Store is the collaborator-facing API over the repositories. It owns the
// transaction scopes and runs Cleanup before every product write commits.
type Store struct {
	conn     *Conn
	products *ProductRepo
	boxes    *BoxRepo
	logger   *slog.Logger
}

// NewStore creates a Store on top of conn. A nil logger uses slog.Default().
func NewStore(conn *Conn, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	dialect := conn.Dialect()
	return &Store{
		conn:     conn,
		products: &ProductRepo{dialect: dialect},
		boxes:    &BoxRepo{dialect: dialect},
		logger:   logger,
	}
}

// Conn returns the underlying connection manager
func (s *Store) Conn() *Conn {
	return s.conn
}

// ============================================================================
// Product reads
// ============================================================================

func (s *Store) ListProducts(ctx context.Context) ([]*models.Product, error) {
	db, err := s.conn.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return s.products.List(ctx, db)
}

func (s *Store) SearchProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error) {
	db, err := s.conn.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return s.products.Search(ctx, db, filter)
}

func (s *Store) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	db, err := s.conn.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return s.products.Get(ctx, db, id)
}

func (s *Store) DistinctCategories(ctx context.Context) ([]string, error) {
	db, err := s.conn.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return s.products.DistinctCategories(ctx, db)
}

func (s *Store) DistinctLocations(ctx context.Context) ([]string, error) {
	db, err := s.conn.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return s.products.DistinctLocations(ctx, db)
}

func (s *Store) DistinctBoxNames(ctx context.Context) ([]string, error) {
	db, err := s.conn.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return s.products.DistinctBoxNames(ctx, db)
}

// ============================================================================
// Product writes
// ============================================================================

// AddProduct inserts p with whatever box id it already carries
func (s *Store) AddProduct(ctx context.Context, p *models.Product) error {
	return s.addProduct(ctx, p, nil)
}

// AddProductInBox resolves box and inserts p into it
func (s *Store) AddProductInBox(ctx context.Context, p *models.Product, box BoxRef) error {
	return s.addProduct(ctx, p, &box)
}

func (s *Store) addProduct(ctx context.Context, p *models.Product, box *BoxRef) error {
	if err := p.Validate(); err != nil {
		return err
	}

	prevID, prevBox := p.ID, p.BoxID
	err := s.productWrite(ctx, func(tx *Tx) error {
		if err := s.applyBox(ctx, tx, box, p); err != nil {
			return err
		}
		return s.products.Insert(ctx, tx, p)
	})
	if err != nil {
		p.ID, p.BoxID = prevID, prevBox
		return err
	}

	s.logger.Debug("product added", "id", p.ID, "name", p.Name)
	return nil
}

// UpdateProduct overwrites the stored product with p's values
func (s *Store) UpdateProduct(ctx context.Context, p *models.Product) error {
	return s.updateProduct(ctx, p, nil)
}

// UpdateProductInBox resolves box, moves p into it and overwrites the stored product
func (s *Store) UpdateProductInBox(ctx context.Context, p *models.Product, box BoxRef) error {
	return s.updateProduct(ctx, p, &box)
}

func (s *Store) updateProduct(ctx context.Context, p *models.Product, box *BoxRef) error {
	if err := p.Validate(); err != nil {
		return err
	}

	prevBox := p.BoxID
	err := s.productWrite(ctx, func(tx *Tx) error {
		if err := s.applyBox(ctx, tx, box, p); err != nil {
			return err
		}
		return s.products.Update(ctx, tx, p)
	})
	if err != nil {
		p.BoxID = prevBox
		return err
	}
	return nil
}

// RemoveProduct deletes one product
func (s *Store) RemoveProduct(ctx context.Context, id int) error {
	return s.RemoveProducts(ctx, []int{id})
}

// RemoveProducts deletes every listed product or none of them. An id listed
// more than once is deleted once.
func (s *Store) RemoveProducts(ctx context.Context, ids []int) error {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil
	}
	return s.productWrite(ctx, func(tx *Tx) error {
		for _, id := range ids {
			if err := s.products.Delete(ctx, tx, id); err != nil {
				return err
			}
		}
		return nil
	})
}

// BulkUpdateProducts writes category, box and location of every product in a
// single transaction. If any row fails nothing is changed.
func (s *Store) BulkUpdateProducts(ctx context.Context, products []*models.Product) error {
	return s.bulkUpdate(ctx, products, nil)
}

// BulkUpdateProductsInBox resolves box once and assigns it to every product
func (s *Store) BulkUpdateProductsInBox(ctx context.Context, products []*models.Product, box BoxRef) error {
	return s.bulkUpdate(ctx, products, &box)
}

func (s *Store) bulkUpdate(ctx context.Context, products []*models.Product, box *BoxRef) error {
	if len(products) == 0 {
		return nil
	}

	prevBoxes := make([]*int, len(products))
	for i, p := range products {
		prevBoxes[i] = p.BoxID
	}
	err := s.productWrite(ctx, func(tx *Tx) error {
		if box != nil {
			boxID, err := s.resolveBox(ctx, tx, *box)
			if err != nil {
				return err
			}
			for _, p := range products {
				p.BoxID = boxID
			}
		}
		return s.products.BulkUpdate(ctx, tx, products)
	})
	if err != nil {
		for i, p := range products {
			p.BoxID = prevBoxes[i]
		}
		return err
	}
	return nil
}

// uniqueIDs returns ids without repeats, keeping first occurrence order
func uniqueIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// productWrite runs fn and the cleanup passes in one transaction
func (s *Store) productWrite(ctx context.Context, fn func(*Tx) error) error {
	return WithTx(ctx, s.conn, func(tx *Tx) error {
		if err := fn(tx); err != nil {
			return err
		}
		_, err := Cleanup(ctx, tx, s.logger)
		return err
	})
}

func (s *Store) applyBox(ctx context.Context, q DBTX, box *BoxRef, p *models.Product) error {
	if box == nil {
		return nil
	}
	boxID, err := s.resolveBox(ctx, q, *box)
	if err != nil {
		return err
	}
	p.BoxID = boxID
	return nil
}

// resolveBox finds the box named by ref, creating it when allowed.
// A blank name resolves to no box.
func (s *Store) resolveBox(ctx context.Context, q DBTX, ref BoxRef) (*int, error) {
	name := strings.TrimSpace(ref.Name)
	if name == "" {
		return nil, nil
	}

	id, err := s.boxes.FindIDByName(ctx, q, name)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		if !ref.Create {
			return nil, fmt.Errorf("%w: %q", ErrBoxNotFound, name)
		}
		box := models.NewBox(name, ref.Location)
		if err := s.boxes.Insert(ctx, q, box); err != nil {
			return nil, err
		}
		s.logger.Info("box created", "id", box.ID, "name", name)
		id = box.ID
	}
	return &id, nil
}

// ============================================================================
// Boxes
// ============================================================================

func (s *Store) ListBoxes(ctx context.Context) ([]*models.Box, error) {
	db, err := s.conn.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return s.boxes.List(ctx, db)
}

func (s *Store) GetBox(ctx context.Context, id int) (*models.Box, error) {
	db, err := s.conn.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return s.boxes.Get(ctx, db, id)
}

func (s *Store) FindBoxIDByName(ctx context.Context, name string) (int, error) {
	db, err := s.conn.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	return s.boxes.FindIDByName(ctx, db, name)
}

// FindOrCreateBox returns the id of the box called name. When there is none
// and create is false it returns ErrBoxNotFound so the caller can ask for
// confirmation; with create set a new box is stored at location.
func (s *Store) FindOrCreateBox(ctx context.Context, name, location string, create bool) (int, error) {
	var id int
	err := WithTx(ctx, s.conn, func(tx *Tx) error {
		boxID, err := s.resolveBox(ctx, tx, BoxRef{Name: name, Location: location, Create: create})
		if err != nil {
			return err
		}
		if boxID != nil {
			id = *boxID
		}
		return nil
	})
	return id, err
}

// AddBox stores a new box. Box writes skip cleanup so an empty box survives
// until the next product write.
func (s *Store) AddBox(ctx context.Context, b *models.Box) error {
	return WithTx(ctx, s.conn, func(tx *Tx) error {
		return s.boxes.Insert(ctx, tx, b)
	})
}

func (s *Store) UpdateBox(ctx context.Context, b *models.Box) error {
	return WithTx(ctx, s.conn, func(tx *Tx) error {
		return s.boxes.Update(ctx, tx, b)
	})
}

// DeleteBox removes a box; its products stay and become unboxed
func (s *Store) DeleteBox(ctx context.Context, id int) error {
	return WithTx(ctx, s.conn, func(tx *Tx) error {
		return s.boxes.Delete(ctx, tx, id)
	})
}

// ============================================================================
// Maintenance
// ============================================================================

// Reset deletes every product and box and restarts id generation
func (s *Store) Reset(ctx context.Context) error {
	err := WithTx(ctx, s.conn, func(tx *Tx) error {
		stmts := append([]string{`DELETE FROM products`, `DELETE FROM boxes`}, s.conn.Dialect().resetSequences()...)
		for _, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return queryErr("reset inventory", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("inventory reset")
	return nil
}
