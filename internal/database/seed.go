package database

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/thenoetrevino/stockbox/internal/models"
)

const (
	seedMaxQuantity   = 500
	seedCategoryCount = 5
)

// SeedResult describes what Seed wrote
type SeedResult struct {
	BoxesCreated    int
	ProductsCreated int
	Cleanup         CleanupReport
}

// Seed fills the store with sample data. When no boxes exist it creates
// boxCount of them ("Box i" on "Shelf i"), then adds productCount products
// with a random quantity, one of five categories and a random box. Everything
// happens in one transaction, so boxes no product landed in are pruned by the
// cleanup before commit.
func Seed(ctx context.Context, s *Store, boxCount, productCount int, rng *rand.Rand) (SeedResult, error) {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	var result SeedResult
	err := WithTx(ctx, s.conn, func(tx *Tx) error {
		boxes, err := s.boxes.List(ctx, tx)
		if err != nil {
			return err
		}

		if len(boxes) == 0 {
			for i := 1; i <= boxCount; i++ {
				box := models.NewBox(fmt.Sprintf("Box %d", i), fmt.Sprintf("Shelf %d", i))
				if err := s.boxes.Insert(ctx, tx, box); err != nil {
					return err
				}
				boxes = append(boxes, box)
				result.BoxesCreated++
			}
		}

		for i := 1; i <= productCount; i++ {
			p, err := models.NewProduct(fmt.Sprintf("Product %d", i), rng.IntN(seedMaxQuantity)+1)
			if err != nil {
				return err
			}
			p.SetCategory(fmt.Sprintf("Category %d", rng.IntN(seedCategoryCount)+1))
			if len(boxes) > 0 {
				p.SetBox(boxes[rng.IntN(len(boxes))].ID)
			}
			if err := s.products.Insert(ctx, tx, p); err != nil {
				return err
			}
			result.ProductsCreated++
		}

		result.Cleanup, err = Cleanup(ctx, tx, s.logger)
		return err
	})
	if err != nil {
		return SeedResult{}, fmt.Errorf("failed to seed inventory: %w", err)
	}

	s.logger.Info("inventory seeded",
		"boxes", result.BoxesCreated,
		"products", result.ProductsCreated,
		"pruned_boxes", result.Cleanup.Boxes,
	)
	return result, nil
}
