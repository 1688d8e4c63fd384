package database

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	result, err := Seed(ctx, s, 10, 40, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	assert.Equal(t, 10, result.BoxesCreated)
	assert.Equal(t, 40, result.ProductsCreated)

	products, err := s.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 40)
	for _, p := range products {
		assert.GreaterOrEqual(t, p.Quantity, 1)
		assert.LessOrEqual(t, p.Quantity, 500)
		assert.Contains(t, p.CategoryLabel(), "Category ")
		assert.NotNil(t, p.BoxID)
	}

	boxes, err := s.ListBoxes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10-len(boxes)), result.Cleanup.Boxes)

	boxNames, err := s.DistinctBoxNames(ctx)
	require.NoError(t, err)
	assert.Len(t, boxNames, len(boxes), "every remaining box holds a product")
}

func TestSeedReusesExistingBoxes(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)
	addInBox(t, s, "Bolt", 1, "", "Box A")

	result, err := Seed(ctx, s, 10, 5, rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)
	assert.Zero(t, result.BoxesCreated)

	boxes, err := s.ListBoxes(ctx)
	require.NoError(t, err)
	require.Len(t, boxes, 1)
	assert.Equal(t, "Box A", boxes[0].DisplayName())
}
