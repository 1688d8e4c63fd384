package database

import (
	"context"

	"github.com/thenoetrevino/stockbox/internal/models"
)

// ProductReader defines read operations for products.
type ProductReader interface {
	ListProducts(ctx context.Context) ([]*models.Product, error)
	SearchProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, error)
	GetProduct(ctx context.Context, id int) (*models.Product, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	DistinctLocations(ctx context.Context) ([]string, error)
	DistinctBoxNames(ctx context.Context) ([]string, error)
}

// ProductWriter defines write operations for products. Every write runs the
// referential cleanup before it commits.
type ProductWriter interface {
	AddProduct(ctx context.Context, p *models.Product) error
	AddProductInBox(ctx context.Context, p *models.Product, box BoxRef) error
	UpdateProduct(ctx context.Context, p *models.Product) error
	UpdateProductInBox(ctx context.Context, p *models.Product, box BoxRef) error
	RemoveProduct(ctx context.Context, id int) error
	RemoveProducts(ctx context.Context, ids []int) error
	BulkUpdateProducts(ctx context.Context, products []*models.Product) error
	BulkUpdateProductsInBox(ctx context.Context, products []*models.Product, box BoxRef) error
}

// BoxReader defines read operations for boxes.
type BoxReader interface {
	ListBoxes(ctx context.Context) ([]*models.Box, error)
	GetBox(ctx context.Context, id int) (*models.Box, error)
	FindBoxIDByName(ctx context.Context, name string) (int, error)
}

// BoxWriter defines write operations for boxes.
type BoxWriter interface {
	AddBox(ctx context.Context, b *models.Box) error
	UpdateBox(ctx context.Context, b *models.Box) error
	DeleteBox(ctx context.Context, id int) error
	FindOrCreateBox(ctx context.Context, name, location string, create bool) (int, error)
}

// DataStore defines the unified interface for all data operations needed by
// the services. Consumers can depend on the smaller interfaces instead.
type DataStore interface {
	ProductReader
	ProductWriter
	BoxReader
	BoxWriter
	Reset(ctx context.Context) error
}

var _ DataStore = (*Store)(nil)
