package product

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/stockbox/internal/database"
	"github.com/thenoetrevino/stockbox/internal/models"
	"github.com/thenoetrevino/stockbox/internal/summary"
)

// Service defines all product-related business operations
type Service interface {
	// Read operations
	ListProducts(ctx context.Context) ([]*models.Product, error)
	GetProduct(ctx context.Context, id int) (*models.Product, error)
	SearchProducts(ctx context.Context, req SearchRequest) ([]*models.Product, error)
	FilterChoices(ctx context.Context) (*FilterChoices, error)
	Summary(ctx context.Context, req SearchRequest) (*Summary, error)

	// Write operations
	CreateProduct(ctx context.Context, req CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, req UpdateProductRequest) (*models.Product, error)
	DeleteProducts(ctx context.Context, ids []int) error
	BulkUpdate(ctx context.Context, req BulkUpdateRequest) error
}

// SearchRequest carries raw filter input. Quantity bounds are text so that
// malformed numbers are reported as validation errors.
type SearchRequest struct {
	Term        string
	Category    string
	Location    string
	Box         string
	MinQuantity string
	MaxQuantity string
}

// CreateProductRequest encapsulates data for creating a product
type CreateProductRequest struct {
	Name     string
	Quantity int
	Category string
	Location string
	BoxName  string
	// CreateBox confirms that an unknown BoxName should become a new box
	CreateBox bool
}

// UpdateProductRequest encapsulates data for updating a product.
// Nil fields keep their stored value.
type UpdateProductRequest struct {
	ID        int
	Name      *string
	Quantity  *int
	Category  *string
	Location  *string
	BoxName   *string
	CreateBox bool
}

// BulkUpdateRequest assigns the same category, box and location to many products
type BulkUpdateRequest struct {
	IDs       []int
	Category  string
	Location  string
	BoxName   string
	CreateBox bool
}

// FilterChoices lists the values offered by the search filters
type FilterChoices struct {
	Categories []string `json:"categories"`
	Locations  []string `json:"locations"`
	Boxes      []string `json:"boxes"`
}

// Summary is the per-category quantity chart for a product list
type Summary struct {
	Totals []summary.Total `json:"totals"`
	Grand  int             `json:"grand_total"`
}

// service implements Service interface
type service struct {
	repo   database.DataStore
	logger *slog.Logger
}

// NewService creates a new product service
func NewService(repo database.DataStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// ListProducts retrieves every product with its box name
func (s *service) ListProducts(ctx context.Context) ([]*models.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct retrieves a single product
func (s *service) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	if id <= 0 {
		return nil, ErrInvalidProductID
	}
	p, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return p, nil
}

// SearchProducts validates the raw filter input and runs the search
func (s *service) SearchProducts(ctx context.Context, req SearchRequest) ([]*models.Product, error) {
	filter, err := req.Filter()
	if err != nil {
		return nil, err
	}

	if filter.IsEmpty() {
		return s.ListProducts(ctx)
	}

	products, err := s.repo.SearchProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

// Filter converts the request into a ProductFilter
func (r SearchRequest) Filter() (models.ProductFilter, error) {
	minQty, err := models.ParseQuantityBound("minimum quantity", r.MinQuantity)
	if err != nil {
		return models.ProductFilter{}, err
	}
	maxQty, err := models.ParseQuantityBound("maximum quantity", r.MaxQuantity)
	if err != nil {
		return models.ProductFilter{}, err
	}

	return models.ProductFilter{
		Term:        r.Term,
		Category:    models.OptionalString(r.Category),
		Location:    models.OptionalString(r.Location),
		BoxName:     models.OptionalString(r.Box),
		MinQuantity: minQty,
		MaxQuantity: maxQty,
	}, nil
}

// FilterChoices loads the three distinct value lists concurrently
func (s *service) FilterChoices(ctx context.Context) (*FilterChoices, error) {
	choices := &FilterChoices{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		choices.Categories, err = s.repo.DistinctCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		choices.Locations, err = s.repo.DistinctLocations(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		choices.Boxes, err = s.repo.DistinctBoxNames(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load filter choices: %w", err)
	}
	return choices, nil
}

// Summary totals the quantities of the matching products per category
func (s *service) Summary(ctx context.Context, req SearchRequest) (*Summary, error) {
	products, err := s.SearchProducts(ctx, req)
	if err != nil {
		return nil, err
	}

	totals := summary.TotalsByCategory(products)
	return &Summary{
		Totals: summary.Sorted(totals),
		Grand:  summary.Grand(totals),
	}, nil
}

// CreateProduct validates the request and stores the product. A new box takes
// the product's location.
func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*models.Product, error) {
	p, err := models.NewProduct(req.Name, req.Quantity)
	if err != nil {
		return nil, err
	}
	p.SetCategory(req.Category)
	p.SetLocation(req.Location)

	ref := database.BoxRef{Name: req.BoxName, Location: req.Location, Create: req.CreateBox}
	if err := s.repo.AddProductInBox(ctx, p, ref); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("product created", "id", p.ID, "name", p.Name, "quantity", p.Quantity)
	return s.reload(ctx, p.ID)
}

// UpdateProduct applies the non-nil fields of req to the stored product
func (s *service) UpdateProduct(ctx context.Context, req UpdateProductRequest) (*models.Product, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidProductID
	}
	if req.Name == nil && req.Quantity == nil && req.Category == nil && req.Location == nil && req.BoxName == nil {
		return nil, ErrNoChanges
	}

	p, err := s.repo.GetProduct(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if req.Name != nil {
		if err := p.SetName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Quantity != nil {
		if err := p.SetQuantity(*req.Quantity); err != nil {
			return nil, err
		}
	}
	if req.Category != nil {
		p.SetCategory(*req.Category)
	}
	if req.Location != nil {
		p.SetLocation(*req.Location)
	}

	if req.BoxName != nil {
		ref := database.BoxRef{Name: *req.BoxName, Location: p.LocationLabel(), Create: req.CreateBox}
		err = s.repo.UpdateProductInBox(ctx, p, ref)
	} else {
		err = s.repo.UpdateProduct(ctx, p)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return s.reload(ctx, p.ID)
}

// DeleteProducts removes every listed product in one transaction
func (s *service) DeleteProducts(ctx context.Context, ids []int) error {
	if err := validateIDs(ids); err != nil {
		return err
	}
	if err := s.repo.RemoveProducts(ctx, ids); err != nil {
		return fmt.Errorf("failed to delete products: %w", err)
	}

	s.logger.Info("products deleted", "count", len(ids))
	return nil
}

// BulkUpdate writes category, box and location to every listed product or to none
func (s *service) BulkUpdate(ctx context.Context, req BulkUpdateRequest) error {
	if err := validateIDs(req.IDs); err != nil {
		return err
	}

	products := make([]*models.Product, 0, len(req.IDs))
	for _, id := range req.IDs {
		p := &models.Product{ID: id}
		p.SetCategory(req.Category)
		p.SetLocation(req.Location)
		products = append(products, p)
	}

	ref := database.BoxRef{Name: req.BoxName, Location: req.Location, Create: req.CreateBox}
	if err := s.repo.BulkUpdateProductsInBox(ctx, products, ref); err != nil {
		return fmt.Errorf("failed to bulk update products: %w", err)
	}

	s.logger.Info("products bulk updated", "count", len(products))
	return nil
}

func (s *service) reload(ctx context.Context, id int) (*models.Product, error) {
	p, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload product: %w", err)
	}
	return p, nil
}

func validateIDs(ids []int) error {
	if len(ids) == 0 {
		return ErrNoProductsSelected
	}
	for _, id := range ids {
		if id <= 0 {
			return ErrInvalidProductID
		}
	}
	return nil
}
