package box

import (
	"context"
	"fmt"
	"strings"

	"github.com/thenoetrevino/stockbox/internal/database"
	"github.com/thenoetrevino/stockbox/internal/models"
)

// Service defines all box-related business operations
type Service interface {
	// Read operations
	ListBoxes(ctx context.Context) ([]*models.Box, error)
	GetBox(ctx context.Context, id int) (*models.Box, error)
	FindBoxID(ctx context.Context, name string) (int, error)

	// Write operations
	CreateBox(ctx context.Context, req CreateBoxRequest) (*models.Box, error)
	UpdateBox(ctx context.Context, req UpdateBoxRequest) (*models.Box, error)
	DeleteBox(ctx context.Context, id int) error
	FindOrCreateBox(ctx context.Context, req FindOrCreateRequest) (int, error)
}

// CreateBoxRequest encapsulates data for creating a box
type CreateBoxRequest struct {
	Name     string
	Location string
}

// UpdateBoxRequest encapsulates data for updating a box
type UpdateBoxRequest struct {
	ID       int
	Name     *string
	Location *string
}

// FindOrCreateRequest names a box that may not exist yet. Create must be set
// for a missing box to be stored; otherwise ErrBoxNotFound is returned.
type FindOrCreateRequest struct {
	Name     string
	Location string
	Create   bool
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new box service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

func (s *service) ListBoxes(ctx context.Context) ([]*models.Box, error) {
	boxes, err := s.repo.ListBoxes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list boxes: %w", err)
	}
	return boxes, nil
}

func (s *service) GetBox(ctx context.Context, id int) (*models.Box, error) {
	if id <= 0 {
		return nil, ErrInvalidBoxID
	}
	b, err := s.repo.GetBox(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get box: %w", err)
	}
	return b, nil
}

// FindBoxID returns the id of the box with exactly this name, or 0
func (s *service) FindBoxID(ctx context.Context, name string) (int, error) {
	if strings.TrimSpace(name) == "" {
		return 0, ErrEmptyName
	}
	id, err := s.repo.FindBoxIDByName(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("failed to find box: %w", err)
	}
	return id, nil
}

// CreateBox stores a new, empty box. Names are kept unique so lookups by name
// stay unambiguous.
func (s *service) CreateBox(ctx context.Context, req CreateBoxRequest) (*models.Box, error) {
	if err := s.ensureNameFree(ctx, req.Name, 0); err != nil {
		return nil, err
	}

	b := models.NewBox(req.Name, req.Location)
	if err := s.repo.AddBox(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create box: %w", err)
	}
	return b, nil
}

// UpdateBox applies the non-nil fields of req to the stored box
func (s *service) UpdateBox(ctx context.Context, req UpdateBoxRequest) (*models.Box, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidBoxID
	}

	b, err := s.repo.GetBox(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get box: %w", err)
	}

	if req.Name != nil {
		if err := s.ensureNameFree(ctx, *req.Name, req.ID); err != nil {
			return nil, err
		}
		b.Name = models.OptionalString(*req.Name)
	}
	if req.Location != nil {
		b.Location = models.OptionalString(*req.Location)
	}

	if err := s.repo.UpdateBox(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to update box: %w", err)
	}
	return b, nil
}

// DeleteBox removes a box; its products become unboxed
func (s *service) DeleteBox(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidBoxID
	}
	if err := s.repo.DeleteBox(ctx, id); err != nil {
		return fmt.Errorf("failed to delete box: %w", err)
	}
	return nil
}

func (s *service) FindOrCreateBox(ctx context.Context, req FindOrCreateRequest) (int, error) {
	if strings.TrimSpace(req.Name) == "" {
		return 0, ErrEmptyName
	}
	id, err := s.repo.FindOrCreateBox(ctx, req.Name, req.Location, req.Create)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve box: %w", err)
	}
	return id, nil
}

// ensureNameFree rejects a blank name or one already used by another box
func (s *service) ensureNameFree(ctx context.Context, name string, selfID int) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	existing, err := s.repo.FindBoxIDByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("failed to check box name: %w", err)
	}
	if existing != 0 && existing != selfID {
		return ErrBoxExists
	}
	return nil
}
