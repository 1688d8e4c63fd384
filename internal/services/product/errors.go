package product

import (
	"errors"

	"github.com/thenoetrevino/stockbox/internal/database"
)

// Product-related errors
var (
	// Validation errors
	ErrInvalidProductID   = errors.New("invalid product ID")
	ErrNoProductsSelected = errors.New("no products selected")
	ErrNoChanges          = errors.New("no fields to update")

	// Business logic errors
	ErrProductNotFound = database.ErrProductNotFound
	ErrBoxNotFound     = database.ErrBoxNotFound
)
