package box

import (
	"errors"

	"github.com/thenoetrevino/stockbox/internal/database"
)

// Box-related errors
var (
	// Validation errors
	ErrEmptyName    = errors.New("box name cannot be empty")
	ErrInvalidBoxID = errors.New("invalid box ID")

	// Business logic errors
	ErrBoxExists   = errors.New("a box with this name already exists")
	ErrBoxNotFound = database.ErrBoxNotFound
)
