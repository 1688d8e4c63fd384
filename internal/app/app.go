package app

import (
	"log/slog"

	"github.com/thenoetrevino/stockbox/internal/database"
	boxservice "github.com/thenoetrevino/stockbox/internal/services/box"
	productservice "github.com/thenoetrevino/stockbox/internal/services/product"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	store  *database.Store
	logger *slog.Logger

	// Service layer (business logic)
	ProductService productservice.Service
	BoxService     boxservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(store *database.Store, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	return &App{
		store:          store,
		logger:         cfg.logger,
		ProductService: productservice.NewService(store, cfg.logger),
		BoxService:     boxservice.NewService(store),
	}
}

// Store returns the underlying store for maintenance operations
// (seeding and reset) that sit outside the services.
func (a *App) Store() *database.Store {
	return a.store
}

// Close releases the database connection
func (a *App) Close() error {
	return a.store.Conn().Close()
}
