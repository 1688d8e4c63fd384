package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/stockbox/internal/app"
	"github.com/thenoetrevino/stockbox/internal/cli/prompt"
	"github.com/thenoetrevino/stockbox/internal/cli/styles"
	"github.com/thenoetrevino/stockbox/internal/config"
	"github.com/thenoetrevino/stockbox/internal/database"
	"github.com/thenoetrevino/stockbox/internal/logging"
	"github.com/thenoetrevino/stockbox/internal/testutil"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	owned  bool
}

// NewCLI loads the config, starts logging, opens the store and wires the app
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logging.Init(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	styles.Init(cfg.ColorScheme)
	prompt.Init(cfg.ColorScheme)

	conn, err := database.InitDB(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	store := database.NewStore(conn, logging.Logger)
	return &CLI{
		App:    app.New(store, app.WithLogger(logging.Logger)),
		Config: cfg,
		owned:  true,
	}, nil
}

// GetCLIFromContext returns a CLI for the command. Tests place a ready App in
// the context; otherwise a fresh CLI is initialized from the user's config.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if testApp, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok && testApp != nil {
		styles.Init(config.DefaultColorScheme())
		return &CLI{App: testApp, Config: config.Default()}, nil
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources. An injected App is left open for its owner.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	if err := c.App.Close(); err != nil {
		slog.Error("failed to close database", "error", err)
		return err
	}
	return nil
}
