// Package maintenance holds the commands that bulk-load or wipe the inventory
// e.g., stockbox seed, stockbox reset
package maintenance

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/stockbox/internal/cli"
	"github.com/thenoetrevino/stockbox/internal/cli/handler"
	"github.com/thenoetrevino/stockbox/internal/cli/styles"
	"github.com/thenoetrevino/stockbox/internal/database"
)

const (
	defaultSeedBoxes    = 20
	defaultSeedProducts = 200
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the inventory with sample data",
		Long: `Create sample boxes and products.

Boxes ("Box 1" on "Shelf 1", ...) are only created when the inventory has
no boxes yet. Each product gets a random quantity, one of five categories
and a random box. Boxes that receive no product are pruned.

Examples:
  stockbox seed
  stockbox seed --boxes=5 --products=50 --seed=42
`,
		RunE: handler.Command(&seedHandler{}, parseSeedFlags),
	}

	cmd.Flags().Int("boxes", defaultSeedBoxes, "Number of boxes to create")
	cmd.Flags().Int("products", defaultSeedProducts, "Number of products to create")
	cmd.Flags().Uint64("seed", 0, "Random seed for reproducible data (0 picks one)")

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

type seedHandler struct{}

func (h *seedHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cmd := args.GetCmd()
	boxes, _ := cmd.Flags().GetInt("boxes")
	products, _ := cmd.Flags().GetInt("products")
	seed, _ := cmd.Flags().GetUint64("seed")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewPCG(seed, seed))
	}

	res, err := database.Seed(ctx, cliInstance.App.Store(), boxes, products, rng)
	if err != nil {
		return nil, err
	}
	return &seedResult{
		BoxesCreated:    res.BoxesCreated,
		ProductsCreated: res.ProductsCreated,
		BoxesPruned:     int(res.Cleanup.Boxes),
	}, nil
}

type seedResult struct {
	BoxesCreated    int `json:"boxes_created"`
	ProductsCreated int `json:"products_created"`
	BoxesPruned     int `json:"boxes_pruned"`
}

func (r *seedResult) Human() string {
	return styles.TitleStyle.Render(fmt.Sprintf("✓ Seeded %d product(s) into %d new box(es)",
		r.ProductsCreated, r.BoxesCreated-r.BoxesPruned)) + "\n"
}

func parseSeedFlags(cmd *cobra.Command) error {
	parser := handler.NewFlagParser(cmd)
	boxes, err := parser.ParseIntOptional("boxes")
	if err != nil {
		return err
	}
	products, err := parser.ParseIntOptional("products")
	if err != nil {
		return err
	}
	if boxes < 0 || products < 0 {
		return cli.Usagef("--boxes and --products must not be negative")
	}
	return nil
}
