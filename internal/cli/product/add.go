package product

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/stockbox/internal/cli"
	"github.com/thenoetrevino/stockbox/internal/cli/handler"
	"github.com/thenoetrevino/stockbox/internal/cli/prompt"
	productservice "github.com/thenoetrevino/stockbox/internal/services/product"
)

// AddCmd returns the product add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new product",
		Long: `Add a product with a name and a quantity greater than zero.

Examples:
  # Add an unboxed product
  stockbox product add --name="Bolt" --quantity=10 --category="Hardware"

  # Put it in a box, creating the box on the product's location if needed
  stockbox product add --name="Nut" --quantity=5 --box="Box A" --location="Shelf 1" --create-box

  # Quiet mode for bash capture
  PRODUCT_ID=$(stockbox product add --name="Screw" --quantity=20 --quiet)
`,
		RunE: handler.SimpleCommand(&addHandler{}),
	}

	// Required flags
	cmd.Flags().String("name", "", "Product name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().Int("quantity", 0, "Quantity, greater than zero (required)")
	if err := cmd.MarkFlagRequired("quantity"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("category", "", "Product category")
	cmd.Flags().String("location", "", "Product location")
	cmd.Flags().String("box", "", "Name of the box holding the product")
	cmd.Flags().Bool("create-box", false, "Create the box if no box has that name")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

// addHandler implements handler.Handler for product creation
type addHandler struct{}

// Execute implements the Handler interface
func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	req := productservice.CreateProductRequest{
		Name:      args.GetString("name", ""),
		Quantity:  args.GetInt("quantity", 0),
		Category:  args.GetString("category", ""),
		Location:  args.GetString("location", ""),
		BoxName:   args.GetString("box", ""),
		CreateBox: args.GetBool("create-box"),
	}
	p, err := cliInstance.App.ProductService.CreateProduct(ctx, req)
	if errors.Is(err, productservice.ErrBoxNotFound) && confirmCreateBox(args, req.BoxName) {
		req.CreateBox = true
		p, err = cliInstance.App.ProductService.CreateProduct(ctx, req)
	}
	if err != nil {
		return nil, boxNotFoundHint(err)
	}

	return &productResult{Product: toView(p), action: "added"}, nil
}

// boxNotFoundHint tells the user how to get past an unknown box name
func boxNotFoundHint(err error) error {
	if errors.Is(err, productservice.ErrBoxNotFound) {
		return cli.WithHint(err, boxHint)
	}
	return err
}

// confirmCreateBox asks whether an unknown box should be created. Machine
// readable output modes never prompt.
func confirmCreateBox(args *handler.Arguments, name string) bool {
	if args.GetBool("json") || args.GetBool("quiet") {
		return false
	}
	ok, err := prompt.Confirm(fmt.Sprintf("Box %q does not exist. Create it?", strings.TrimSpace(name)), "")
	if err != nil {
		slog.Warn("box confirmation failed", "error", err)
		return false
	}
	return ok
}
