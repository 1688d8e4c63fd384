package product

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/stockbox/internal/cli"
	"github.com/thenoetrevino/stockbox/internal/cli/handler"
	productservice "github.com/thenoetrevino/stockbox/internal/services/product"
)

// UpdateCmd returns the product update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a product",
		Long: `Update the fields of a product. Only the flags you pass are changed;
pass an empty value (e.g. --category="") to clear an optional field.

Examples:
  stockbox product update --id=1 --quantity=12
  stockbox product update --id=1 --box="Box B" --create-box
  stockbox product update --id=1 --location=""
`,
		RunE: handler.Command(&updateHandler{}, parseUpdateFlags),
	}

	cmd.Flags().Int("id", 0, "Product ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().String("name", "", "New product name")
	cmd.Flags().Int("quantity", 0, "New quantity, greater than zero")
	cmd.Flags().String("category", "", "New category")
	cmd.Flags().String("location", "", "New location")
	cmd.Flags().String("box", "", "New box name; empty removes the product from its box")
	cmd.Flags().Bool("create-box", false, "Create the box if no box has that name")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

type updateHandler struct{}

func (h *updateHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	req := productservice.UpdateProductRequest{
		ID:        args.GetInt("id", 0),
		Name:      args.OptionalString("name"),
		Quantity:  args.OptionalInt("quantity"),
		Category:  args.OptionalString("category"),
		Location:  args.OptionalString("location"),
		BoxName:   args.OptionalString("box"),
		CreateBox: args.GetBool("create-box"),
	}
	p, err := cliInstance.App.ProductService.UpdateProduct(ctx, req)
	if errors.Is(err, productservice.ErrBoxNotFound) && req.BoxName != nil && confirmCreateBox(args, *req.BoxName) {
		req.CreateBox = true
		p, err = cliInstance.App.ProductService.UpdateProduct(ctx, req)
	}
	if err != nil {
		return nil, boxNotFoundHint(err)
	}

	return &productResult{Product: toView(p), action: "updated"}, nil
}

func parseUpdateFlags(cmd *cobra.Command) error {
	parser := handler.NewFlagParser(cmd)
	if _, err := parser.ParseID("id"); err != nil {
		return err
	}
	return parser.RequireAny("name", "quantity", "category", "location", "box")
}
