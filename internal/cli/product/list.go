package product

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/stockbox/internal/cli"
	"github.com/thenoetrevino/stockbox/internal/cli/handler"
	productservice "github.com/thenoetrevino/stockbox/internal/services/product"
)

// ListCmd returns the product list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all products",
		Long: `List every product with its box name, in insertion order.

Examples:
  stockbox product list
  stockbox product list --json
  stockbox product list --quiet   # one ID per line
`,
		RunE: handler.SimpleCommand(&listHandler{}),
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

type listHandler struct{}

func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	products, err := cliInstance.App.ProductService.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return newListResult(products), nil
}

// SearchCmd returns the product search subcommand
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search products",
		Long: `Search products. Every filter is optional and filters combine with AND.

--term matches the product name or its box name (case-insensitive substring).
--category, --location and --box match exactly, ignoring case.
--min and --max bound the quantity inclusively.

Examples:
  stockbox product search --term=bolt
  stockbox product search --category=hardware --max=9
  stockbox product search --box="Box A" --json
`,
		RunE: handler.SimpleCommand(&searchHandler{}),
	}

	AddFilterFlags(cmd)
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

// AddFilterFlags registers the search filter flags on cmd
func AddFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("term", "", "Substring of the product or box name")
	cmd.Flags().String("category", "", "Exact category, ignoring case")
	cmd.Flags().String("location", "", "Exact location, ignoring case")
	cmd.Flags().String("box", "", "Exact box name, ignoring case")
	cmd.Flags().String("min", "", "Minimum quantity (inclusive)")
	cmd.Flags().String("max", "", "Maximum quantity (inclusive)")
}

// SearchRequestFrom builds a search request from the filter flags
func SearchRequestFrom(args *handler.Arguments) productservice.SearchRequest {
	return productservice.SearchRequest{
		Term:        args.GetString("term", ""),
		Category:    args.GetString("category", ""),
		Location:    args.GetString("location", ""),
		Box:         args.GetString("box", ""),
		MinQuantity: args.GetString("min", ""),
		MaxQuantity: args.GetString("max", ""),
	}
}

type searchHandler struct{}

func (h *searchHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	products, err := cliInstance.App.ProductService.SearchProducts(ctx, SearchRequestFrom(args))
	if err != nil {
		return nil, err
	}
	return newListResult(products), nil
}
