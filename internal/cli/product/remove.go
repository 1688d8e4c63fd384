package product

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/stockbox/internal/cli"
	"github.com/thenoetrevino/stockbox/internal/cli/handler"
)

// RemoveCmd returns the product remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove one or more products",
		Long: `Remove products by ID. Either every listed product is removed or none is.
Boxes left without products are deleted afterwards.

Examples:
  stockbox product remove --id=3
  stockbox product remove --id=1,2,5
  stockbox product remove --id=1 --id=2 --json
`,
		RunE: handler.Command(&removeHandler{}, parseIDFlags),
	}

	cmd.Flags().IntSlice("id", nil, "Product ID; repeat or comma separate for several (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

type removeHandler struct{}

func (h *removeHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	ids, err := handler.NewFlagParser(args.GetCmd()).ParseIDs("id")
	if err != nil {
		return nil, err
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	if err := cliInstance.App.ProductService.DeleteProducts(ctx, ids); err != nil {
		return nil, err
	}

	return &idsResult{IDs: ids, Count: len(ids), action: "Removed"}, nil
}

func parseIDFlags(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseIDs("id")
	return err
}
