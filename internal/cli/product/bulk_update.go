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
	"github.com/thenoetrevino/stockbox/internal/models"
	productservice "github.com/thenoetrevino/stockbox/internal/services/product"
)

// BulkUpdateCmd returns the product bulk-update subcommand
func BulkUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bulk-update",
		Short: "Set category, box and location on several products",
		Long: `Assign the same category, box and location to every listed product.
All three fields are written; an omitted flag clears that field.
Either every product is updated or none is.

--match narrows the listed IDs to the products whose name or box name
contains the text, the same way "product search --term" matches.

Examples:
  stockbox product bulk-update --id=1,2,3 --category="Hardware" --box="Box A"
  stockbox product bulk-update --id=4 --id=5 --box="Box C" --location="Shelf 3" --create-box
  stockbox product bulk-update --id=1,2,3,4 --match=bolt --category="Fasteners"
`,
		RunE: handler.Command(&bulkUpdateHandler{}, parseIDFlags),
	}

	cmd.Flags().IntSlice("id", nil, "Product ID; repeat or comma separate for several (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().String("category", "", "Category for every product")
	cmd.Flags().String("location", "", "Location for every product")
	cmd.Flags().String("box", "", "Box name for every product")
	cmd.Flags().Bool("create-box", false, "Create the box if no box has that name")
	cmd.Flags().String("match", "", "Only update listed products whose name or box contains this text")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

type bulkUpdateHandler struct{}

func (h *bulkUpdateHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	selected, err := handler.NewFlagParser(args.GetCmd()).ParseSelection("id")
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

	if match := strings.TrimSpace(args.GetString("match", "")); match != "" {
		visible, err := cliInstance.App.ProductService.SearchProducts(ctx, productservice.SearchRequest{Term: match})
		if err != nil {
			return nil, err
		}
		selected.Retain(productIDs(visible))
		if selected.Len() == 0 {
			return nil, cli.Usagef("none of the listed products match %q", match)
		}
	}
	ids := selected.IDs()

	req := productservice.BulkUpdateRequest{
		IDs:       ids,
		Category:  args.GetString("category", ""),
		Location:  args.GetString("location", ""),
		BoxName:   args.GetString("box", ""),
		CreateBox: args.GetBool("create-box"),
	}
	err = cliInstance.App.ProductService.BulkUpdate(ctx, req)
	if errors.Is(err, productservice.ErrBoxNotFound) && confirmCreateBox(args, req.BoxName) {
		req.CreateBox = true
		err = cliInstance.App.ProductService.BulkUpdate(ctx, req)
	}
	if err != nil {
		return nil, boxNotFoundHint(err)
	}

	return &idsResult{IDs: ids, Count: len(ids), action: "Updated"}, nil
}

func productIDs(products []*models.Product) []int {
	ids := make([]int, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}
