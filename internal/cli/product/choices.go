package product

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/stockbox/internal/cli"
	"github.com/thenoetrevino/stockbox/internal/cli/handler"
)

// ChoicesCmd returns the product choices subcommand
func ChoicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "choices",
		Short: "Show the distinct categories, locations and box names in use",
		RunE:  handler.SimpleCommand(&choicesHandler{}),
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

type choicesHandler struct{}

func (h *choicesHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	choices, err := cliInstance.App.ProductService.FilterChoices(ctx)
	if err != nil {
		return nil, err
	}
	return &choicesResult{FilterChoices: choices}, nil
}
