package box

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/stockbox/internal/cli"
	"github.com/thenoetrevino/stockbox/internal/cli/handler"
)

// ListCmd returns the box list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all boxes",
		RunE:  handler.SimpleCommand(&listHandler{}),
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

	boxes, err := cliInstance.App.BoxService.ListBoxes(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]boxView, 0, len(boxes))
	for _, b := range boxes {
		views = append(views, toView(b))
	}
	return &boxListResult{Boxes: views, Count: len(views)}, nil
}
