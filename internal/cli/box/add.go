package box

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/stockbox/internal/cli"
	"github.com/thenoetrevino/stockbox/internal/cli/handler"
	boxservice "github.com/thenoetrevino/stockbox/internal/services/box"
)

// AddCmd returns the box add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an empty box",
		Long: `Add a box. Box names are unique.

Note: an empty box is removed by the next product add, update or remove,
so put a product in it before then.

Examples:
  stockbox box add --name="Box A" --location="Shelf 1"
  BOX_ID=$(stockbox box add --name="Box B" --quiet)
`,
		RunE: handler.Command(&addHandler{}, parseAddFlags),
	}

	cmd.Flags().String("name", "", "Box name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("location", "", "Box location")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

type addHandler struct{}

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

	b, err := cliInstance.App.BoxService.CreateBox(ctx, boxservice.CreateBoxRequest{
		Name:     args.GetString("name", ""),
		Location: args.GetString("location", ""),
	})
	if err != nil {
		return nil, err
	}
	return &boxResult{Box: toView(b), action: "added"}, nil
}

func parseAddFlags(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseString("name")
	return err
}
