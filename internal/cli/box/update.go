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

// UpdateCmd returns the box update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rename or move a box",
		Long: `Update a box. Only the flags you pass are changed.

Examples:
  stockbox box update --id=1 --name="Box Z"
  stockbox box update --id=1 --location="Shelf 4"
`,
		RunE: handler.Command(&updateHandler{}, parseUpdateFlags),
	}

	cmd.Flags().Int("id", 0, "Box ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("name", "", "New box name")
	cmd.Flags().String("location", "", "New location; empty clears it")

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

	b, err := cliInstance.App.BoxService.UpdateBox(ctx, boxservice.UpdateBoxRequest{
		ID:       args.GetInt("id", 0),
		Name:     args.OptionalString("name"),
		Location: args.OptionalString("location"),
	})
	if err != nil {
		return nil, err
	}
	return &boxResult{Box: toView(b), action: "updated"}, nil
}

func parseUpdateFlags(cmd *cobra.Command) error {
	parser := handler.NewFlagParser(cmd)
	if _, err := parser.ParseID("id"); err != nil {
		return err
	}
	return parser.RequireAny("name", "location")
}
