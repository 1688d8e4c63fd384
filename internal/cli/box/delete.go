package box

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/stockbox/internal/cli"
	"github.com/thenoetrevino/stockbox/internal/cli/handler"
)

// DeleteCmd returns the box delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a box",
		Long: `Delete a box. Its products stay in the inventory without a box.

Examples:
  stockbox box delete --id=2
`,
		RunE: handler.Command(&deleteHandler{}, parseDeleteFlags),
	}

	cmd.Flags().Int("id", 0, "Box ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

type deleteHandler struct{}

func (h *deleteHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	id := args.GetInt("id", 0)
	if err := cliInstance.App.BoxService.DeleteBox(ctx, id); err != nil {
		return nil, err
	}
	return &deleteResult{ID: id}, nil
}

type deleteResult struct {
	ID int `json:"id"`
}

// GetID implements the GetID interface for quiet mode output
func (r *deleteResult) GetID() int {
	return r.ID
}

func (r *deleteResult) Human() string {
	return fmt.Sprintf("✓ Box %d deleted\n", r.ID)
}

func parseDeleteFlags(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseID("id")
	return err
}
