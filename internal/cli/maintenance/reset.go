package maintenance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/stockbox/internal/cli"
	"github.com/thenoetrevino/stockbox/internal/cli/handler"
	"github.com/thenoetrevino/stockbox/internal/cli/prompt"
	"github.com/thenoetrevino/stockbox/internal/cli/styles"
)

// ResetCmd returns the reset command
func ResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every product and box",
		Long: `Delete all products and boxes and restart ID numbering at 1.
This cannot be undone: you are asked to confirm, or pass --yes when
running without a terminal.

Examples:
  stockbox reset --yes
`,
		RunE: handler.Command(&resetHandler{}, parseResetFlags),
	}

	cmd.Flags().Bool("yes", false, "Confirm deleting the whole inventory")
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

type resetHandler struct{}

func (h *resetHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	if err := cliInstance.App.Store().Reset(ctx); err != nil {
		return nil, fmt.Errorf("failed to reset inventory: %w", err)
	}
	return &resetResult{Reset: true}, nil
}

type resetResult struct {
	Reset bool `json:"reset"`
}

func (r *resetResult) Human() string {
	return styles.TitleStyle.Render("✓ Inventory reset") + "\n"
}

func parseResetFlags(cmd *cobra.Command) error {
	parser := handler.NewFlagParser(cmd)
	yes, err := parser.ParseBool("yes")
	if err != nil {
		return err
	}
	if yes {
		return nil
	}

	jsonOutput, _, err := parser.OutputFormats()
	if err != nil {
		return err
	}
	if jsonOutput || !prompt.Interactive() {
		return cli.Usagef("refusing to delete the inventory without --yes")
	}
	ok, err := prompt.Confirm("Delete every product and box?", "This cannot be undone.")
	if err != nil {
		return err
	}
	if !ok {
		return cli.Usagef("reset cancelled")
	}
	return nil
}
