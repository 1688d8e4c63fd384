package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/stockbox/internal/cli"
	"github.com/thenoetrevino/stockbox/internal/cli/box"
	"github.com/thenoetrevino/stockbox/internal/cli/maintenance"
	"github.com/thenoetrevino/stockbox/internal/cli/product"
	"github.com/thenoetrevino/stockbox/internal/cli/summary"
)

// NewRootCmd builds the stockbox command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stockbox",
		Short: "Stockbox - a small inventory of products and boxes",
		Long: `Stockbox tracks products, their quantities and the boxes they are stored in.

Data lives in ~/.stockbox/inventory.db by default; see
~/.config/stockbox/config.yaml to change the location or use PostgreSQL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(product.ProductCmd())
	rootCmd.AddCommand(box.BoxCmd())
	rootCmd.AddCommand(summary.SummaryCmd())
	rootCmd.AddCommand(maintenance.SeedCmd())
	rootCmd.AddCommand(maintenance.ResetCmd())

	return rootCmd
}

// Execute runs the CLI and returns the process exit code
func Execute(ctx context.Context) int {
	err := NewRootCmd().ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	// Handler failures were already reported by the output formatter.
	// Anything else comes from cobra itself: unknown commands or bad flags.
	var coded *cli.CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
	return cli.ExitUsage
}
