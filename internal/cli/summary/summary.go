// Package summary holds the stockbox summary command
package summary

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/stockbox/internal/cli"
	"github.com/thenoetrevino/stockbox/internal/cli/handler"
	"github.com/thenoetrevino/stockbox/internal/cli/product"
	"github.com/thenoetrevino/stockbox/internal/cli/styles"
	productservice "github.com/thenoetrevino/stockbox/internal/services/product"
)

const barWidth = 30

// SummaryCmd returns the summary command
func SummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Chart total quantity per category",
		Long: `Show the total quantity per category as a bar chart.
Products without a category are counted as "Uncategorized".
The search filters narrow the products being summed.

Examples:
  stockbox summary
  stockbox summary --box="Box A"
  stockbox summary --json
`,
		RunE: handler.SimpleCommand(&summaryHandler{}),
	}

	product.AddFilterFlags(cmd)
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

type summaryHandler struct{}

func (h *summaryHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	s, err := cliInstance.App.ProductService.Summary(ctx, product.SearchRequestFrom(args))
	if err != nil {
		return nil, err
	}
	return &summaryResult{Summary: s}, nil
}

type summaryResult struct {
	*productservice.Summary
}

// Human renders one bar per category, longest first
func (r *summaryResult) Human() string {
	if len(r.Totals) == 0 {
		return styles.SubtitleStyle.Render("No products found") + "\n"
	}

	labelWidth := 0
	top := 0
	for _, t := range r.Totals {
		labelWidth = max(labelWidth, len([]rune(t.Label)))
		top = max(top, t.Quantity)
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Quantity by category"))
	b.WriteString("\n\n")
	for _, t := range r.Totals {
		b.WriteString(styles.PadRight(styles.LabelStyle.Render(t.Label), labelWidth+2))
		b.WriteString(styles.RenderBar(t.Quantity, top, barWidth))
		b.WriteString(" " + styles.ValueStyle.Render(strconv.Itoa(t.Quantity)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Field("Total", strconv.Itoa(r.Grand)))
	b.WriteString("\n")
	return b.String()
}
