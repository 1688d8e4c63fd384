// Package summary aggregates product quantities for the category chart.
package summary

import (
	"sort"
	"strings"

	"github.com/thenoetrevino/stockbox/internal/models"
)

// Uncategorized labels products without a category
const Uncategorized = "Uncategorized"

// Total is one bar of the category chart
type Total struct {
	Label    string `json:"label"`
	Quantity int    `json:"quantity"`
}

// TotalsByCategory sums quantities per category. Nil or blank categories are
// counted under Uncategorized. The input is not modified.
func TotalsByCategory(products []*models.Product) map[string]int {
	totals := make(map[string]int)
	for _, p := range products {
		if p == nil {
			continue
		}
		label := strings.TrimSpace(p.CategoryLabel())
		if label == "" {
			label = Uncategorized
		}
		totals[label] += p.Quantity
	}
	return totals
}

// Sorted orders totals by descending quantity, ties broken by label
func Sorted(totals map[string]int) []Total {
	out := make([]Total, 0, len(totals))
	for label, qty := range totals {
		out = append(out, Total{Label: label, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// Grand returns the sum over all categories
func Grand(totals map[string]int) int {
	sum := 0
	for _, qty := range totals {
		sum += qty
	}
	return sum
}
