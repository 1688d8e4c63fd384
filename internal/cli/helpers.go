package cli

import (
	"github.com/thenoetrevino/stockbox/internal/selection"
	"github.com/thenoetrevino/stockbox/internal/types"
)

// SelectProducts turns repeated or comma separated --id values into a
// de-duplicated, ascending selection. Non-positive ids are reported as a
// usage error rather than silently dropped.
func SelectProducts(ids []int) (*selection.Set, error) {
	set := selection.New()
	for _, id := range ids {
		if id <= 0 {
			return nil, Usagef("product id must be greater than 0, got %d", id)
		}
		set.Add(types.ProductID(id))
	}
	if set.Len() == 0 {
		return nil, Usagef("at least one --id is required")
	}
	return set, nil
}
