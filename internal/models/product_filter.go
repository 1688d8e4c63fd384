package models

import (
	"strconv"
	"strings"
)

// ProductFilter is the optional predicate set driving a product search.
// Zero values impose no constraint: empty Term, nil or blank string
// pointers and nil quantity bounds are all ignored.
type ProductFilter struct {
	Term        string
	Category    *string
	Location    *string
	BoxName     *string
	MinQuantity *int
	MaxQuantity *int
}

// IsEmpty reports whether the filter imposes no constraint at all
func (f ProductFilter) IsEmpty() bool {
	return strings.TrimSpace(f.Term) == "" &&
		OptionalString(StringValue(f.Category)) == nil &&
		OptionalString(StringValue(f.Location)) == nil &&
		OptionalString(StringValue(f.BoxName)) == nil &&
		f.MinQuantity == nil && f.MaxQuantity == nil
}

// ParseQuantityBound converts free-text bound input. Blank input yields nil;
// anything that is not an integer is a ValidationError.
func ParseQuantityBound(field, raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, NewValidationError(field, raw, ErrMalformedNumber)
	}
	return &n, nil
}

// Matches evaluates the filter against an in-memory product with the same
// semantics as the SQL search.
func (f ProductFilter) Matches(p *Product) bool {
	if term := strings.ToLower(strings.TrimSpace(f.Term)); term != "" {
		inName := strings.Contains(strings.ToLower(p.Name), term)
		inBox := p.BoxName != nil && strings.Contains(strings.ToLower(*p.BoxName), term)
		if !inName && !inBox {
			return false
		}
	}
	if !equalFoldOptional(f.Category, p.Category) {
		return false
	}
	if !equalFoldOptional(f.Location, p.Location) {
		return false
	}
	if !equalFoldOptional(f.BoxName, p.BoxName) {
		return false
	}
	if f.MinQuantity != nil && p.Quantity < *f.MinQuantity {
		return false
	}
	if f.MaxQuantity != nil && p.Quantity > *f.MaxQuantity {
		return false
	}
	return true
}

// equalFoldOptional lowercases both sides, like the SQL search does
func equalFoldOptional(want, got *string) bool {
	w := OptionalString(StringValue(want))
	if w == nil {
		return true
	}
	return got != nil && strings.ToLower(*w) == strings.ToLower(*got)
}
