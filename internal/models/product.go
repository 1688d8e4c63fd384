package models

import (
	"strconv"
	"strings"
)

// Product is a single stock-keeping unit.
//
// Name is never empty and Quantity is always strictly positive; both are
// checked by the constructor and setters so an invalid product never reaches
// the repository. BoxName is filled in by reads (LEFT JOIN on boxes) and is
// ignored on writes.
type Product struct {
	ID       int
	Name     string
	Quantity int
	Category *string
	BoxID    *int
	BoxName  *string
	Location *string
}

// NewProduct builds a validated, unsaved product
func NewProduct(name string, quantity int) (*Product, error) {
	p := &Product{}
	if err := p.SetName(name); err != nil {
		return nil, err
	}
	if err := p.SetQuantity(quantity); err != nil {
		return nil, err
	}
	return p, nil
}

// SetName assigns a non-blank name
func (p *Product) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError("name", name, ErrEmptyName)
	}
	p.Name = name
	return nil
}

// SetQuantity assigns a strictly positive quantity
func (p *Product) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return NewValidationError("quantity", strconv.Itoa(quantity), ErrInvalidQuantity)
	}
	p.Quantity = quantity
	return nil
}

// SetCategory assigns the category; blank clears it
func (p *Product) SetCategory(category string) {
	p.Category = OptionalString(category)
}

// SetLocation assigns the location; blank clears it
func (p *Product) SetLocation(location string) {
	p.Location = OptionalString(location)
}

// SetBox points the product at a box; ids <= 0 mean unboxed
func (p *Product) SetBox(boxID int) {
	if boxID <= 0 {
		p.BoxID = nil
		return
	}
	p.BoxID = &boxID
}

// Validate re-checks the invariants on a product assembled field by field
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return NewValidationError("name", p.Name, ErrEmptyName)
	}
	if p.Quantity <= 0 {
		return NewValidationError("quantity", strconv.Itoa(p.Quantity), ErrInvalidQuantity)
	}
	return nil
}

// CategoryLabel returns the category or an empty string
func (p *Product) CategoryLabel() string {
	return StringValue(p.Category)
}

// LocationLabel returns the location or an empty string
func (p *Product) LocationLabel() string {
	return StringValue(p.Location)
}

// BoxLabel returns the joined box name or an empty string
func (p *Product) BoxLabel() string {
	return StringValue(p.BoxName)
}

// GetID implements the quiet-mode output contract
func (p *Product) GetID() int {
	return p.ID
}

// OptionalString trims s and returns nil when nothing is left
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences s, returning "" for nil
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
