package models

import (
	"errors"
	"testing"
)

func TestNewProduct_Validation(t *testing.T) {
	tests := []struct {
		name     string
		prodName string
		quantity int
		wantErr  error
	}{
		{name: "valid", prodName: "Bolt", quantity: 10},
		{name: "empty name", prodName: "", quantity: 1, wantErr: ErrEmptyName},
		{name: "blank name", prodName: "   ", quantity: 1, wantErr: ErrEmptyName},
		{name: "zero quantity", prodName: "Bolt", quantity: 0, wantErr: ErrInvalidQuantity},
		{name: "negative quantity", prodName: "Bolt", quantity: -3, wantErr: ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProduct(tt.prodName, tt.quantity)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				if p.Name != tt.prodName || p.Quantity != tt.quantity {
					t.Errorf("Expected %s x%d, got %s x%d", tt.prodName, tt.quantity, p.Name, p.Quantity)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			if !IsValidation(err) {
				t.Errorf("Expected a ValidationError, got %T", err)
			}
		})
	}
}

func TestProduct_SettersKeepInvariants(t *testing.T) {
	p, err := NewProduct("Bolt", 10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := p.SetQuantity(0); err == nil {
		t.Error("Expected error for zero quantity")
	}
	if p.Quantity != 10 {
		t.Errorf("Rejected quantity must not be stored, got %d", p.Quantity)
	}

	p.SetCategory("  ")
	if p.Category != nil {
		t.Errorf("Blank category should be nil, got %q", *p.Category)
	}
	p.SetLocation(" Shelf 1 ")
	if p.LocationLabel() != "Shelf 1" {
		t.Errorf("Expected trimmed location, got %q", p.LocationLabel())
	}

	p.SetBox(4)
	if p.BoxID == nil || *p.BoxID != 4 {
		t.Errorf("Expected box 4, got %v", p.BoxID)
	}
	p.SetBox(0)
	if p.BoxID != nil {
		t.Errorf("Expected no box, got %v", *p.BoxID)
	}
}

func TestParseQuantityBound(t *testing.T) {
	tests := []struct {
		raw     string
		want    *int
		wantErr bool
	}{
		{raw: "", want: nil},
		{raw: "  ", want: nil},
		{raw: "12", want: intPtr(12)},
		{raw: " 7 ", want: intPtr(7)},
		{raw: "-2", want: intPtr(-2)},
		{raw: "ten", wantErr: true},
		{raw: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseQuantityBound("minimum quantity", tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedNumber) {
					t.Errorf("Expected ErrMalformedNumber, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestProductFilter_Matches(t *testing.T) {
	boxA := "Box A"
	hardware := "Hardware"
	bolt := &Product{Name: "Bolt", Quantity: 10, Category: &hardware}
	nut := &Product{Name: "Nut", Quantity: 5, Category: &hardware, BoxName: &boxA}

	tests := []struct {
		name   string
		filter ProductFilter
		bolt   bool
		nut    bool
	}{
		{name: "empty filter", filter: ProductFilter{}, bolt: true, nut: true},
		{name: "term in name ignores case", filter: ProductFilter{Term: "BOL"}, bolt: true},
		{name: "term in box name", filter: ProductFilter{Term: "box"}, nut: true},
		{name: "category ignores case", filter: ProductFilter{Category: strPtr("hardware")}, bolt: true, nut: true},
		{name: "blank category ignored", filter: ProductFilter{Category: strPtr(" ")}, bolt: true, nut: true},
		{name: "box requires a box", filter: ProductFilter{BoxName: strPtr("box a")}, nut: true},
		{name: "min bound inclusive", filter: ProductFilter{MinQuantity: intPtr(10)}, bolt: true},
		{name: "max bound inclusive", filter: ProductFilter{MaxQuantity: intPtr(5)}, nut: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(bolt); got != tt.bolt {
				t.Errorf("Bolt: expected %v, got %v", tt.bolt, got)
			}
			if got := tt.filter.Matches(nut); got != tt.nut {
				t.Errorf("Nut: expected %v, got %v", tt.nut, got)
			}
		})
	}
}

func TestProductFilter_IsEmpty(t *testing.T) {
	if !(ProductFilter{Term: "  ", Location: strPtr("")}).IsEmpty() {
		t.Error("Whitespace-only filter should be empty")
	}
	if (ProductFilter{MaxQuantity: intPtr(0)}).IsEmpty() {
		t.Error("A quantity bound is a constraint")
	}
}

func TestNewBox(t *testing.T) {
	b := NewBox(" Box A ", "")
	if b.DisplayName() != "Box A" {
		t.Errorf("Expected trimmed name, got %q", b.DisplayName())
	}
	if b.Location != nil {
		t.Errorf("Expected nil location, got %q", *b.Location)
	}
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }
