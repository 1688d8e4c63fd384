package app

import (
	"context"
	"log/slog"
	"testing"

	"github.com/thenoetrevino/stockbox/internal/services/product"
	"github.com/thenoetrevino/stockbox/internal/testutil"
)

func TestNew(t *testing.T) {
	store := testutil.SetupTestStore(t)

	app := New(store, WithLogger(slog.Default()))

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if app.ProductService == nil {
		t.Error("Expected ProductService to be initialized")
	}
	if app.BoxService == nil {
		t.Error("Expected BoxService to be initialized")
	}
	if app.Store() != store {
		t.Error("Expected Store to return the wrapped store")
	}

	created, err := app.ProductService.CreateProduct(context.Background(), product.CreateProductRequest{Name: "Bolt", Quantity: 1})
	if err != nil {
		t.Fatalf("Expected services to reach the store, got %v", err)
	}
	if created.ID == 0 {
		t.Error("Expected product ID to be set")
	}
}

func TestClose(t *testing.T) {
	store := testutil.SetupTestStore(t)
	app := New(store)

	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
}
