package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/thenoetrevino/stockbox/internal/config"
	"github.com/thenoetrevino/stockbox/internal/database"
	"github.com/thenoetrevino/stockbox/internal/models"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const TestAppKey ContextKey = "testApp"

var dbCounter atomic.Int64

// SetupTestDB opens a private in-memory database with the full schema.
// The connection is closed when the test finishes.
func SetupTestDB(t *testing.T) *database.Conn {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	url := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbCounter.Add(1))

	conn, err := database.InitDB(context.Background(), config.Database{
		Driver: config.DriverSQLite,
		URL:    url,
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	t.Cleanup(func() {
		if err := conn.Close(); err != nil {
			t.Logf("Failed to close test database: %v", err)
		}
	})
	return conn
}

// SetupTestStore returns a Store over a fresh in-memory database
func SetupTestStore(t *testing.T) *database.Store {
	t.Helper()
	return database.NewStore(SetupTestDB(t), nil)
}

// CreateTestProduct stores a product and returns it. A non-empty boxName puts
// it in that box, creating the box on first use.
func CreateTestProduct(t *testing.T, store *database.Store, name string, quantity int, category, boxName string) *models.Product {
	t.Helper()

	p, err := models.NewProduct(name, quantity)
	if err != nil {
		t.Fatalf("Failed to build test product: %v", err)
	}
	p.SetCategory(category)

	if err := store.AddProductInBox(context.Background(), p, database.BoxRef{Name: boxName, Create: true}); err != nil {
		t.Fatalf("Failed to create test product: %v", err)
	}
	return p
}

// CreateTestBox stores an empty box and returns its ID
func CreateTestBox(t *testing.T, store *database.Store, name, location string) int {
	t.Helper()

	box := models.NewBox(name, location)
	if err := store.AddBox(context.Background(), box); err != nil {
		t.Fatalf("Failed to create test box: %v", err)
	}
	return box.ID
}
