package database

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/stockbox/internal/config"
	"github.com/thenoetrevino/stockbox/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestConn opens a private in-memory database with the schema applied
func setupTestConn(t *testing.T) *Conn {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	conn, err := InitDB(context.Background(), config.Database{
		Driver: config.DriverSQLite,
		URL:    "file:" + name + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)

	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// setupTestStore returns a Store over a fresh in-memory database
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(setupTestConn(t), nil)
}

// ============================================================================
// DATA HELPERS
// ============================================================================

func newProduct(t *testing.T, name string, quantity int, category, location string) *models.Product {
	t.Helper()
	p, err := models.NewProduct(name, quantity)
	require.NoError(t, err)
	p.SetCategory(category)
	p.SetLocation(location)
	return p
}

// addInBox stores a product in the named box, creating the box on first use
func addInBox(t *testing.T, s *Store, name string, quantity int, category, boxName string) *models.Product {
	t.Helper()
	p := newProduct(t, name, quantity, category, "")
	require.NoError(t, s.AddProductInBox(context.Background(), p, BoxRef{Name: boxName, Create: true}))
	return p
}

func productNames(products []*models.Product) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
