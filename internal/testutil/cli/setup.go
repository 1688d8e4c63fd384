package cli

import (
	"testing"

	"github.com/thenoetrevino/stockbox/internal/app"
	"github.com/thenoetrevino/stockbox/internal/database"
	"github.com/thenoetrevino/stockbox/internal/testutil"
)

// SetupCLITest creates an in-memory store and the App wired on top of it.
// It lives in its own package so service tests can import testutil without
// pulling in the app container.
func SetupCLITest(t *testing.T) (*database.Store, *app.App) {
	t.Helper()
	store := testutil.SetupTestStore(t)
	return store, app.New(store)
}
