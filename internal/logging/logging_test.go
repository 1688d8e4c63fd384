package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/stockbox/internal/config"
)

func TestInitWritesToDataDir(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	cfg := config.Default()
	cfg.Database.Dir = filepath.Join(t.TempDir(), "data")
	cfg.Log.Level = "warn"

	require.NoError(t, Init(cfg))

	slog.Info("hidden below warn")
	slog.Warn("box pruned", "count", 2)

	data, err := os.ReadFile(filepath.Join(cfg.Database.Dir, "logs", "stockbox.log"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "box pruned"))
	assert.False(t, strings.Contains(string(data), "hidden below warn"))
}
