package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/stockbox/internal/config"
)

func TestConfirm_NonInteractiveAnswersNo(t *testing.T) {
	orig := interactive
	interactive = func() bool { return false }
	t.Cleanup(func() { interactive = orig })

	ok, err := Confirm("Create box?", "")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, Interactive())
}

func TestInit_SetsScheme(t *testing.T) {
	orig := scheme
	t.Cleanup(func() { scheme = orig })

	Init(config.MonochromeColorScheme())
	assert.Equal(t, config.MonochromeColorScheme(), scheme)
	assert.NotNil(t, Theme(scheme))
}
