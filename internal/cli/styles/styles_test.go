package styles

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/stockbox/internal/config"
)

func TestBarCells(t *testing.T) {
	tests := []struct {
		name              string
		value, total, width int
		want              int
	}{
		{"full", 10, 10, 20, 20},
		{"half", 5, 10, 20, 10},
		{"tiny value still shows", 1, 1000, 20, 1},
		{"zero", 0, 10, 20, 0},
		{"no max", 5, 0, 20, 0},
		{"over max clamps", 15, 10, 20, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BarCells(tt.value, tt.total, tt.width))
		})
	}
}

func TestRenderBar_Width(t *testing.T) {
	Init(config.MonochromeColorScheme())

	bar := RenderBar(3, 12, 24)
	assert.Equal(t, 24, lipgloss.Width(bar))
	assert.Equal(t, 6, strings.Count(bar, "█"))
}

func TestPadRight(t *testing.T) {
	Init(config.DefaultColorScheme())

	padded := PadRight(TitleStyle.Render("Bolt"), 10)
	assert.Equal(t, 10, lipgloss.Width(padded))
	assert.Equal(t, "toolong", PadRight("toolong", 3))
}
