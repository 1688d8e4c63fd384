// Package prompt asks the user for confirmation when a terminal is attached
package prompt

import (
	"fmt"
	"os"

	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-isatty"
	"github.com/thenoetrevino/stockbox/internal/config"
)

var (
	scheme = config.DefaultColorScheme()

	// interactive is swapped in tests
	interactive = func() bool {
		return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
	}
)

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Init sets the color scheme used by prompts
func Init(colors config.ColorScheme) {
	scheme = colors
}

// Interactive reports whether the user can answer a prompt
func Interactive() bool {
	return interactive()
}

// Confirm asks a yes/no question. Without a terminal it answers no without
// asking, so scripted runs never block.
func Confirm(title, description string) (bool, error) {
	if !Interactive() {
		return false, nil
	}

	var ok bool
	confirm := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok)
	if description != "" {
		confirm = confirm.Description(description)
	}

	form := huh.NewForm(huh.NewGroup(confirm)).WithTheme(Theme(scheme))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return ok, nil
}

// Theme builds a huh theme matching the CLI color scheme
func Theme(colorScheme config.ColorScheme) huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		accent := lipgloss.Color(colorScheme.Accent)
		subtle := lipgloss.Color(colorScheme.Subtle)
		normal := lipgloss.Color(colorScheme.Normal)
		title := lipgloss.Color(colorScheme.Title)
		errorColor := lipgloss.Color(colorScheme.ErrorFg)

		t.Focused.Base = t.Focused.Base.BorderForeground(accent)
		t.Focused.Title = t.Focused.Title.Foreground(title).Bold(true)
		t.Focused.Description = t.Focused.Description.Foreground(subtle)
		t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errorColor)
		t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errorColor)
		t.Focused.FocusedButton = t.Focused.FocusedButton.
			Foreground(lipgloss.Color(colorScheme.InfoFg)).
			Background(accent).
			Bold(true)
		t.Focused.BlurredButton = t.Focused.BlurredButton.
			Foreground(normal).
			Background(subtle)

		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(subtle)

		return t
	})
}
