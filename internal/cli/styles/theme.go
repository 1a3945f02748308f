// Package styles provides lipgloss renderers for CLI output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the base colors of a theme. Each color has a light and a
// dark terminal variant.
type Palette struct {
	Text    lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Accent  lipgloss.AdaptiveColor
	Chip    lipgloss.AdaptiveColor // category chip background
	Error   lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
}

// DefaultPalette is green on neutral grays.
func DefaultPalette() Palette {
	return Palette{
		Text:    lipgloss.AdaptiveColor{Light: "#1a1a1b", Dark: "#ffffff"},
		Muted:   lipgloss.AdaptiveColor{Light: "#6b6b6b", Dark: "#909090"},
		Accent:  lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#4ade80"},
		Chip:    lipgloss.AdaptiveColor{Light: "#e5e5e5", Dark: "#2d2d2d"},
		Error:   lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#ef4444"},
		Warning: lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#f59e0b"},
	}
}

// Theme holds the styles used by the renderers.
type Theme struct {
	Accent lipgloss.TerminalColor

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Trigger renders a "!trigger".
	Trigger lipgloss.Style
	// Category renders the category chip next to a bang.
	Category lipgloss.Style
}

// NewTheme creates the default theme.
func NewTheme() *Theme {
	return NewThemeFromPalette(DefaultPalette())
}

func NewThemeFromPalette(p Palette) *Theme {
	fg := func(c lipgloss.TerminalColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	return &Theme{
		Accent: p.Accent,

		Title:        fg(p.Text).Bold(true),
		Normal:       fg(p.Text),
		Subtle:       fg(p.Muted),
		Highlight:    fg(p.Accent).Bold(true),
		ErrorStyle:   fg(p.Error),
		WarningStyle: fg(p.Warning),
		SuccessStyle: fg(p.Accent),

		Trigger:  fg(p.Accent).Bold(true),
		Category: fg(p.Text).Background(p.Chip).Padding(0, 1),
	}
}
