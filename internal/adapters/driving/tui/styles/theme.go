// Package styles holds the lipgloss palettes and styles shared by the TUI views.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

// Theme is a colour palette.
type Theme struct {
	Primary   lipgloss.Color // accents, active tab, display border
	Secondary lipgloss.Color // subtitles, keypad hints
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	Border    lipgloss.Color
	Bar       lipgloss.Color // status bar background
}

var palettes = map[domain.Theme]Theme{
	domain.ThemeDefault: {
		Primary:   "#7C3AED",
		Secondary: "#06B6D4",
		Text:      "#CDD6F4",
		Muted:     "#6C7086",
		Success:   "#A6E3A1",
		Error:     "#F38BA8",
		Border:    "#45475A",
		Bar:       "#181825",
	},
	// ANSI 256 greys for terminals without true colour.
	domain.ThemeMono: {
		Primary:   "15",
		Secondary: "250",
		Text:      "252",
		Muted:     "244",
		Success:   "255",
		Error:     "231",
		Border:    "240",
		Bar:       "235",
	},
}

// ThemeFor returns the palette for a configured theme name.
// Unknown names get the default palette.
func ThemeFor(name domain.Theme) *Theme {
	p, ok := palettes[name]
	if !ok {
		p = palettes[domain.ThemeDefault]
	}
	return &p
}

// DefaultTheme returns the default colour palette.
func DefaultTheme() *Theme { return ThemeFor(domain.ThemeDefault) }

// MonoTheme returns the greyscale palette.
func MonoTheme() *Theme { return ThemeFor(domain.ThemeMono) }

// Styles are the lipgloss styles derived from one Theme.
type Styles struct {
	theme *Theme

	// Text.
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Help     lipgloss.Style

	// Containers.
	InputField lipgloss.Style
	Border     lipgloss.Style
	StatusBar  lipgloss.Style

	// Calculator.
	Display   lipgloss.Style // right-aligned readout
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Key       lipgloss.Style
}

// NewStyles derives styles from theme. A nil theme uses the default palette.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	boxed := func(border lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1)
	}

	return &Styles{
		theme: theme,

		Title:    fg(theme.Primary).Bold(true),
		Subtitle: fg(theme.Secondary).Bold(true),
		Normal:   fg(theme.Text),
		Muted:    fg(theme.Muted),
		Selected: fg(theme.Text).Background(theme.Primary).Bold(true),
		Error:    fg(theme.Error),
		Success:  fg(theme.Success),
		Help:     fg(theme.Muted),

		InputField: boxed(theme.Border),
		Border:     boxed(theme.Border),
		StatusBar:  fg(theme.Muted).Background(theme.Bar).Padding(0, 1),

		Display:   boxed(theme.Primary).Foreground(theme.Text).Bold(true).Align(lipgloss.Right),
		Tab:       fg(theme.Muted).Padding(0, 1),
		ActiveTab: fg(theme.Text).Background(theme.Primary).Bold(true).Padding(0, 1),
		Key:       fg(theme.Secondary),
	}
}

// ForTheme returns styles for a configured theme name.
func ForTheme(name domain.Theme) *Styles {
	return NewStyles(ThemeFor(name))
}

// DefaultStyles returns styles with the default palette.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the palette these styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}
