package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

func TestPalettes_CoverEveryTheme(t *testing.T) {
	for _, name := range []domain.Theme{domain.ThemeDefault, domain.ThemeMono} {
		t.Run(string(name), func(t *testing.T) {
			p, ok := palettes[name]
			require.True(t, ok)

			for field, c := range map[string]lipgloss.Color{
				"Primary":   p.Primary,
				"Secondary": p.Secondary,
				"Text":      p.Text,
				"Muted":     p.Muted,
				"Success":   p.Success,
				"Error":     p.Error,
				"Border":    p.Border,
				"Bar":       p.Bar,
			} {
				assert.NotEmpty(t, string(c), field)
			}
		})
	}
}

func TestDefaultTheme_AccentsAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	seen := make(map[lipgloss.Color]bool)
	for _, c := range []lipgloss.Color{theme.Primary, theme.Secondary, theme.Success, theme.Error} {
		assert.False(t, seen[c], "duplicate accent %s", c)
		seen[c] = true
	}
}

func TestThemeFor(t *testing.T) {
	tests := []struct {
		name domain.Theme
		want *Theme
	}{
		{domain.ThemeDefault, DefaultTheme()},
		{domain.ThemeMono, MonoTheme()},
		{domain.Theme("neon"), DefaultTheme()},
		{"", DefaultTheme()},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			assert.Equal(t, tt.want, ThemeFor(tt.name))
		})
	}
}

func TestThemeFor_ReturnsCopy(t *testing.T) {
	theme := ThemeFor(domain.ThemeMono)
	theme.Primary = "#000000"

	assert.NotEqual(t, lipgloss.Color("#000000"), MonoTheme().Primary)
}

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.Equal(t, DefaultTheme(), s.Theme())
}

func TestForTheme(t *testing.T) {
	s := ForTheme(domain.ThemeMono)

	assert.Equal(t, MonoTheme(), s.Theme())
	assert.Equal(t, MonoTheme().Primary, s.ActiveTab.GetBackground())
	assert.Equal(t, MonoTheme().Bar, s.StatusBar.GetBackground())
}

func TestStyles_CalculatorStyles(t *testing.T) {
	s := DefaultStyles()

	assert.True(t, s.Display.GetBold())
	assert.Equal(t, lipgloss.Right, s.Display.GetAlignHorizontal())
	assert.Equal(t, DefaultTheme().Primary, s.Display.GetBorderTopForeground())
	assert.True(t, s.ActiveTab.GetBold())
	assert.False(t, s.Tab.GetBold())
	assert.Equal(t, DefaultTheme().Secondary, s.Key.GetForeground())
}

func TestStyles_CanRenderText(t *testing.T) {
	s := DefaultStyles()

	for name, style := range map[string]lipgloss.Style{
		"Title":      s.Title,
		"Subtitle":   s.Subtitle,
		"Normal":     s.Normal,
		"Muted":      s.Muted,
		"Selected":   s.Selected,
		"Error":      s.Error,
		"Success":    s.Success,
		"Help":       s.Help,
		"InputField": s.InputField,
		"Border":     s.Border,
		"Display":    s.Display,
		"Tab":        s.Tab,
		"ActiveTab":  s.ActiveTab,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Contains(t, style.Render("1010"), "1010")
		})
	}
}
