package domain

// Theme names a TUI colour theme.
type Theme string

// Available themes.
const (
	ThemeDefault Theme = "default"
	ThemeMono    Theme = "mono"
)

// IsValid returns true if the theme is recognised.
func (t Theme) IsValid() bool {
	return t == ThemeDefault || t == ThemeMono
}

// String returns the theme name.
func (t Theme) String() string {
	return string(t)
}

// CalculatorSettings holds calculator behaviour configuration.
type CalculatorSettings struct {
	// DefaultBase is the base the keypad starts in.
	DefaultBase Base `default:"10" validate:"oneof=2 8 10 16"`
}

// DisplaySettings holds presentation configuration.
type DisplaySettings struct {
	// ShowSteps controls whether step traces are printed by default.
	ShowSteps bool `default:"true"`

	// Theme selects the TUI colour theme.
	Theme Theme `default:"default" validate:"oneof=default mono"`
}

// AppSettings is the complete application configuration.
type AppSettings struct {
	Calculator CalculatorSettings
	Display    DisplaySettings
}
