package driving

import "github.com/custodia-labs/radix-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetDefaultBase updates the base the keypad starts in.
	SetDefaultBase(base domain.Base) error

	// SetShowSteps toggles step traces in CLI output.
	SetShowSteps(show bool) error

	// SetTheme selects the TUI colour theme.
	SetTheme(theme domain.Theme) error

	// Validate checks the current settings.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
