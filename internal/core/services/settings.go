package services

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"

	"github.com/custodia-labs/radix-cli/internal/core/domain"
	"github.com/custodia-labs/radix-cli/internal/core/ports/driven"
	"github.com/custodia-labs/radix-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDefaultBase = "calculator.default_base"
	keyShowSteps   = "display.show_steps"
	keyTheme       = "display.theme"
)

var knownKeys = map[string]bool{
	keyDefaultBase: true,
	keyShowSteps:   true,
	keyTheme:       true,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	validate    *validator.Validate
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		validate:    validator.New(),
	}
}

// Get retrieves current application settings.
// Missing or unreadable values fall back to the defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	d := s.GetDefaults()

	settings := &domain.AppSettings{
		Calculator: domain.CalculatorSettings{
			DefaultBase: s.getBase(d.Calculator.DefaultBase),
		},
		Display: domain.DisplaySettings{
			ShowSteps: s.getBool(keyShowSteps, d.Display.ShowSteps),
			Theme:     s.getTheme(d.Display.Theme),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.validate.Struct(settings); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if err := s.configStore.Set(keyDefaultBase, settings.Calculator.DefaultBase.String()); err != nil {
		return fmt.Errorf("save default base: %w", err)
	}
	if err := s.configStore.Set(keyShowSteps, settings.Display.ShowSteps); err != nil {
		return fmt.Errorf("save show steps: %w", err)
	}
	if err := s.configStore.Set(keyTheme, settings.Display.Theme.String()); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}

	return nil
}

// SetDefaultBase updates the base the keypad starts in.
func (s *SettingsService) SetDefaultBase(base domain.Base) error {
	if !base.IsValid() {
		return fmt.Errorf("%w: %d", domain.ErrUnsupportedBase, base)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Calculator.DefaultBase = base
	return s.Save(settings)
}

// SetShowSteps toggles step traces in CLI output.
func (s *SettingsService) SetShowSteps(show bool) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Display.ShowSteps = show
	return s.Save(settings)
}

// SetTheme selects the TUI colour theme.
func (s *SettingsService) SetTheme(theme domain.Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("invalid theme: %s", theme)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Display.Theme = theme
	return s.Save(settings)
}

// Validate checks the stored settings, including values Get would
// silently replace with defaults.
func (s *SettingsService) Validate() error {
	for _, key := range s.configStore.Keys() {
		if !knownKeys[key] {
			return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
		}
	}
	if raw := s.configStore.GetString(keyDefaultBase); raw != "" {
		if _, err := domain.ParseBase(raw); err != nil {
			return fmt.Errorf("%s = %q: %w", keyDefaultBase, raw, err)
		}
	}
	if raw := s.configStore.GetString(keyTheme); raw != "" {
		if !domain.Theme(raw).IsValid() {
			return fmt.Errorf("%s = %q: %w", keyTheme, raw, domain.ErrInvalidInput)
		}
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.validate.Struct(settings)
}

// GetDefaults returns default settings from the struct tags.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	var settings domain.AppSettings
	_ = defaults.Set(&settings) //nolint:errcheck // tags are static
	return settings
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getBase(defaultVal domain.Base) domain.Base {
	val := s.configStore.GetString(keyDefaultBase)
	if val == "" {
		return defaultVal
	}
	base, err := domain.ParseBase(val)
	if err != nil {
		return defaultVal
	}
	return base
}

func (s *SettingsService) getTheme(defaultVal domain.Theme) domain.Theme {
	val := s.configStore.GetString(keyTheme)
	if val == "" {
		return defaultVal
	}
	theme := domain.Theme(val)
	if !theme.IsValid() {
		return defaultVal
	}
	return theme
}
