// Package messages holds the tea.Msg types passed between the TUI views
// and the app model.
package messages

import (
	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewConverter converts a decimal number into every base.
	ViewConverter
	// ViewCalculator is the keypad calculator.
	ViewCalculator
	// ViewSettings is the settings configuration view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewConverter:
		return "converter"
	case ViewCalculator:
		return "calculator"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ConversionCompleted carries the conversions of one value.
type ConversionCompleted struct {
	Set *domain.ConversionSet
	Err error
}

// ErrorOccurred reports a failure outside any view, such as the config
// watcher stopping. The app shows it under the active view.
type ErrorOccurred struct {
	Err error
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}

// SettingsChanged is sent by the config watcher when the file is edited.
type SettingsChanged struct{}
