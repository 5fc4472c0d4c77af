// Package tui provides an interactive terminal user interface for radix.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/radix-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Converter renders values in every base.
	Converter driving.ConverterService

	// Keypad is the calculator state machine driven by the calculator view.
	Keypad driving.Keypad

	// Settings manages application settings. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(converter driving.ConverterService, keypad driving.Keypad) *Ports {
	return &Ports{
		Converter: converter,
		Keypad:    keypad,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Converter == nil {
		return ErrMissingConverter
	}
	if p.Keypad == nil {
		return ErrMissingKeypad
	}
	return nil
}
