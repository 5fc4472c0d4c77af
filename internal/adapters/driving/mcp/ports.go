package mcp

import (
	"github.com/custodia-labs/radix-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Converter renders values in other bases.
	Converter driving.ConverterService

	// Calculator evaluates arithmetic within a base.
	Calculator driving.CalculatorService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Converter == nil {
		return ErrMissingConverter
	}
	if p.Calculator == nil {
		return ErrMissingCalculator
	}
	return nil
}
