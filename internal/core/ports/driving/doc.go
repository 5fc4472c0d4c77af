// Package driving declares what the CLI, TUI and MCP adapters may ask of
// the core: conversions, arithmetic, keypad sessions and settings.
//
// ConverterService, CalculatorService and SettingsService are stateless.
// A Keypad holds one calculator session and belongs to a single caller.
package driving
