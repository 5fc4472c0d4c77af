// Package services implements the driving ports.
//
// ConverterService and CalculatorService are pure functions over int64.
// Keypad is the one stateful type and must not be shared between
// goroutines. SettingsService fills defaults with creasty/defaults and
// checks them with go-playground/validator before writing to the
// ConfigStore.
package services
