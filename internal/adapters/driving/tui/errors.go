package tui

import "errors"

// ErrMissingConverter is returned when the converter service is not provided.
var ErrMissingConverter = errors.New("tui: converter service is required")

// ErrMissingKeypad is returned when the keypad is not provided.
var ErrMissingKeypad = errors.New("tui: keypad is required")
