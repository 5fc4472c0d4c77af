// Package mcp provides an MCP (Model Context Protocol) server adapter for radix.
// It lets AI assistants convert numbers between bases and evaluate
// base-aware arithmetic with the same step traces the CLI prints.
package mcp

import "errors"

var (
	// ErrMissingConverter is returned when the converter service is not provided.
	ErrMissingConverter = errors.New("mcp: converter service is required")

	// ErrMissingCalculator is returned when the calculator service is not provided.
	ErrMissingCalculator = errors.New("mcp: calculator service is required")
)
