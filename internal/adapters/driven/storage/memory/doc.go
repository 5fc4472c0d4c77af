// Package memory provides in-memory implementations of driven port
// interfaces for tests and for runs where no config directory is usable.
package memory
