// Package domain holds the value types of the radix calculator: bases,
// division traces, calculation records and the keypad contract.
//
// Everything here is immutable once built and imports only the standard
// library. Services and adapters depend on domain, never the reverse.
package domain
