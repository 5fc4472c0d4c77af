// Package file persists radix settings in ~/.radix/config.toml.
//
// ConfigStore reads the TOML tables into flat keys such as
// "calculator.default_base" and writes them back as tables. Watcher
// reports edits made to the file by other processes.
package file
