// Package driven declares what the core needs from the outside world.
//
// SettingsService reads and writes through a ConfigStore. A ConfigWatcher
// is optional: the TUI uses it to pick up edits to the config file while
// running, and without one settings are read once at startup.
//
// This package may import domain and nothing else from radix.
package driven
