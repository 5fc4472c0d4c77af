package driven

// ConfigStore provides access to application configuration.
// Keys use dot notation ("calculator.default_base"); implementations map
// them onto their storage format and coerce scalar types on read.
type ConfigStore interface {
	// Get retrieves a raw configuration value and whether it exists.
	Get(key string) (any, bool)

	// GetString retrieves a value as a string. Numbers and booleans are
	// formatted; missing or non-scalar values read as "".
	GetString(key string) string

	// GetBool retrieves a value as a boolean. Strings such as "true" or
	// "1" are accepted; missing or unparsable values read as false.
	GetBool(key string) bool

	// Keys returns every stored key in sorted order.
	Keys() []string

	// Set stores a value. File-backed stores persist immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load replaces the in-memory configuration with what is in storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
