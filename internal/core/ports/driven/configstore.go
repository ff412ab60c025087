package driven

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetBool retrieves a boolean configuration value, or def when the key
	// doesn't exist or isn't a boolean.
	GetBool(key string, def bool) bool

	// GetStringSlice retrieves a string slice configuration value.
	// Returns nil if key doesn't exist or isn't a slice.
	GetStringSlice(key string) []string

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Path returns the configuration file path.
	Path() string
}

// Well-known configuration keys.
const (
	ConfigHelpers          = "credential.helpers"
	ConfigPlatformDefaults = "credential.platform_defaults"
	ConfigStderr           = "credential.stderr"
	ConfigPromptMode       = "prompt.mode"
	ConfigPromptStyle      = "prompt.style"
	ConfigPromptAskpass    = "prompt.askpass"
	ConfigHistoryEnabled   = "history.enabled"
)
