package driven

import (
	"context"
	"time"
)

// ConfigStore provides read access to a configuration file.
// Nested tables are addressed with dot-notation keys, e.g. "server.url".
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetFloat retrieves a numeric configuration value.
	// Returns 0 if key doesn't exist or isn't a number.
	GetFloat(key string) float64

	// GetDuration retrieves a duration written as a Go duration string ("30s").
	// Returns an error if the value exists but cannot be parsed.
	GetDuration(key string) (time.Duration, error)

	// Path returns the configuration file path.
	Path() string
}

// ConfigWatcher is implemented by stores that can follow changes to their file.
type ConfigWatcher interface {
	// Watch reloads the store when its file changes and calls onChange after
	// each successful reload. It blocks until ctx is done.
	Watch(ctx context.Context, onChange func()) error
}
