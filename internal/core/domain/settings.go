package domain

import (
	"fmt"
	"net/url"
	"time"
)

const (
	// DefaultServerURL is where the search server listens by default.
	DefaultServerURL = "http://localhost:7878"

	// DefaultTimeout bounds every HTTP request to the search server.
	DefaultTimeout = 30 * time.Second
)

// ColorMode controls whether terminal escape sequences are emitted.
type ColorMode string

// Available colour modes.
const (
	// ColorAlways always emits escape sequences.
	ColorAlways ColorMode = "always"

	// ColorAuto emits escape sequences only when stdout is a terminal.
	ColorAuto ColorMode = "auto"

	// ColorNever never emits escape sequences.
	ColorNever ColorMode = "never"
)

// IsValid returns true if the colour mode is recognised.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAlways, ColorAuto, ColorNever:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m ColorMode) String() string {
	return string(m)
}

// ClientConfig holds everything needed to talk to the search server.
type ClientConfig struct {
	// ServerURL is the base URL of the search server. It is used verbatim.
	ServerURL string

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// MaxResults caps the documents fetched per search.
	MaxResults int

	// RateLimit is the maximum requests per second; zero means unlimited.
	RateLimit float64

	// Token is an optional bearer token for the server.
	Token string

	// Color selects terminal colour handling.
	Color ColorMode
}

// DefaultClientConfig returns the configuration used when nothing is overridden.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		ServerURL:  DefaultServerURL,
		Timeout:    DefaultTimeout,
		MaxResults: DefaultMaxResults,
		Color:      ColorAlways,
	}
}

// Validate checks the configuration for values the client cannot use.
func (c ClientConfig) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("%w: server URL is empty", ErrInvalidConfig)
	}
	u, err := url.Parse(c.ServerURL)
	if err != nil {
		return fmt.Errorf("%w: server URL: %v", ErrInvalidConfig, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: server URL must be http or https, got %q", ErrInvalidConfig, c.ServerURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", ErrInvalidConfig)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("%w: rate must not be negative", ErrInvalidConfig)
	}
	if !c.Color.IsValid() {
		return fmt.Errorf("%w: unknown colour mode %q", ErrInvalidConfig, c.Color)
	}
	return nil
}
