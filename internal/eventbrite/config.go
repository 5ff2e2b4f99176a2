package eventbrite

import (
	"fmt"
	"os"
	"time"
)

// Defaults for the collector and HTTP client.
const (
	DefaultBaseURL       = "https://www.eventbriteapi.com/v3"
	DefaultStartFloor    = "2023-01-01"
	DefaultCollectTarget = 20
	DefaultMaxPageScan   = 10
	DefaultPageSize      = 50
	DefaultHTTPTimeout   = 30 * time.Second
)

// Config holds the process-wide Eventbrite configuration. It is built
// once at startup from flags and environment variables and passed by
// reference to every component that needs it; nothing reads the
// environment after startup.
type Config struct {
	// Token is the API bearer token. Required; startup fails without it.
	Token string

	// BaseURL is the gateway base URL (default: the public v3 API).
	BaseURL string

	// OrganizationID, when set, overrides dynamic organization lookup.
	OrganizationID string

	// StartFloor is the default lower bound substituted when a search
	// carries no start_date, as a YYYY-MM-DD string.
	StartFloor string

	// CollectTarget is the accumulated match count at which the
	// collector stops paging.
	CollectTarget int

	// MaxPageScan bounds how many pages the collector will fetch for a
	// single call.
	MaxPageScan int

	// PageSize is the page size requested from the gateway when the
	// caller does not supply one.
	PageSize int

	// HTTPTimeout is the per-request timeout for gateway calls.
	HTTPTimeout time.Duration
}

// ConfigFromEnv returns a Config populated from environment variables,
// with defaults applied for everything except the token.
func ConfigFromEnv() Config {
	cfg := Config{
		Token:          os.Getenv("EVENTBRITE_API_KEY"),
		BaseURL:        os.Getenv("EVENTBRITE_BASE_URL"),
		OrganizationID: os.Getenv("EVENTBRITE_ORGANIZATION_ID"),
		StartFloor:     os.Getenv("EVENTBRITE_DEFAULT_START_FLOOR"),
	}
	return cfg.WithDefaults()
}

// WithDefaults returns a copy of the config with unset fields replaced by
// their defaults. The token is left as-is; Validate reports it.
func (c Config) WithDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.StartFloor == "" {
		c.StartFloor = DefaultStartFloor
	}
	if c.CollectTarget <= 0 {
		c.CollectTarget = DefaultCollectTarget
	}
	if c.MaxPageScan <= 0 {
		c.MaxPageScan = DefaultMaxPageScan
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = DefaultHTTPTimeout
	}
	return c
}

// Validate checks that the config is usable. A missing token is a fatal
// configuration error; the server must not start without one.
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("no Eventbrite API token configured; set EVENTBRITE_API_KEY")
	}
	if _, err := ParseDate(c.StartFloor); err != nil {
		return fmt.Errorf("invalid default start floor %q: %w", c.StartFloor, err)
	}
	return nil
}

// StartFloorDate returns the configured floor as a calendar date. Config
// must have been validated first.
func (c *Config) StartFloorDate() time.Time {
	d, _ := ParseDate(c.StartFloor)
	return d
}
