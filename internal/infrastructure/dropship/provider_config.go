package dropship

import (
	"errors"
	"strings"
)

// Config holds configuration for the dropship provider API integration
type Config struct {
	// Username is the provider account name (form field "uname")
	Username string
	// Password is the provider account password (form field "pass")
	Password string
	// BaseURL is the provider API root
	BaseURL string
	// SubmitPath is the order-submission endpoint, relative to BaseURL
	SubmitPath string
	// OrdersPath is the order-retrieval endpoint, relative to BaseURL
	OrdersPath string
	// SubmitTimeoutSeconds bounds one submission or retrieval call
	SubmitTimeoutSeconds int
	// ProbeTimeoutSeconds bounds the lightweight connectivity probe
	ProbeTimeoutSeconds int
}

const (
	// DefaultSubmitPath is the provider's order-submission endpoint
	DefaultSubmitPath = "/insert_order.php"
	// DefaultOrdersPath is the provider's order-retrieval endpoint
	DefaultOrdersPath = "/get_orders.php"

	defaultSubmitTimeoutSeconds = 30
	defaultProbeTimeoutSeconds  = 10
)

// ErrConfigMissingBaseURL indicates no provider URL was configured
var ErrConfigMissingBaseURL = errors.New("dropship: provider base URL is required")

// NewConfig creates a provider configuration with defaults. Empty
// credentials are allowed: startup must not be blocked by their absence,
// requests will simply be rejected provider-side.
func NewConfig(username, password, baseURL string) *Config {
	return &Config{
		Username:             username,
		Password:             password,
		BaseURL:              baseURL,
		SubmitPath:           DefaultSubmitPath,
		OrdersPath:           DefaultOrdersPath,
		SubmitTimeoutSeconds: defaultSubmitTimeoutSeconds,
		ProbeTimeoutSeconds:  defaultProbeTimeoutSeconds,
	}
}

// Validate checks the configuration and fills defaulted fields
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrConfigMissingBaseURL
	}
	if c.SubmitPath == "" {
		c.SubmitPath = DefaultSubmitPath
	}
	if c.OrdersPath == "" {
		c.OrdersPath = DefaultOrdersPath
	}
	if c.SubmitTimeoutSeconds <= 0 {
		c.SubmitTimeoutSeconds = defaultSubmitTimeoutSeconds
	}
	if c.ProbeTimeoutSeconds <= 0 {
		c.ProbeTimeoutSeconds = defaultProbeTimeoutSeconds
	}
	return nil
}

// HasCredentials reports whether both credentials are configured
func (c *Config) HasCredentials() bool {
	return c.Username != "" && c.Password != ""
}

// SubmitURL returns the absolute order-submission endpoint
func (c *Config) SubmitURL() string {
	return joinURL(c.BaseURL, c.SubmitPath)
}

// OrdersURL returns the absolute order-retrieval endpoint
func (c *Config) OrdersURL() string {
	return joinURL(c.BaseURL, c.OrdersPath)
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
