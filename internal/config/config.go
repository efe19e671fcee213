// Package config loads the jobboss2-mcp settings.
//
// Values come from, lowest precedence first: built-in defaults, the user
// config file (~/.config/jobboss2-mcp/config.kdl), the project config file
// (.jobboss2-mcp.kdl, or a file named on the command line) and finally
// environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Defaults.
const (
	DefaultTimeout         = 30 * time.Second
	DefaultTokenRetries    = 3
	DefaultTokenRetryDelay = 500 * time.Millisecond
	DefaultTokenLifetime   = time.Hour
	DefaultTokenExpirySkew = 30 * time.Second
)

// Config is the merged configuration.
type Config struct {
	APIURL    string
	APIKey    string
	APISecret string
	TokenURL  string

	// Timeout bounds each upstream request attempt.
	Timeout time.Duration

	TokenRetries    int
	TokenRetryDelay time.Duration
	TokenLifetime   time.Duration
	TokenExpirySkew time.Duration

	LogLevel  string
	LogFormat string

	// Files lists the config files that were read, lowest precedence first.
	Files []string
}

// NewConfig returns a Config holding the defaults.
func NewConfig() *Config {
	return &Config{
		Timeout:         DefaultTimeout,
		TokenRetries:    DefaultTokenRetries,
		TokenRetryDelay: DefaultTokenRetryDelay,
		TokenLifetime:   DefaultTokenLifetime,
		TokenExpirySkew: DefaultTokenExpirySkew,
	}
}

// MissingError lists required settings that have no value.
type MissingError struct {
	Names []string
}

func (e *MissingError) Error() string {
	var sb strings.Builder
	sb.WriteString("missing required configuration: ")
	sb.WriteString(strings.Join(e.Names, ", "))
	sb.WriteString("\n\nFix:\n")
	sb.WriteString("1. Export the variables, e.g. " + EnvAPIURL + "=https://erp.example.com\n")
	sb.WriteString("2. Or add them to .jobboss2-mcp.kdl or ~/.config/jobboss2-mcp/config.kdl:\n")
	sb.WriteString("   api {\n       url \"https://erp.example.com\"\n       key \"...\"\n       secret \"...\"\n       token-url \"https://erp.example.com/oauth/token\"\n   }\n")
	return sb.String()
}

// Validate reports every missing or out-of-range setting at once.
func (c *Config) Validate() error {
	var missing []string
	if c.APIURL == "" {
		missing = append(missing, EnvAPIURL)
	}
	if c.APIKey == "" {
		missing = append(missing, EnvAPIKey)
	}
	if c.APISecret == "" {
		missing = append(missing, EnvAPISecret)
	}
	if c.TokenURL == "" {
		missing = append(missing, EnvTokenURL)
	}
	if len(missing) > 0 {
		return &MissingError{Names: missing}
	}

	var errs []error
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	if c.TokenRetries < 1 {
		errs = append(errs, fmt.Errorf("token retries must be at least 1, got %d", c.TokenRetries))
	}
	if !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
		errs = append(errs, fmt.Errorf("API URL must start with http:// or https://: %q", c.APIURL))
	}
	return errors.Join(errs...)
}

// Redacted returns a copy safe to print.
func (c *Config) Redacted() Config {
	out := *c
	if out.APIKey != "" {
		out.APIKey = "****"
	}
	if out.APISecret != "" {
		out.APISecret = "****"
	}
	return out
}
