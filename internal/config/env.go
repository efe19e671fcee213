package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables. They take precedence over every config file.
const (
	EnvAPIURL       = "JOBBOSS2_API_URL"
	EnvAPIKey       = "JOBBOSS2_API_KEY"
	EnvAPISecret    = "JOBBOSS2_API_SECRET"
	EnvTokenURL     = "JOBBOSS2_OAUTH_TOKEN_URL"
	EnvTimeout      = "API_TIMEOUT" // milliseconds
	EnvTokenRetries = "JOBBOSS2_TOKEN_RETRIES"
)

// ApplyEnv overrides c with every non-empty variable read through getenv.
// A nil getenv reads the process environment.
func ApplyEnv(c *Config, getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}

	setString := func(dst *string, name string) {
		if v := strings.TrimSpace(getenv(name)); v != "" {
			*dst = v
		}
	}
	setString(&c.APIURL, EnvAPIURL)
	setString(&c.APIKey, EnvAPIKey)
	setString(&c.APISecret, EnvAPISecret)
	setString(&c.TokenURL, EnvTokenURL)

	if v := strings.TrimSpace(getenv(EnvTimeout)); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return fmt.Errorf("%s must be a positive number of milliseconds, got %q", EnvTimeout, v)
		}
		c.Timeout = time.Duration(ms) * time.Millisecond
	}
	if v := strings.TrimSpace(getenv(EnvTokenRetries)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return fmt.Errorf("%s must be a positive integer, got %q", EnvTokenRetries, v)
		}
		c.TokenRetries = n
	}

	c.APIURL = strings.TrimRight(c.APIURL, "/")
	return nil
}
