package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	kdl "github.com/sblinch/kdl-go"
)

const (
	ProjectConfigFile = ".jobboss2-mcp.kdl"
	UserConfigDir     = "jobboss2-mcp"
	UserConfigFile    = "config.kdl"
)

// KDLConfig is the raw KDL structure for unmarshaling:
//
//	api {
//	    url "https://erp.example.com"
//	    key "client-id"
//	    secret "client-secret"
//	    token-url "https://erp.example.com/oauth/token"
//	    timeout-ms 30000
//	}
//	token {
//	    retries 3
//	    retry-delay "500ms"
//	    fallback-lifetime "1h"
//	    expiry-skew "30s"
//	}
//	logging {
//	    level "debug"
//	    format "json"
//	}
type KDLConfig struct {
	API     KDLAPIConfig     `kdl:"api"`
	Token   KDLTokenConfig   `kdl:"token"`
	Logging KDLLoggingConfig `kdl:"logging"`
}

// KDLAPIConfig is the api node.
type KDLAPIConfig struct {
	URL       string `kdl:"url"`
	Key       string `kdl:"key"`
	Secret    string `kdl:"secret"`
	TokenURL  string `kdl:"token-url"`
	TimeoutMS int    `kdl:"timeout-ms"`
}

// KDLTokenConfig is the token node. Durations use Go syntax ("30s", "1h").
type KDLTokenConfig struct {
	Retries          int    `kdl:"retries"`
	RetryDelay       string `kdl:"retry-delay"`
	FallbackLifetime string `kdl:"fallback-lifetime"`
	ExpirySkew       string `kdl:"expiry-skew"`
}

// KDLLoggingConfig is the logging node.
type KDLLoggingConfig struct {
	Level  string `kdl:"level"`
	Format string `kdl:"format"`
}

// UserConfigPath returns the path to the user config file.
func UserConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, UserConfigDir, UserConfigFile)
}

// ProjectConfigPath returns the path to the project config file.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectConfigFile)
}

// ParseKDLConfig parses KDL configuration data.
func ParseKDLConfig(data string) (*KDLConfig, error) {
	var cfg KDLConfig
	if err := kdl.Unmarshal([]byte(data), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadConfigFile reads path. A missing file yields nil and no error.
func loadConfigFile(path string) (*KDLConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	cfg, err := ParseKDLConfig(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// apply copies every value set in k onto c.
func (k *KDLConfig) apply(c *Config) error {
	setString := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	setDuration := func(dst *time.Duration, node, v string) error {
		if v = strings.TrimSpace(v); v == "" {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("token %s: %w", node, err)
		}
		if d < 0 {
			return fmt.Errorf("token %s: must not be negative", node)
		}
		*dst = d
		return nil
	}

	setString(&c.APIURL, k.API.URL)
	setString(&c.APIKey, k.API.Key)
	setString(&c.APISecret, k.API.Secret)
	setString(&c.TokenURL, k.API.TokenURL)
	if k.API.TimeoutMS > 0 {
		c.Timeout = time.Duration(k.API.TimeoutMS) * time.Millisecond
	}

	if k.Token.Retries > 0 {
		c.TokenRetries = k.Token.Retries
	}
	if err := setDuration(&c.TokenRetryDelay, "retry-delay", k.Token.RetryDelay); err != nil {
		return err
	}
	if err := setDuration(&c.TokenLifetime, "fallback-lifetime", k.Token.FallbackLifetime); err != nil {
		return err
	}
	if err := setDuration(&c.TokenExpirySkew, "expiry-skew", k.Token.ExpirySkew); err != nil {
		return err
	}

	setString(&c.LogLevel, k.Logging.Level)
	setString(&c.LogFormat, k.Logging.Format)
	return nil
}
