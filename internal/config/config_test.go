package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := NewConfig()
	cfg.APIURL = "https://erp.example.com"
	cfg.APIKey = "id"
	cfg.APISecret = "secret"
	cfg.TokenURL = "https://erp.example.com/oauth/token"
	return cfg
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_MissingListsAll(t *testing.T) {
	err := NewConfig().Validate()
	require.Error(t, err)

	var missing *MissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{EnvAPIURL, EnvAPIKey, EnvAPISecret, EnvTokenURL}, missing.Names)
	assert.Contains(t, err.Error(), "Fix:")
}

func TestValidate_Ranges(t *testing.T) {
	cfg := validConfig()
	cfg.APIURL = "erp.example.com"
	cfg.Timeout = 0
	cfg.TokenRetries = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout must be positive")
	assert.Contains(t, err.Error(), "token retries")
	assert.Contains(t, err.Error(), "http:// or https://")
}

func TestRedacted(t *testing.T) {
	cfg := validConfig()
	r := cfg.Redacted()

	assert.Equal(t, "****", r.APIKey)
	assert.Equal(t, "****", r.APISecret)
	assert.Equal(t, "id", cfg.APIKey)
}
