package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeKDL(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestMerge_LaterWins(t *testing.T) {
	user := &KDLConfig{API: KDLAPIConfig{URL: "https://user.example.com", Key: "user-key"}}
	project := &KDLConfig{API: KDLAPIConfig{URL: "https://project.example.com"}}

	cfg, err := Merge(user, nil, project)
	require.NoError(t, err)
	assert.Equal(t, "https://project.example.com", cfg.APIURL)
	assert.Equal(t, "user-key", cfg.APIKey)
}

func TestLoad_Precedence(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	writeKDL(t, filepath.Join(xdg, "jobboss2-mcp", "config.kdl"), `api {
    url "https://user.example.com"
    key "user-key"
    secret "user-secret"
}
logging {
    level "info"
}`)

	project := t.TempDir()
	writeKDL(t, filepath.Join(project, ".jobboss2-mcp.kdl"), `api {
    url "https://project.example.com"
    token-url "https://project.example.com/oauth/token"
}`)

	cfg, err := Load(Options{
		ProjectDir: project,
		Getenv:     envMap(map[string]string{EnvAPISecret: "env-secret"}),
	})
	require.NoError(t, err)

	assert.Equal(t, "https://project.example.com", cfg.APIURL)
	assert.Equal(t, "user-key", cfg.APIKey)
	assert.Equal(t, "env-secret", cfg.APISecret)
	assert.Equal(t, "https://project.example.com/oauth/token", cfg.TokenURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Len(t, cfg.Files, 2)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ExplicitFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.kdl")
	writeKDL(t, path, `api {
    url "https://custom.example.com"
}`)

	cfg, err := Load(Options{ProjectDir: t.TempDir(), File: path, Getenv: envMap(nil)})
	require.NoError(t, err)
	assert.Equal(t, "https://custom.example.com", cfg.APIURL)
	assert.Equal(t, []string{path}, cfg.Files)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := Load(Options{File: filepath.Join(t.TempDir(), "missing.kdl"), Getenv: envMap(nil)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(Options{
		ProjectDir: t.TempDir(),
		Getenv: envMap(map[string]string{
			EnvAPIURL:       "https://erp.example.com/",
			EnvAPIKey:       "id",
			EnvAPISecret:    "secret",
			EnvTokenURL:     "https://erp.example.com/oauth/token",
			EnvTimeout:      "1500",
			EnvTokenRetries: "2",
		}),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://erp.example.com", cfg.APIURL)
	assert.Equal(t, 1500*time.Millisecond, cfg.Timeout)
	assert.Equal(t, 2, cfg.TokenRetries)
	assert.Empty(t, cfg.Files)
}

func TestApplyEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"timeout not a number", map[string]string{EnvTimeout: "fast"}, EnvTimeout},
		{"timeout zero", map[string]string{EnvTimeout: "0"}, EnvTimeout},
		{"retries zero", map[string]string{EnvTokenRetries: "0"}, EnvTokenRetries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ApplyEnv(NewConfig(), envMap(tt.env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
