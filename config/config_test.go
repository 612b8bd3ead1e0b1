package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envVars = []string{
	"CENTRAL_HOST", "CENTRAL_PORT", "CENTRAL_PREFIX",
	"CENTRAL_HTTPS", "CENTRAL_TIMEOUT", "CENTRAL_LOCALE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envVars {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CENTRAL_HOST", "central.example")
	t.Setenv("CENTRAL_PORT", "8443")
	t.Setenv("CENTRAL_HTTPS", "true")
	t.Setenv("CENTRAL_TIMEOUT", "10s")
	t.Setenv("CENTRAL_LOCALE", "pt-BR")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "central.example", cfg.Host)
	assert.Equal(t, 8443, cfg.Port)
	assert.True(t, cfg.HTTPS)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "pt-BR", cfg.Locale)
	assert.Equal(t, "/v1", cfg.Prefix)
}

func TestFromEnv_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("CENTRAL_PORT", "not-a-number")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "central.yaml")
	require.NoError(t, os.WriteFile(path, []byte("host: files.example\nport: 5000\nlocale: de\n"), 0o600))
	t.Setenv("CENTRAL_LOCALE", "fr")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "files.example", cfg.Host)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "fr", cfg.Locale)
	assert.Equal(t, DefaultPrefix, cfg.Prefix)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty host", mutate: func(c *Config) { c.Host = " " }, wantErr: true},
		{name: "port zero", mutate: func(c *Config) { c.Port = 0 }, wantErr: true},
		{name: "port too big", mutate: func(c *Config) { c.Port = 70000 }, wantErr: true},
		{name: "relative prefix", mutate: func(c *Config) { c.Prefix = "v1" }, wantErr: true},
		{name: "no timeout", mutate: func(c *Config) { c.Timeout = 0 }, wantErr: true},
		{name: "no locale", mutate: func(c *Config) { c.Locale = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestURLs(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "http://localhost:4440/v1", cfg.BaseURL())
	assert.Equal(t, "/v1/socket.io", cfg.SocketPath())
	assert.Equal(t, "ws://localhost:4440/v1/socket.io", cfg.SocketURL())

	cfg.HTTPS = true
	cfg.Host = "central.example"
	assert.Equal(t, "https://central.example:4440/v1", cfg.BaseURL())
	assert.Equal(t, "wss://central.example:4440/v1/socket.io", cfg.SocketURL())
}

func TestWithDefaults(t *testing.T) {
	cfg := Config{Host: "h", HTTPS: true}.WithDefaults()
	assert.Equal(t, "h", cfg.Host)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultPrefix, cfg.Prefix)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultLocale, cfg.Locale)
	assert.True(t, cfg.HTTPS)
}
