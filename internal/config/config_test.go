package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 25*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Docs.Enabled)
	assert.False(t, cfg.HTTP.TLSEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("REALWORLD_ENV", "production")
	t.Setenv("REALWORLD_HTTP_PORT", "9090")
	t.Setenv("REALWORLD_HTTP_READ_TIMEOUT", "2s")
	t.Setenv("REALWORLD_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("REALWORLD_METRICS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 2*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"port too high", map[string]string{"REALWORLD_HTTP_PORT": "70000"}},
		{"port not a number", map[string]string{"REALWORLD_HTTP_PORT": "http"}},
		{"cert without key", map[string]string{"REALWORLD_HTTP_TLS_CERT_FILE": "/tmp/cert.pem"}},
		{"zero shutdown timeout", map[string]string{"REALWORLD_HTTP_SHUTDOWN_TIMEOUT": "0s"}},
		{"unknown log level", map[string]string{"REALWORLD_LOG_LEVEL": "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
