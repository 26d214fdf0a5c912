package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	for _, key := range []string{"GO_ENV", "PORT", "REQUEST_TIMEOUT", "SCHEDULE_GUARD", "EMAIL_PROVIDER", "CORS_ALLOWED_ORIGINS", "AUTH_JWT_SECRET"} {
		t.Setenv(key, "")
	}

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "none", cfg.ScheduleGuard)
	assert.Equal(t, 10*time.Second, cfg.ScheduleGuardTTL)
	assert.Equal(t, "noop", cfg.EmailProvider)
	assert.True(t, cfg.RunMigrations)
	assert.False(t, cfg.IsProduction())
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REQUEST_TIMEOUT", "750ms")
	t.Setenv("SCHEDULE_GUARD", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 750*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, "redis", cfg.ScheduleGuard)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "unknown guard", env: map[string]string{"SCHEDULE_GUARD": "zookeeper"}, wantErr: "SCHEDULE_GUARD"},
		{name: "ses without sender", env: map[string]string{"EMAIL_PROVIDER": "ses", "EMAIL_FROM_ADDRESS": ""}, wantErr: "EMAIL_FROM_ADDRESS"},
		{name: "production without secret", env: map[string]string{"GO_ENV": "production", "AUTH_JWT_SECRET": ""}, wantErr: "AUTH_JWT_SECRET"},
		{name: "bad duration", env: map[string]string{"REQUEST_TIMEOUT": "soon"}, wantErr: "parse env"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Parse()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, &Config{Environment: "production", LogLevel: "warn"})
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "v", entry["k"])

	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}
