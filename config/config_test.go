package config

import (
	"os"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_Defaults(t *testing.T) {
	t.Setenv("SECRET_KEYWORD", "letmein")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.False(t, cfg.IsDev)
	assert.Equal(t, "letmein", cfg.Auth.SecretKeyword)
	assert.Equal(t, "user:email", cfg.Auth.GitHub.Scope)
	assert.Equal(t, 10*time.Second, cfg.Auth.GitHub.Timeout)
	assert.Equal(t, "http://localhost:3000", cfg.Auth.FrontendURL)
	assert.Equal(t, "http://localhost:3000/login", cfg.Auth.FallbackLoginURL)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 30, cfg.HTTP.KeywordRatePerMinute)
	assert.Equal(t, 10, cfg.HTTP.KeywordRateBurst)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.True(t, cfg.Observability.MetricsEnabled)
}

func TestAppConfig_MissingKeyword(t *testing.T) {
	t.Setenv("SECRET_KEYWORD", "")
	require.NoError(t, os.Unsetenv("SECRET_KEYWORD"))

	var cfg AppConfig
	err := env.Parse(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SECRET_KEYWORD")
}

func TestAppConfig_FromEnvironment(t *testing.T) {
	t.Setenv("SECRET_KEYWORD", "hunter2")
	t.Setenv("GITHUB_CLIENT_ID", "abc123")
	t.Setenv("GITHUB_CLIENT_SECRET", "shhh")
	t.Setenv("GITHUB_REDIRECT_URI", "https://gw.example.com/auth/github/callback")
	t.Setenv("FRONTEND_URL", "https://app.example.com")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com,https://staging.example.com")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("METRICS_ENABLED", "false")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, "hunter2", cfg.Auth.SecretKeyword)
	assert.Equal(t, "abc123", cfg.Auth.GitHub.ClientID)
	assert.Equal(t, "shhh", cfg.Auth.GitHub.ClientSecret)
	assert.Equal(t, "https://gw.example.com/auth/github/callback", cfg.Auth.GitHub.RedirectURL)
	assert.Equal(t, "https://app.example.com", cfg.Auth.FrontendURL)
	assert.Equal(t,
		[]string{"https://app.example.com", "https://staging.example.com"},
		cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.False(t, cfg.Observability.MetricsEnabled)
}

func TestSanitize_Guardrails(t *testing.T) {
	cfg := AppConfig{
		HTTP:    HTTPConfig{KeywordRatePerMinute: -5, KeywordRateBurst: 0},
		Session: SessionConfig{TTL: -time.Minute},
	}
	cfg.Sanitize()

	assert.Equal(t, 1, cfg.HTTP.KeywordRatePerMinute)
	assert.Equal(t, 1, cfg.HTTP.KeywordRateBurst)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
}

func TestDetectDevMode(t *testing.T) {
	tests := []struct {
		name    string
		dev     string
		nodeEnv string
		want    bool
	}{
		{"default", "", "", false},
		{"dev flag", "true", "", true},
		{"node env development", "", "development", true},
		{"node env dev", "", "dev", true},
		{"node env production", "", "production", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SECRET_KEYWORD", "letmein")
			if tt.dev != "" {
				t.Setenv("DEV", tt.dev)
			}
			if tt.nodeEnv != "" {
				t.Setenv("NODE_ENV", tt.nodeEnv)
			}

			var cfg AppConfig
			require.NoError(t, env.Parse(&cfg))
			cfg.Sanitize()

			assert.Equal(t, tt.want, cfg.IsDev)
		})
	}
}
