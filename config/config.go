package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: keyword gate and GitHub OAuth configuration
//   - http.go: HTTP server and CORS configuration
//   - database.go: Redis and session store configuration
//   - observability.go: metrics configuration
type AppConfig struct {
	// IsDev controls development mode behavior (in-memory session store
	// fallback, etc.). Set DEV=true for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Auth holds keyword gate and OAuth configuration.
	Auth AuthConfig

	// HTTP server configuration.
	HTTP HTTPConfig

	// Redis / session store configuration.
	Redis   RedisConfig `envPrefix:"REDIS_"`
	Session SessionConfig

	// Observability configuration.
	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Session.Sanitize()
	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
