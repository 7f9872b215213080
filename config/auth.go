package config

import "time"

// GitHubOAuthConfig contains the delegated login configuration. The
// RedirectURL must be the exact callback URI registered with the provider;
// it is sent on both the authorize and token-exchange requests.
type GitHubOAuthConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RedirectURL  string `env:"REDIRECT_URI"`
	Scope        string `env:"SCOPE"         envDefault:"user:email"`

	// Timeout bounds each outbound provider call so an unresponsive
	// provider cannot hang the handling request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// SecretKeyword is the shared secret for the keyword gate.
	SecretKeyword string `env:"SECRET_KEYWORD,required"`

	// GitHub OAuth application credentials.
	GitHub GitHubOAuthConfig `envPrefix:"GITHUB_"`

	// FrontendURL receives the browser after a successful OAuth login.
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	// FallbackLoginURL receives the browser after any OAuth callback failure.
	FallbackLoginURL string `env:"FALLBACK_LOGIN_URL" envDefault:"http://localhost:3000/login"`
}
