package bootstrap

import (
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/lumenlab/auth-gateway/config"
	"github.com/lumenlab/auth-gateway/internal/adapters/github"
	"github.com/lumenlab/auth-gateway/internal/adapters/memstore"
	redisadapter "github.com/lumenlab/auth-gateway/internal/adapters/redis"
	"github.com/lumenlab/auth-gateway/internal/observability/metrics"
	"github.com/lumenlab/auth-gateway/internal/ports"
	"github.com/lumenlab/auth-gateway/internal/service"
)

// AuthDeps contains dependencies for building the auth service.
type AuthDeps struct {
	Config      *config.AppConfig
	RedisClient goredis.UniversalClient
	Metrics     metrics.Recorder
	Logger      *slog.Logger
}

// BuildAuthService wires the GitHub OAuth client and the session store into
// the authentication state machine. Without a Redis client the session store
// falls back to in-memory in dev mode and errors otherwise.
func BuildAuthService(deps AuthDeps) (*service.AuthService, error) {
	cfg := deps.Config

	oauthClient, err := buildOAuthClient(cfg.Auth.GitHub)
	if err != nil {
		return nil, fmt.Errorf("build oauth client: %w", err)
	}

	sessions, err := buildSessionStore(deps)
	if err != nil {
		return nil, err
	}

	return service.NewAuthService(service.AuthServiceOptions{
		OAuth:    oauthClient,
		Sessions: sessions,
		Keyword:  cfg.Auth.SecretKeyword,
		Metrics:  deps.Metrics,
		Logger:   deps.Logger,
	}), nil
}

func buildOAuthClient(cfg config.GitHubOAuthConfig) (*github.Client, error) {
	return github.NewClient(github.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scope:        cfg.Scope,
		HTTPClient:   github.TimeoutClient(cfg.Timeout),
	})
}

func buildSessionStore(deps AuthDeps) (ports.SessionStore, error) {
	if deps.RedisClient != nil {
		return redisadapter.NewSessionStore(deps.RedisClient,
			redisadapter.WithTTL(deps.Config.Session.TTL)), nil
	}

	if !deps.Config.IsDev {
		return nil, fmt.Errorf("redis client is required outside dev mode")
	}

	if deps.Logger != nil {
		deps.Logger.Warn("using in-memory session store", "reason", "no redis client in dev mode")
	}
	return memstore.New(), nil
}
