package bootstrap

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lumenlab/auth-gateway/config"
	httpx "github.com/lumenlab/auth-gateway/internal/http"
	"github.com/lumenlab/auth-gateway/internal/service"
)

const (
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

// HTTPServerDeps contains configuration for the HTTP server.
type HTTPServerDeps struct {
	Config          *config.AppConfig
	Auth            *service.AuthService
	MetricsRegistry *prometheus.Registry
	Logger          *slog.Logger
}

// NewHTTPServer builds the gateway's HTTP server with the router wired.
func NewHTTPServer(deps HTTPServerDeps) *http.Server {
	cfg := deps.Config

	handler := httpx.NewRouter(httpx.RouterServices{
		Auth:                 deps.Auth,
		FrontendURL:          cfg.Auth.FrontendURL,
		FallbackLoginURL:     cfg.Auth.FallbackLoginURL,
		AllowedOrigins:       cfg.HTTP.AllowedOrigins,
		SessionTTL:           cfg.Session.TTL,
		KeywordRatePerMinute: cfg.HTTP.KeywordRatePerMinute,
		KeywordRateBurst:     cfg.HTTP.KeywordRateBurst,
		MetricsRegistry:      deps.MetricsRegistry,
		Logger:               deps.Logger,
	})

	return &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
}
