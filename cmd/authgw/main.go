package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/lumenlab/auth-gateway/config"
	"github.com/lumenlab/auth-gateway/internal/bootstrap"
	"github.com/lumenlab/auth-gateway/internal/observability/metrics"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting auth gateway",
		"addr", cfg.HTTP.Addr,
		"dev", cfg.IsDev,
		"allowed_origins", cfg.HTTP.AllowedOrigins)

	var registry *prometheus.Registry
	var recorder metrics.Recorder = metrics.Nop{}
	if cfg.Observability.MetricsEnabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		recorder = metrics.NewCollector(registry)
	}

	redisClient, err := connectRedis(&cfg, logger)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()
	}

	authDeps := bootstrap.AuthDeps{
		Config:  &cfg,
		Metrics: recorder,
		Logger:  logger,
	}
	if redisClient != nil {
		// Assign only when connected; a typed-nil *redis.Client would make
		// the interface field non-nil.
		authDeps.RedisClient = redisClient
	}

	authSvc, err := bootstrap.BuildAuthService(authDeps)
	if err != nil {
		return err
	}

	srv := bootstrap.NewHTTPServer(bootstrap.HTTPServerDeps{
		Config:          &cfg,
		Auth:            authSvc,
		MetricsRegistry: registry,
		Logger:          logger,
	})

	return bootstrap.RunServerWithShutdown(ctx, srv, logger)
}

// connectRedis connects the session store backend. In dev mode an
// unreachable Redis degrades to the in-memory store instead of failing
// startup.
func connectRedis(cfg *config.AppConfig, logger *slog.Logger) (*redis.Client, error) {
	client, err := bootstrap.ConnectRedis(cfg.Redis, logger)
	if err != nil {
		if cfg.IsDev {
			logger.Warn("redis unavailable, falling back to in-memory sessions", "error", err)
			return nil, nil
		}
		return nil, err
	}
	return client, nil
}
