package httpx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lumenlab/auth-gateway/internal/observability/metrics"
)

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Auth AuthServiceInterface

	FrontendURL      string
	FallbackLoginURL string
	AllowedOrigins   []string
	SessionTTL       time.Duration

	// KeywordRatePerMinute / KeywordRateBurst throttle /check-keyword per
	// client IP. Zero values fall back to conservative defaults.
	KeywordRatePerMinute int
	KeywordRateBurst     int

	// MetricsRegistry, when set, exposes GET /metrics.
	MetricsRegistry *prometheus.Registry

	Logger *slog.Logger
}

// NewRouter creates and configures the gateway's HTTP handler.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	authHandlers := &AuthHandlers{
		Svc:              services.Auth,
		FrontendURL:      services.FrontendURL,
		FallbackLoginURL: services.FallbackLoginURL,
		SessionTTL:       services.SessionTTL,
		Logger:           logger,
	}

	perMinute := services.KeywordRatePerMinute
	if perMinute == 0 {
		perMinute = 30
	}
	burst := services.KeywordRateBurst
	if burst == 0 {
		burst = 10
	}
	keywordLimiter := NewClientRateLimiter(perMinute, burst)

	mux := http.NewServeMux()
	mux.Handle("POST /check-keyword",
		RateLimit(keywordLimiter)(http.HandlerFunc(authHandlers.CheckKeyword)))
	mux.HandleFunc("GET /auth/github", authHandlers.GitHubAuth)
	mux.HandleFunc("GET /auth/github/callback", authHandlers.GitHubCallback)
	mux.HandleFunc("GET /api/profile", authHandlers.Profile)
	mux.HandleFunc("GET /logout", authHandlers.Logout)
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	if services.MetricsRegistry != nil {
		mux.Handle("GET /metrics", metrics.Handler(services.MetricsRegistry))
	}

	return Chain(mux,
		Recover(logger),
		Logging(logger),
		CORS(services.AllowedOrigins),
	)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write([]byte("ok"))
	}
}
