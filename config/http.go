package config

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// AllowedOrigins lists the cross-origin callers permitted to send
	// credentialed requests (the frontend and the fallback login page).
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// KeywordRatePerMinute / KeywordRateBurst throttle /check-keyword per
	// client IP.
	KeywordRatePerMinute int `env:"KEYWORD_RATE_PER_MINUTE" envDefault:"30"`
	KeywordRateBurst     int `env:"KEYWORD_RATE_BURST"      envDefault:"10"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	if h.KeywordRatePerMinute < 1 {
		h.KeywordRatePerMinute = 1
	}
	if h.KeywordRateBurst < 1 {
		h.KeywordRateBurst = 1
	}
}
