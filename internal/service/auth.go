package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/lumenlab/auth-gateway/internal/domain/auth"
	apperrors "github.com/lumenlab/auth-gateway/internal/errors"
	"github.com/lumenlab/auth-gateway/internal/observability/metrics"
	"github.com/lumenlab/auth-gateway/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	OAuth    ports.OAuthClient
	Sessions ports.SessionStore
	Keyword  string
	Metrics  metrics.Recorder
	Logger   *slog.Logger
}

// AuthService is the authentication state machine. It decides which
// transitions are legal, drives the OAuth client during the callback step,
// and writes results into the session store.
type AuthService struct {
	oauth    ports.OAuthClient
	sessions ports.SessionStore
	keyword  []byte
	metrics  metrics.Recorder
	logger   *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	rec := opts.Metrics
	if rec == nil {
		rec = metrics.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		oauth:    opts.OAuth,
		sessions: opts.Sessions,
		keyword:  []byte(opts.Keyword),
		metrics:  rec,
		logger:   logger,
	}
}

// EnsureSession returns the session for the given identifier, creating and
// persisting an empty one when the identifier is absent or unknown.
func (s *AuthService) EnsureSession(ctx context.Context, sessionID string) (domainauth.Session, error) {
	if sessionID != "" {
		sess, err := s.sessions.Get(ctx, sessionID)
		if err == nil {
			return sess, nil
		}
		if !errors.Is(err, ports.ErrSessionNotFound) {
			return domainauth.Session{}, fmt.Errorf("get session: %w", err)
		}
	}

	sess := domainauth.NewSession(generateSessionID())
	if err := s.sessions.Save(ctx, sess); err != nil {
		return domainauth.Session{}, fmt.Errorf("save session: %w", err)
	}
	s.metrics.RecordSessionCreated()
	return sess, nil
}

// SubmitKeyword compares the candidate against the configured secret. On
// match the session is elevated to keyword-verified; on mismatch or missing
// input the session is unchanged and the caller learns nothing beyond
// "invalid keyword".
func (s *AuthService) SubmitKeyword(ctx context.Context, sessionID, candidate string) (domainauth.Session, error) {
	if candidate == "" || subtle.ConstantTimeCompare([]byte(candidate), s.keyword) != 1 {
		s.metrics.RecordKeywordAttempt(metrics.OutcomeInvalidKeyword)
		return domainauth.Session{}, apperrors.InvalidCredential("invalid keyword")
	}

	sess, err := s.EnsureSession(ctx, sessionID)
	if err != nil {
		s.metrics.RecordKeywordAttempt(metrics.OutcomeStorageFailed)
		return domainauth.Session{}, err
	}

	sess.VerifyKeyword()
	if err := s.sessions.Save(ctx, sess); err != nil {
		s.metrics.RecordKeywordAttempt(metrics.OutcomeStorageFailed)
		return domainauth.Session{}, fmt.Errorf("save session: %w", err)
	}

	s.metrics.RecordKeywordAttempt(metrics.OutcomeSuccess)
	return sess, nil
}

// BeginOAuth returns the provider authorization URL. Initiating OAuth is
// only permitted once the keyword gate has been passed; the step itself is
// idempotent and changes no state.
func (s *AuthService) BeginOAuth(ctx context.Context, sessionID string) (string, error) {
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if !sess.KeywordVerified() {
		return "", apperrors.Unauthorized("keyword verification required")
	}

	return s.oauth.AuthCodeURL(), nil
}

// CompleteOAuth runs the callback protocol: exchange the authorization code
// for an access token, fetch the caller's profile with it, and persist the
// identity. Every failure leaves the session unchanged; the access token
// never outlives this call.
func (s *AuthService) CompleteOAuth(ctx context.Context, sessionID, code string) (domainauth.Session, error) {
	if code == "" {
		s.metrics.RecordOAuthLogin(metrics.OutcomeMissingCode)
		return domainauth.Session{}, apperrors.MalformedCallback("authorization code missing from callback")
	}

	start := time.Now()
	token, err := s.oauth.ExchangeCode(ctx, code)
	if err != nil {
		// Error carries upstream status and body for operator diagnosis;
		// the caller only ever sees a redirect.
		s.logger.ErrorContext(ctx, "token exchange failed", "error", err)
		s.metrics.RecordOAuthLogin(metrics.OutcomeExchangeFailed)
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeUpstreamExchange, "token exchange failed")
	}

	identity, err := s.oauth.FetchProfile(ctx, token)
	if err != nil {
		s.logger.ErrorContext(ctx, "profile fetch failed", "error", err)
		s.metrics.RecordOAuthLogin(metrics.OutcomeProfileFailed)
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeUpstreamExchange, "profile fetch failed")
	}
	s.metrics.RecordExchangeLatency(time.Since(start))

	sess, err := s.EnsureSession(ctx, sessionID)
	if err != nil {
		s.metrics.RecordOAuthLogin(metrics.OutcomeStorageFailed)
		return domainauth.Session{}, err
	}

	sess.CompleteOAuth(identity)
	if err := s.sessions.Save(ctx, sess); err != nil {
		s.metrics.RecordOAuthLogin(metrics.OutcomeStorageFailed)
		return domainauth.Session{}, fmt.Errorf("save session: %w", err)
	}

	s.metrics.RecordOAuthLogin(metrics.OutcomeSuccess)
	return sess, nil
}

// Profile projects the current session into a caller-facing identity without
// mutating state. Keyword-verified sessions get a fixed guest identity
// synthesized on every call.
func (s *AuthService) Profile(ctx context.Context, sessionID string) (domainauth.ProfileView, error) {
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return domainauth.ProfileView{}, err
	}

	switch {
	case sess.OAuthAuthenticated():
		return domainauth.ProfileView{Type: "github", Data: sess.Identity}, nil
	case sess.KeywordVerified():
		return domainauth.ProfileView{Type: "keyword", Data: domainauth.NewGuestProfile()}, nil
	default:
		return domainauth.ProfileView{}, apperrors.Unauthorized("not authenticated")
	}
}

// Logout destroys the session. Unknown or absent identifiers are not errors;
// logout is idempotent.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// getSession resolves a session identifier, mapping absence to Unauthorized.
func (s *AuthService) getSession(ctx context.Context, sessionID string) (domainauth.Session, error) {
	if sessionID == "" {
		return domainauth.Session{}, apperrors.Unauthorized("no session")
	}
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return domainauth.Session{}, apperrors.Unauthorized("no session")
		}
		return domainauth.Session{}, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

// generateSessionID creates an unguessable session identifier.
func generateSessionID() string {
	return uuid.New().String()
}
