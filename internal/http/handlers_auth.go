package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	domainauth "github.com/lumenlab/auth-gateway/internal/domain/auth"
	apperrors "github.com/lumenlab/auth-gateway/internal/errors"
)

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	EnsureSession(ctx context.Context, sessionID string) (domainauth.Session, error)
	SubmitKeyword(ctx context.Context, sessionID, candidate string) (domainauth.Session, error)
	BeginOAuth(ctx context.Context, sessionID string) (string, error)
	CompleteOAuth(ctx context.Context, sessionID, code string) (domainauth.Session, error)
	Profile(ctx context.Context, sessionID string) (domainauth.ProfileView, error)
	Logout(ctx context.Context, sessionID string) error
}

// AuthHandlers provides HTTP handlers for the authentication endpoints.
type AuthHandlers struct {
	Svc AuthServiceInterface

	// FrontendURL receives the browser after a successful OAuth login;
	// FallbackLoginURL receives it after any callback failure.
	FrontendURL      string
	FallbackLoginURL string

	// SessionTTL bounds the session cookie lifetime. The server-side record
	// expires independently in the store.
	SessionTTL time.Duration

	Logger *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// CheckKeyword handles the keyword gate.
// POST /check-keyword with body {"keyword": "..."}.
func (h *AuthHandlers) CheckKeyword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Keyword string `json:"keyword"`
	}
	if !DecodeJSON(w, r, &body) {
		return
	}

	sess, err := h.Svc.SubmitKeyword(r.Context(), h.sessionID(r), body.Keyword)
	if err != nil {
		if apperrors.IsInvalidCredential(err) {
			WriteError(w, http.StatusUnauthorized, errMsgInvalidKeyword)
			return
		}
		h.logger().ErrorContext(r.Context(), "keyword submit failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	h.setSessionCookie(w, sess.ID)
	WriteSuccess(w)
}

// GitHubAuth starts delegated login.
// GET /auth/github; requires a keyword-verified session.
func (h *AuthHandlers) GitHubAuth(w http.ResponseWriter, r *http.Request) {
	authURL, err := h.Svc.BeginOAuth(r.Context(), h.sessionID(r))
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			WriteError(w, http.StatusUnauthorized, errMsgUnauthorized)
			return
		}
		h.logger().ErrorContext(r.Context(), "begin oauth failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	http.Redirect(w, r, authURL, http.StatusFound)
}

// GitHubCallback completes delegated login.
// GET /auth/github/callback?code=...
// The browser arrives here via a provider redirect, so the response is
// always a redirect: frontend URL on success, fallback login URL on any
// failure. Details stay in the logs.
func (h *AuthHandlers) GitHubCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")

	sess, err := h.Svc.CompleteOAuth(r.Context(), h.sessionID(r), code)
	if err != nil {
		h.logger().WarnContext(r.Context(), "oauth callback failed",
			"error", err,
			"error_code", string(apperrors.GetCode(err)))
		http.Redirect(w, r, h.FallbackLoginURL, http.StatusFound)
		return
	}

	h.setSessionCookie(w, sess.ID)
	http.Redirect(w, r, h.FrontendURL, http.StatusFound)
}

// Profile projects the session into the caller-facing identity.
// GET /api/profile.
func (h *AuthHandlers) Profile(w http.ResponseWriter, r *http.Request) {
	view, err := h.Svc.Profile(r.Context(), h.sessionID(r))
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			WriteError(w, http.StatusUnauthorized, errMsgUnauthorized)
			return
		}
		h.logger().ErrorContext(r.Context(), "profile lookup failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	WriteJSON(w, http.StatusOK, view)
}

// Logout destroys the session.
// GET /logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if sessionID := h.sessionID(r); sessionID != "" {
		if err := h.Svc.Logout(r.Context(), sessionID); err != nil {
			h.logger().WarnContext(r.Context(), "logout failed", "error", err)
		}
	}

	h.clearSessionCookie(w)
	WriteSuccess(w)
}

// sessionID extracts the session identifier from the request cookie, or ""
// when no cookie is present.
func (h *AuthHandlers) sessionID(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// setSessionCookie writes the cross-site session cookie. SameSite=None
// requires Secure; browsers drop the cookie otherwise.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, sessionID string) {
	maxAge := 0
	if h.SessionTTL > 0 {
		maxAge = int(h.SessionTTL.Seconds())
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		MaxAge:   maxAge,
	})
}

// clearSessionCookie expires the session cookie on the client.
func (h *AuthHandlers) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
	})
}
