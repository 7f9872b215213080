package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"errors"

	domainauth "github.com/lumenlab/auth-gateway/internal/domain/auth"
)

// ErrSessionNotFound is returned by SessionStore.Get when no session exists
// for the given identifier. All store implementations share this sentinel so
// callers can branch without knowing the backing storage.
var ErrSessionNotFound = errors.New("session not found")

// OAuthClient performs the external calls of a delegated login against an
// OAuth provider. It is stateless; the authorization code and access token
// are transient values scoped to a single callback.
type OAuthClient interface {
	// AuthCodeURL builds the provider authorization URL embedding the client
	// identifier, the fixed callback URI, and the configured scope. Local and
	// side-effect free.
	AuthCodeURL() string

	// ExchangeCode trades an authorization code for an access token. The
	// callback URI sent here must match the one used in AuthCodeURL or the
	// provider rejects the exchange.
	ExchangeCode(ctx context.Context, code string) (string, error)

	// FetchProfile retrieves the caller's profile from the provider's
	// user-info endpoint using bearer-token authorization.
	FetchProfile(ctx context.Context, accessToken string) (domainauth.Identity, error)
}

// SessionStore persists and retrieves caller sessions by opaque identifier.
// Reads after a write within the same request must observe the write.
type SessionStore interface {
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Save(ctx context.Context, sess domainauth.Session) error
	Delete(ctx context.Context, id string) error
}
