package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

// State represents a caller's authentication progress.
// Keep string form for easy persistence and cookies.
type State string

const (
	StateUnauthenticated    State = "unauthenticated"
	StateKeywordVerified    State = "keyword_verified"
	StateOAuthAuthenticated State = "oauth_authenticated"
)

// Identity holds the profile fields returned by the OAuth provider.
// Every field is independently nullable and passed through verbatim;
// nothing is synthesized here.
type Identity struct {
	Name       *string `json:"name"`
	AvatarURL  *string `json:"avatar_url"`
	ProfileURL *string `json:"html_url"`
	Login      *string `json:"login"`
}

// Session is the server-side record keyed by an opaque identifier carried
// in a cookie. Identity is set if and only if State is StateOAuthAuthenticated.
type Session struct {
	ID       string    `json:"id"`
	State    State     `json:"state"`
	Identity *Identity `json:"identity,omitempty"`
}

// NewSession returns an empty session in the unauthenticated state.
func NewSession(id string) Session {
	return Session{ID: id, State: StateUnauthenticated}
}

// KeywordVerified reports whether the session has passed the keyword gate.
// An OAuth-authenticated session satisfies the gate as well.
func (s Session) KeywordVerified() bool {
	return s.State == StateKeywordVerified || s.State == StateOAuthAuthenticated
}

// OAuthAuthenticated reports whether the session completed delegated login.
func (s Session) OAuthAuthenticated() bool {
	return s.State == StateOAuthAuthenticated
}

// VerifyKeyword elevates the session to the keyword-verified state.
// Repeated calls are idempotent and a completed OAuth login is never
// downgraded.
func (s *Session) VerifyKeyword() {
	if s.State == StateOAuthAuthenticated {
		return
	}
	s.State = StateKeywordVerified
}

// CompleteOAuth records the provider identity and moves the session to the
// OAuth-authenticated state.
func (s *Session) CompleteOAuth(id Identity) {
	s.Identity = &id
	s.State = StateOAuthAuthenticated
}

// Reset returns the session to the unauthenticated state and drops any
// stored identity.
func (s *Session) Reset() {
	s.State = StateUnauthenticated
	s.Identity = nil
}
