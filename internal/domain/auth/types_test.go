package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewSession(t *testing.T) {
	sess := NewSession("abc")

	assert.Equal(t, "abc", sess.ID)
	assert.Equal(t, StateUnauthenticated, sess.State)
	assert.Nil(t, sess.Identity)
	assert.False(t, sess.KeywordVerified())
	assert.False(t, sess.OAuthAuthenticated())
}

func TestSession_VerifyKeyword(t *testing.T) {
	sess := NewSession("abc")

	sess.VerifyKeyword()
	assert.Equal(t, StateKeywordVerified, sess.State)
	assert.True(t, sess.KeywordVerified())
	assert.False(t, sess.OAuthAuthenticated())
	assert.Nil(t, sess.Identity)

	// Idempotent
	sess.VerifyKeyword()
	assert.Equal(t, StateKeywordVerified, sess.State)
}

func TestSession_VerifyKeyword_DoesNotDowngradeOAuth(t *testing.T) {
	sess := NewSession("abc")
	sess.CompleteOAuth(Identity{Login: strPtr("octocat")})

	sess.VerifyKeyword()

	assert.Equal(t, StateOAuthAuthenticated, sess.State)
	require.NotNil(t, sess.Identity)
	assert.Equal(t, "octocat", *sess.Identity.Login)
}

func TestSession_CompleteOAuth(t *testing.T) {
	sess := NewSession("abc")
	sess.VerifyKeyword()

	identity := Identity{
		Name:      strPtr("The Octocat"),
		AvatarURL: strPtr("https://example.com/a.png"),
		Login:     strPtr("octocat"),
		// ProfileURL intentionally nil; nullable fields pass through
	}
	sess.CompleteOAuth(identity)

	assert.Equal(t, StateOAuthAuthenticated, sess.State)
	assert.True(t, sess.KeywordVerified())
	require.NotNil(t, sess.Identity)
	assert.Equal(t, identity, *sess.Identity)
	assert.Nil(t, sess.Identity.ProfileURL)
}

func TestSession_IdentityOnlyWhenOAuthAuthenticated(t *testing.T) {
	sess := NewSession("abc")
	assert.Nil(t, sess.Identity)

	sess.VerifyKeyword()
	assert.Nil(t, sess.Identity)

	sess.CompleteOAuth(Identity{})
	assert.NotNil(t, sess.Identity)

	sess.Reset()
	assert.Equal(t, StateUnauthenticated, sess.State)
	assert.Nil(t, sess.Identity)
}

func TestNewGuestProfile(t *testing.T) {
	guest := NewGuestProfile()

	assert.Equal(t, "Guest User", guest.Name)
	assert.Equal(t, "https://via.placeholder.com/150", guest.AvatarURL)
	assert.Equal(t, "Logged in with secret keyword", guest.Message)
}
