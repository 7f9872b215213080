package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// newTestClient points a Client at local token and user-info endpoints.
func newTestClient(t *testing.T, tokenHandler, userHandler http.HandlerFunc) *Client {
	t.Helper()

	tokenSrv := httptest.NewServer(tokenHandler)
	t.Cleanup(tokenSrv.Close)
	userSrv := httptest.NewServer(userHandler)
	t.Cleanup(userSrv.Close)

	client, err := NewClient(Config{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		RedirectURL:  "http://localhost:8080/auth/github/callback",
		Scope:        "user:email",
		Endpoint: oauth2.Endpoint{
			AuthURL:  tokenSrv.URL + "/authorize",
			TokenURL: tokenSrv.URL + "/token",
		},
		UserInfoURL: userSrv.URL + "/user",
	})
	require.NoError(t, err)
	return client
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Config{ClientSecret: "s", RedirectURL: "r"})
	assert.ErrorContains(t, err, "client ID")

	_, err = NewClient(Config{ClientID: "c", RedirectURL: "r"})
	assert.ErrorContains(t, err, "client secret")

	_, err = NewClient(Config{ClientID: "c", ClientSecret: "s"})
	assert.ErrorContains(t, err, "redirect URL")
}

func TestAuthCodeURL(t *testing.T) {
	client := newTestClient(t,
		func(w http.ResponseWriter, r *http.Request) {},
		func(w http.ResponseWriter, r *http.Request) {})

	raw := client.AuthCodeURL()
	u, err := url.Parse(raw)
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "test-client", q.Get("client_id"))
	assert.Equal(t, "http://localhost:8080/auth/github/callback", q.Get("redirect_uri"))
	assert.Equal(t, "user:email", q.Get("scope"))
}

func TestExchangeCode_Success(t *testing.T) {
	client := newTestClient(t,
		func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			// redirect_uri must match the one used on the authorize step
			assert.Equal(t, "http://localhost:8080/auth/github/callback", r.FormValue("redirect_uri"))
			assert.Equal(t, "the-code", r.FormValue("code"))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{
				"access_token": "gho_abc123",
				"token_type":   "bearer",
			})
		},
		func(w http.ResponseWriter, r *http.Request) {})

	token, err := client.ExchangeCode(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, "gho_abc123", token)
}

func TestExchangeCode_EmptyCode(t *testing.T) {
	client := newTestClient(t,
		func(w http.ResponseWriter, r *http.Request) {},
		func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.ExchangeCode(context.Background(), "")
	assert.ErrorContains(t, err, "authorization code")
}

func TestExchangeCode_NonSuccessStatus(t *testing.T) {
	client := newTestClient(t,
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"bad_verification_code"}`, http.StatusBadRequest)
		},
		func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.ExchangeCode(context.Background(), "expired-code")
	require.Error(t, err)
	// Upstream status and body are preserved for operator logs
	assert.ErrorContains(t, err, "400")
	assert.ErrorContains(t, err, "bad_verification_code")
}

func TestExchangeCode_MissingAccessToken(t *testing.T) {
	client := newTestClient(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"token_type":"bearer"}`))
		},
		func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.ExchangeCode(context.Background(), "the-code")
	assert.Error(t, err)
}

func TestFetchProfile_Success(t *testing.T) {
	client := newTestClient(t,
		func(w http.ResponseWriter, r *http.Request) {},
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer gho_abc123", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"login": "octocat",
				"name": null,
				"avatar_url": "https://avatars.githubusercontent.com/u/1",
				"html_url": "https://github.com/octocat"
			}`))
		})

	identity, err := client.FetchProfile(context.Background(), "gho_abc123")
	require.NoError(t, err)

	require.NotNil(t, identity.Login)
	assert.Equal(t, "octocat", *identity.Login)
	assert.Nil(t, identity.Name)
	require.NotNil(t, identity.AvatarURL)
	assert.Equal(t, "https://avatars.githubusercontent.com/u/1", *identity.AvatarURL)
	require.NotNil(t, identity.ProfileURL)
	assert.Equal(t, "https://github.com/octocat", *identity.ProfileURL)
}

func TestFetchProfile_NonSuccessStatus(t *testing.T) {
	client := newTestClient(t,
		func(w http.ResponseWriter, r *http.Request) {},
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"Bad credentials"}`, http.StatusUnauthorized)
		})

	_, err := client.FetchProfile(context.Background(), "bad-token")
	require.Error(t, err)
	assert.ErrorContains(t, err, "401")
	assert.ErrorContains(t, err, "Bad credentials")
}

func TestFetchProfile_EmptyToken(t *testing.T) {
	client := newTestClient(t,
		func(w http.ResponseWriter, r *http.Request) {},
		func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.FetchProfile(context.Background(), "")
	assert.ErrorContains(t, err, "access token")
}
