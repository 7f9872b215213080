package github

// Package github implements the OAuth exchange client against GitHub's
// OAuth2 endpoints. GitHub is plain OAuth2 (no discovery document, no ID
// token), so the adapter drives golang.org/x/oauth2 directly.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainauth "github.com/lumenlab/auth-gateway/internal/domain/auth"
	"golang.org/x/oauth2"
	oauthgithub "golang.org/x/oauth2/github"
)

const (
	defaultUserInfoURL = "https://api.github.com/user"
	defaultTimeout     = 10 * time.Second

	// maxErrorBodyBytes caps how much of an upstream error body is kept for logs.
	maxErrorBodyBytes = 2048
)

// Config holds configuration for the GitHub OAuth client.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scope        string

	// Endpoint overrides the GitHub OAuth2 endpoints. Zero value means the
	// public github.com endpoints; tests point this at a local server.
	Endpoint oauth2.Endpoint

	// UserInfoURL overrides the profile endpoint. Defaults to
	// https://api.github.com/user.
	UserInfoURL string

	// HTTPClient is optional; the default carries a bounded timeout so an
	// unresponsive provider cannot hang the handling request.
	HTTPClient *http.Client
}

// Client performs the code-for-token exchange and the profile fetch.
type Client struct {
	config      *oauth2.Config
	userInfoURL string
	httpClient  *http.Client
}

// NewClient creates a new GitHub OAuth client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if cfg.ClientSecret == "" {
		return nil, errors.New("client secret is required")
	}
	if cfg.RedirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	endpoint := cfg.Endpoint
	if endpoint.AuthURL == "" && endpoint.TokenURL == "" {
		endpoint = oauthgithub.Endpoint
	}

	userInfoURL := cfg.UserInfoURL
	if userInfoURL == "" {
		userInfoURL = defaultUserInfoURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       strings.Fields(cfg.Scope),
			Endpoint:     endpoint,
		},
		userInfoURL: userInfoURL,
		httpClient:  httpClient,
	}, nil
}

// AuthCodeURL builds the provider authorization URL. The redirect_uri baked
// into the URL is the same one sent during ExchangeCode, which the provider
// requires to match.
func (c *Client) AuthCodeURL() string {
	v := url.Values{}
	v.Set("client_id", c.config.ClientID)
	v.Set("redirect_uri", c.config.RedirectURL)
	if len(c.config.Scopes) > 0 {
		v.Set("scope", strings.Join(c.config.Scopes, " "))
	}
	return c.config.Endpoint.AuthURL + "?" + v.Encode()
}

// ExchangeCode trades an authorization code for an access token via a
// server-to-server POST to the token endpoint.
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", errors.New("authorization code is required")
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			return "", fmt.Errorf("token endpoint returned %d: %s: %w",
				retrieveErr.Response.StatusCode, truncate(retrieveErr.Body), err)
		}
		return "", fmt.Errorf("exchange code for token: %w", err)
	}
	if token.AccessToken == "" {
		return "", errors.New("token response missing access token")
	}

	return token.AccessToken, nil
}

// FetchProfile retrieves the caller's profile from the user-info endpoint.
// Nullable fields come back as nil pointers and are not defaulted.
func (c *Client) FetchProfile(ctx context.Context, accessToken string) (domainauth.Identity, error) {
	if accessToken == "" {
		return domainauth.Identity{}, errors.New("access token is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userInfoURL, nil)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("fetch profile: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return domainauth.Identity{}, fmt.Errorf("profile endpoint returned %d: %s",
			resp.StatusCode, truncate(body))
	}

	var identity domainauth.Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return domainauth.Identity{}, fmt.Errorf("decode profile response: %w", err)
	}

	return identity, nil
}

// TimeoutClient returns an *http.Client with the given timeout, falling
// back to the adapter default when d is not positive.
func TimeoutClient(d time.Duration) *http.Client {
	if d <= 0 {
		d = defaultTimeout
	}
	return &http.Client{Timeout: d}
}

// truncate bounds an upstream response body for inclusion in error messages.
func truncate(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBodyBytes {
		return s[:maxErrorBodyBytes]
	}
	return s
}
