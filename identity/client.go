package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

const (
	profilePath = "/api/profile"
	loginPath   = "/api/login"
)

// Client is the HTTP implementation of Gateway, talking to the dashboard
// backend API.
type Client struct {
	baseURL string
	base    *http.Client
	log     zerolog.Logger
}

// NewClient creates a gateway client for the backend at baseURL.
func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		base:    &http.Client{Timeout: 15 * time.Second},
		log:     log,
	}
}

var _ Gateway = (*Client)(nil)

// FetchProfile implements Gateway. The bearer token, when present, rides on
// an oauth2 static token source so the Authorization header is handled by
// the transport rather than by hand.
func (c *Client) FetchProfile(ctx context.Context, token string) (Profile, error) {
	httpClient := c.base
	if token != "" {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.base)
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+profilePath, nil)
	if err != nil {
		return Profile{}, &NetworkError{Message: "building profile request", Cause: err}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return Profile{}, &NetworkError{Message: "identity gateway unreachable", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return Profile{}, &AuthError{Message: errorMessage(resp.Body, resp.Status)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Profile{}, &NetworkError{Message: errorMessage(resp.Body, resp.Status)}
	}

	var payload struct {
		UserName   string            `json:"username"`
		Navigation []NavigationEntry `json:"clientNavigation"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Profile{}, &NetworkError{Message: "decoding profile response", Cause: err}
	}

	c.log.Debug().Str("user", payload.UserName).Int("entries", len(payload.Navigation)).Msg("profile fetched")
	return Profile{UserName: payload.UserName, Navigation: payload.Navigation}, nil
}

// Login implements Gateway.
func (c *Client) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return LoginResult{}, &NetworkError{Message: "encoding login request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, bytes.NewReader(body))
	if err != nil {
		return LoginResult{}, &NetworkError{Message: "building login request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.base.Do(req)
	if err != nil {
		return LoginResult{}, &NetworkError{Message: "identity gateway unreachable", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return LoginResult{}, &AuthError{Message: errorMessage(resp.Body, resp.Status)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return LoginResult{}, &NetworkError{Message: errorMessage(resp.Body, resp.Status)}
	}

	var payload struct {
		Token    string `json:"token"`
		UserName string `json:"username"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return LoginResult{}, &NetworkError{Message: "decoding login response", Cause: err}
	}
	if payload.Token == "" {
		return LoginResult{}, &NetworkError{Message: "login response missing token"}
	}
	return LoginResult{Token: payload.Token, UserName: payload.UserName}, nil
}

// errorMessage extracts the backend's message field from an error body,
// falling back to the HTTP status. Bodies may be JSON or plain text.
func errorMessage(body io.Reader, status string) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return status
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return status
	}
	return fmt.Sprintf("%s: %s", status, text)
}
