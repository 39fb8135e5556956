package stubapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Trading-auto-pilot/astra-web-sub001/identity"
	"github.com/Trading-auto-pilot/astra-web-sub001/stubapi"
)

func setupBackend(t *testing.T) *httptest.Server {
	t.Helper()

	ana, err := stubapi.SeedUser("ana@example.com", "ana", "password123", []identity.NavigationEntry{
		{Page: "dashboard", Label: "Dashboard", Order: 1},
	})
	require.NoError(t, err)

	srv := stubapi.New([]byte("test-secret"), []stubapi.User{ana}, zerolog.Nop())
	backend := httptest.NewServer(srv)
	t.Cleanup(backend.Close)
	return backend
}

func login(t *testing.T, backend *httptest.Server, email, password string) *http.Response {
	t.Helper()
	body, err := json.Marshal(identity.Credentials{Email: email, Password: password})
	require.NoError(t, err)
	resp, err := http.Post(backend.URL+"/api/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func TestLoginAndProfile(t *testing.T) {
	backend := setupBackend(t)

	resp := login(t, backend, "ana@example.com", "password123")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginPayload struct {
		Token    string `json:"token"`
		UserName string `json:"username"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginPayload))
	assert.Equal(t, "ana", loginPayload.UserName)
	require.NotEmpty(t, loginPayload.Token)

	req, err := http.NewRequest(http.MethodGet, backend.URL+"/api/profile", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+loginPayload.Token)

	profileResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer profileResp.Body.Close()
	require.Equal(t, http.StatusOK, profileResp.StatusCode)

	var profilePayload struct {
		UserName   string                     `json:"username"`
		Navigation []identity.NavigationEntry `json:"clientNavigation"`
	}
	require.NoError(t, json.NewDecoder(profileResp.Body).Decode(&profilePayload))
	assert.Equal(t, "ana", profilePayload.UserName)
	require.Len(t, profilePayload.Navigation, 1)
	assert.Equal(t, "dashboard", profilePayload.Navigation[0].Page)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	backend := setupBackend(t)

	resp := login(t, backend, "ana@example.com", "wrong")
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var payload struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "invalid credentials", payload.Message)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	backend := setupBackend(t)

	resp := login(t, backend, "nobody@example.com", "password123")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProfileRequiresToken(t *testing.T) {
	backend := setupBackend(t)

	resp, err := http.Get(backend.URL + "/api/profile")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProfileRejectsForgedToken(t *testing.T) {
	backend := setupBackend(t)

	req, err := http.NewRequest(http.MethodGet, backend.URL+"/api/profile", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer not-a-real-token")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
