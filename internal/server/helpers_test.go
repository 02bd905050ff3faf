package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"dresscircle/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// newTestServer builds a server over fresh in-memory stores with no Redis.
func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()
	cfg := &config.Config{
		JWTSecret: "test_secret",
		Port:      "8399",
		Env:       "test",
	}
	s, err := NewServerWithDeps(cfg, nil)
	require.NoError(t, err)
	return s, s.App()
}

// doJSON performs a JSON request against the app and decodes the response
// body into a generic map.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp.StatusCode, decoded
}

// registerUser creates an account through the API and returns its token
// and user ID.
func registerUser(t *testing.T, app *fiber.App, username, email string) (string, uint) {
	t.Helper()

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, status)

	token, ok := body["token"].(string)
	require.True(t, ok, "token missing in register response")
	user := body["user"].(map[string]any)
	return token, uint(user["id"].(float64))
}

// listDress creates a listing through the API and returns its ID.
func listDress(t *testing.T, app *fiber.App, token string, overrides map[string]any) uint {
	t.Helper()

	payload := map[string]any{
		"brand":        "Reformation",
		"title":        "Silk Midi Dress",
		"buttonsPrice": 85,
	}
	for k, v := range overrides {
		payload[k] = v
	}

	status, body := doJSON(t, app, http.MethodPost, "/api/dresses", token, payload)
	require.Equal(t, http.StatusCreated, status)
	dress := body["dress"].(map[string]any)
	return uint(dress["id"].(float64))
}
