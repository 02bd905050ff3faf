package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dresscircle/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	_, app := newTestServer(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "User registered successfully", body["message"])
	assert.NotEmpty(t, body["token"])

	user := body["user"].(map[string]any)
	assert.Equal(t, "testuser", user["username"])
	assert.Equal(t, float64(100), user["buttons"])
}

func TestRegisterValidation(t *testing.T) {
	_, app := newTestServer(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"Missing Fields", map[string]string{"username": "testuser"}},
		{"Bad Email", map[string]string{"username": "testuser", "email": "not-an-email", "password": "password123"}},
		{"Short Password", map[string]string{"username": "testuser", "email": "test@example.com", "password": "short"}},
		{"Short Username", map[string]string{"username": "tu", "email": "test@example.com", "password": "password123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
		})
	}
}

func TestRegisterDuplicates(t *testing.T) {
	_, app := newTestServer(t)
	registerUser(t, app, "testuser", "test@example.com")

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "otheruser",
		"email":    "test@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Email already registered", body["error"])

	status, body = doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "testuser",
		"email":    "other@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Username taken", body["error"])
}

func TestLogin(t *testing.T) {
	_, app := newTestServer(t)
	registerUser(t, app, "testuser", "test@example.com")

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "test@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Login successful", body["message"])
	assert.NotEmpty(t, body["token"])

	user := body["user"].(map[string]any)
	assert.Equal(t, "testuser", user["username"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	_, app := newTestServer(t)
	registerUser(t, app, "testuser", "test@example.com")

	// Unknown email and wrong password get identical responses.
	for _, creds := range []map[string]string{
		{"email": "nobody@example.com", "password": "password123"},
		{"email": "test@example.com", "password": "wrongpass"},
	} {
		status, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", creds)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Invalid credentials", body["error"])
	}
}

func TestMe(t *testing.T) {
	_, app := newTestServer(t)
	token, _ := registerUser(t, app, "testuser", "test@example.com")

	status, body := doJSON(t, app, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "testuser", body["username"])
	assert.Equal(t, float64(100), body["buttons"])
	assert.NotContains(t, body, "password")
}

func TestMeAuthFailures(t *testing.T) {
	_, app := newTestServer(t)

	// Missing header
	status, _ := doJSON(t, app, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	// Garbage token
	status, _ = doJSON(t, app, http.MethodGet, "/api/auth/me", "not-a-token", nil)
	assert.Equal(t, http.StatusForbidden, status)

	// Malformed header
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTokenRoundTrip(t *testing.T) {
	s, app := newTestServer(t)
	token, userID := registerUser(t, app, "testuser", "test@example.com")

	identity, err := middleware.VerifyToken(s.config.JWTSecret, token)
	require.NoError(t, err)
	assert.Equal(t, userID, identity.ID)
	assert.Equal(t, "testuser", identity.Username)
}
