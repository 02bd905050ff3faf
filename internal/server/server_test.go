package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootMetadata(t *testing.T) {
	_, app := newTestServer(t)

	status, body := doJSON(t, app, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "DressCircle API", body["message"])
	assert.Equal(t, "running", body["status"])
	assert.Contains(t, body["endpoints"].(map[string]any), "dresses")
}

func TestHealthCheckReflectsStores(t *testing.T) {
	_, app := newTestServer(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])

	db := body["database"].(map[string]any)
	assert.Equal(t, float64(0), db["users"])
	assert.Equal(t, float64(0), db["dresses"])

	token, _ := registerUser(t, app, "seller", "seller@example.com")
	listDress(t, app, token, nil)

	status, body = doJSON(t, app, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, status)
	db = body["database"].(map[string]any)
	assert.Equal(t, float64(1), db["users"])
	assert.Equal(t, float64(1), db["dresses"])
}

func TestUnknownEndpoint(t *testing.T) {
	_, app := newTestServer(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Endpoint not found", body["error"])
}

func TestHumanizeParam(t *testing.T) {
	assert.Equal(t, "ID", humanizeParam("id"))
	assert.Equal(t, "dress ID", humanizeParam("dressId"))
	assert.Equal(t, "user ID", humanizeParam("userId"))
}
