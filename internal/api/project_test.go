package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full lifecycle through the HTTP surface: register, login, create, list,
// partial update, delete.
func TestProjectLifecycle(t *testing.T) {
	r := setupTestRouter(t)
	token := registerAndLogin(t, r, "alice", "pw1")

	// Create
	w := doJSON(t, r, http.MethodPost, "/api/projects", token, map[string]string{
		"title":       "X",
		"description": "Y",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["id"])

	// List
	w = doJSON(t, r, http.MethodGet, "/api/projects", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, float64(1), list[0]["id"])
	assert.Equal(t, "X", list[0]["title"])
	assert.Equal(t, "Y", list[0]["description"])

	// Partial update: only title changes
	w = doJSON(t, r, http.MethodPut, "/api/projects/1", token, map[string]string{
		"title": "Z",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/projects", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list = decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Z", list[0]["title"])
	assert.Equal(t, "Y", list[0]["description"])

	// Delete
	w = doJSON(t, r, http.MethodDelete, "/api/projects/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/projects", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))
}

func TestProjectRequiresAuth(t *testing.T) {
	r := setupTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/projects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/projects", "", map[string]string{
		"title":       "X",
		"description": "Y",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/projects/1", "garbage-token", map[string]string{
		"title": "Z",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProjectValidation(t *testing.T) {
	r := setupTestRouter(t)
	token := registerAndLogin(t, r, "alice", "pw1")

	w := doJSON(t, r, http.MethodPost, "/api/projects", token, map[string]string{
		"title": "X",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectOwnershipIsolation(t *testing.T) {
	r := setupTestRouter(t)
	aliceToken := registerAndLogin(t, r, "alice", "pw1")
	bobToken := registerAndLogin(t, r, "bob", "pw2")

	w := doJSON(t, r, http.MethodPost, "/api/projects", aliceToken, map[string]string{
		"title":       "X",
		"description": "Y",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Bob's list is empty
	w = doJSON(t, r, http.MethodGet, "/api/projects", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))

	// Bob cannot update or delete Alice's project
	w = doJSON(t, r, http.MethodPut, "/api/projects/1", bobToken, map[string]string{
		"title": "stolen",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/projects/1", bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Alice's record is intact
	w = doJSON(t, r, http.MethodGet, "/api/projects", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "X", list[0]["title"])
}

func TestProjectNotFound(t *testing.T) {
	r := setupTestRouter(t)
	token := registerAndLogin(t, r, "alice", "pw1")

	w := doJSON(t, r, http.MethodPut, "/api/projects/99", token, map[string]string{"title": "Z"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/projects/99", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/projects/abc", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
