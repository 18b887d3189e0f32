package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/showfolio/backend/internal/api"
	"github.com/showfolio/backend/internal/middleware"
	"github.com/showfolio/backend/internal/router"
	"github.com/showfolio/backend/internal/service"
	"github.com/showfolio/backend/internal/store"
	"github.com/showfolio/backend/internal/testhelpers"
)

// setupTestRouter builds the full application router over a fresh in-memory
// database, mirroring the wiring in cmd/api.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	authService := service.NewAuthService(db, "test-secret", time.Hour)
	portfolioService := service.NewPortfolioService(db)

	handlers := router.Handlers{
		Auth:       api.NewAuthHandler(authService),
		Project:    api.NewProjectHandler(portfolioService),
		Skill:      api.NewSkillHandler(portfolioService),
		Experience: api.NewExperienceHandler(portfolioService),
		Education:  api.NewEducationHandler(portfolioService),
		Movie:      api.NewMovieHandler(store.NewMovieStore()),
	}

	var noLimiter *middleware.RateLimiter
	return router.Setup(handlers, authService, noLimiter)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	reader := bytes.NewBuffer(nil)
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// registerAndLogin creates a user through the HTTP surface and returns a
// valid token for it.
func registerAndLogin(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()

	creds := map[string]string{"username": username, "password": password}

	w := doJSON(t, r, http.MethodPost, "/register", "", creds)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/login", "", creds)
	require.Equal(t, http.StatusOK, w.Code)

	token, ok := decodeBody(t, w)["token"].(string)
	require.True(t, ok, "login response missing token")
	return token
}
