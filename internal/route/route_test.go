package route

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsbangla24/portal/config"
	"newsbangla24/portal/internal/app"
	"newsbangla24/portal/internal/testutils"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.AppConfig{
		Server:      config.ServerConfig{Mode: "debug"},
		JWT:         config.JWTConfig{Secret: "test-secret"},
		Session:     config.SessionConfig{TTL: time.Hour},
		Media:       config.MediaConfig{Dir: t.TempDir(), URLPrefix: "/uploads", MaxSizeMB: 1},
		RateLimit:   config.RateLimitConfig{LoginPerMinute: 10, LoginBurst: 5},
		FrontendURL: "http://localhost:3000",
		SiteURL:     "http://localhost:3000",
	}
	return SetupRouter(app.New(cfg, nil))
}

func TestSetupRouter_Infrastructure(t *testing.T) {
	r := newTestRouter(t)

	w := testutils.DoJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = testutils.DoJSON(t, r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")

	w = testutils.DoJSON(t, r, http.MethodGet, "/health", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSetupRouter_ProtectedRoutesRequireSession(t *testing.T) {
	r := newTestRouter(t)

	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/v1/auth/me"},
		{http.MethodGet, "/api/v1/me/bookmarks"},
		{http.MethodGet, "/api/v1/reporter/articles"},
		{http.MethodGet, "/api/v1/reporter/media"},
		{http.MethodGet, "/api/v1/reporter/analytics"},
		{http.MethodGet, "/api/v1/admin/articles"},
		{http.MethodGet, "/api/v1/admin/comments"},
		{http.MethodGet, "/api/v1/admin/categories"},
		{http.MethodGet, "/api/v1/admin/users"},
		{http.MethodGet, "/api/v1/admin/analytics"},
		{http.MethodGet, "/api/v1/notifications"},
	}
	for _, p := range paths {
		w := testutils.DoJSON(t, r, p.method, p.path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", p.method, p.path)
	}
}

func TestSetupRouter_CORS(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/articles", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := testutils.Serve(r, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
