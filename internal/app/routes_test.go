package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ibradi0157/mon-blog/internal/config"
	"github.com/ibradi0157/mon-blog/internal/legal/repository"
	"github.com/ibradi0157/mon-blog/internal/legal/service"
	"github.com/ibradi0157/mon-blog/internal/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routesSecret = "routes-test-secret-0123456789abcdef"

func init() {
	gin.SetMode(gin.TestMode)
}

func adminToken(t *testing.T, sub string) string {
	t.Helper()
	tok, err := tokens.GenerateAccessToken(routesSecret, tokens.Subject{Sub: sub, Roles: []string{"admin"}}, time.Minute)
	require.NoError(t, err)
	return tok
}

func call(r *gin.Engine, path, bearer string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRegisterLegalRoutes_AdminLimitedPerSubject(t *testing.T) {
	limit := RateLimiter(config.RateLimitConfig{Enabled: true, RPS: 0.01, Burst: 1}, nil)
	require.NotNil(t, limit)

	r := gin.New()
	RegisterLegalRoutes(r, service.New(repository.NewMemoryRepo()), tokens.NewHMACVerifier(routesSecret), "admin", limit)

	alice, bob := adminToken(t, "alice"), adminToken(t, "bob")
	require.Equal(t, http.StatusOK, call(r, "/api/admin/legal-pages", alice))
	require.Equal(t, http.StatusTooManyRequests, call(r, "/api/admin/legal-pages", alice))

	// same client IP, different subject
	require.Equal(t, http.StatusOK, call(r, "/api/admin/legal-pages", bob))

	// public callers are keyed by IP, separately from admin subjects
	require.Equal(t, http.StatusOK, call(r, "/api/legal-pages", ""))
	require.Equal(t, http.StatusTooManyRequests, call(r, "/api/legal-pages", ""))
}

func TestRegisterLegalRoutes_UnauthenticatedNotCounted(t *testing.T) {
	limit := RateLimiter(config.RateLimitConfig{Enabled: true, RPS: 0.01, Burst: 1}, nil)
	r := gin.New()
	RegisterLegalRoutes(r, service.New(repository.NewMemoryRepo()), tokens.NewHMACVerifier(routesSecret), "admin", limit)

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusUnauthorized, call(r, "/api/admin/legal-pages", ""))
	}
	assert.Equal(t, http.StatusOK, call(r, "/api/admin/legal-pages", adminToken(t, "carol")))
}

func TestRegisterLegalRoutes_NoVerifierNoAdmin(t *testing.T) {
	r := gin.New()
	RegisterLegalRoutes(r, service.New(repository.NewMemoryRepo()), nil, "admin", nil)

	assert.Equal(t, http.StatusOK, call(r, "/api/legal-pages", ""))
	assert.Equal(t, http.StatusNotFound, call(r, "/api/admin/legal-pages", adminToken(t, "alice")))
}

func TestRateLimiter_Disabled(t *testing.T) {
	assert.Nil(t, RateLimiter(config.RateLimitConfig{RPS: 5, Burst: 10}, nil))
}
