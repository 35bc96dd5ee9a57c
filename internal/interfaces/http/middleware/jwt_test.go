package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yishaq/backend/internal/infrastructure/auth"
	"github.com/yishaq/backend/internal/infrastructure/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubSessionValidator struct {
	err error
}

func (s *stubSessionValidator) ValidateSession(context.Context, *auth.Claims) error {
	return s.err
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:          "test-secret-at-least-32-characters!!",
		TokenExpiration: time.Hour,
		Issuer:          "yishaq-backend",
	})
}

func issueToken(t *testing.T, svc *auth.JWTService, role string) string {
	t.Helper()
	issued, err := svc.GenerateToken(uuid.New(), "ana@example.com", role)
	require.NoError(t, err)
	return issued.Token
}

func runRequest(mw gin.HandlerFunc, authHeader string) (*httptest.ResponseRecorder, bool) {
	reached := false
	engine := gin.New()
	engine.GET("/protected", mw, func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w, reached
}

func TestRequireAuth(t *testing.T) {
	svc := newTestJWTService()
	sessions := &stubSessionValidator{}

	t.Run("valid token passes and claims are stored", func(t *testing.T) {
		token := issueToken(t, svc, "client")

		engine := gin.New()
		engine.GET("/protected", RequireAuth(svc, sessions), func(c *gin.Context) {
			assert.NotEmpty(t, GetJWTUserID(c))
			assert.Equal(t, "client", GetJWTRole(c))
			assert.NotNil(t, GetClaims(c))
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		w, reached := runRequest(RequireAuth(svc, sessions), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, reached)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		w, _ := runRequest(RequireAuth(svc, sessions), "Token abc123")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		w, _ := runRequest(RequireAuth(svc, sessions), "Bearer not.a.token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revoked session is rejected", func(t *testing.T) {
		revoked := &stubSessionValidator{err: auth.ErrTokenRevoked}
		token := issueToken(t, svc, "client")

		w, reached := runRequest(RequireAuth(svc, revoked), "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, reached)
	})
}

func TestOptionalAuth(t *testing.T) {
	svc := newTestJWTService()
	sessions := &stubSessionValidator{}

	t.Run("anonymous request passes without claims", func(t *testing.T) {
		engine := gin.New()
		engine.GET("/checkout", OptionalAuth(svc, sessions), func(c *gin.Context) {
			assert.Empty(t, GetJWTUserID(c))
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/checkout", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("valid token attaches claims", func(t *testing.T) {
		token := issueToken(t, svc, "client")

		engine := gin.New()
		engine.GET("/checkout", OptionalAuth(svc, sessions), func(c *gin.Context) {
			assert.NotEmpty(t, GetJWTUserID(c))
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/checkout", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid token is still rejected", func(t *testing.T) {
		w, reached := runRequest(OptionalAuth(svc, sessions), "Bearer garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, reached)
	})
}

func TestRequireAdmin(t *testing.T) {
	svc := newTestJWTService()
	sessions := &stubSessionValidator{}

	adminGate := func() gin.HandlerFunc { return RequireAdmin() }

	t.Run("admin role passes", func(t *testing.T) {
		token := issueToken(t, svc, "admin")

		engine := gin.New()
		engine.GET("/admin", RequireAuth(svc, sessions), adminGate(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("client role gets 403", func(t *testing.T) {
		token := issueToken(t, svc, "client")

		engine := gin.New()
		engine.GET("/admin", RequireAuth(svc, sessions), adminGate(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("no auth context gets 403", func(t *testing.T) {
		engine := gin.New()
		engine.GET("/admin", adminGate(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/admin", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
