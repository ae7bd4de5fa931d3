package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hr-backoffice/internal/middleware"
	"hr-backoffice/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func newAuthRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{middleware.AuthMiddleware(testSecret)}, handlers...)
	chain = append(chain, func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetActorID(c.Request.Context()))
	})
	r.GET("/me", chain...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	employeeID := "0d0f3b1e-5d8c-4ad0-9a0c-2e9f7e6f8a11"

	t.Run("success", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"employee_id": employeeID,
			"role":        middleware.RoleEmployee,
			"exp":         time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		newAuthRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, employeeID, w.Body.String())
	})

	t.Run("success - cookie", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"employee_id": employeeID})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		w := httptest.NewRecorder()

		newAuthRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative - missing token", func(t *testing.T) {
		w := httptest.NewRecorder()

		newAuthRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token not found")
	})

	t.Run("negative - expired token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"employee_id": employeeID,
			"exp":         time.Now().Add(-time.Minute).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		newAuthRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token expired")
	})

	t.Run("negative - wrong secret", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"employee_id": employeeID}).SignedString([]byte("other"))
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		newAuthRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("negative - no employee claim", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"role": middleware.RoleHRAdmin})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		newAuthRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRoleMiddleware(t *testing.T) {
	approverOnly := middleware.RoleMiddleware(middleware.RoleManager, middleware.RoleHRAdmin)

	t.Run("success", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"employee_id": "e1", "role": middleware.RoleManager})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		newAuthRouter(approverOnly).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative - employee cannot decide", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"employee_id": "e1", "role": middleware.RoleEmployee})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		newAuthRouter(approverOnly).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
