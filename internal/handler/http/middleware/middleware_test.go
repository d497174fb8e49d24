package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtected(t *testing.T, svc jwt.Service, permission user.Permission) http.Handler {
	t.Helper()
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFromContext(r.Context())
		require.True(t, ok)
		w.Header().Set("X-Caller", p.ID)
		w.WriteHeader(http.StatusNoContent)
	})
	return AuthRequired(svc)(RequirePermission(permission)(final))
}

func TestAuthRequired(t *testing.T) {
	svc, err := jwt.NewJWTService("middleware-test-secret", "1h")
	require.NoError(t, err)
	handler := newProtected(t, svc, user.PermissionLeaveApply)

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := jwt.NewJWTService("middleware-test-secret", "-1h")
		require.NoError(t, err)
		token, _, err := expired.GenerateAccessToken("user-1", "u@example.com", user.RoleUser)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, _, err := svc.GenerateAccessToken("user-1", "u@example.com", user.RoleUser)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "user-1", rec.Header().Get("X-Caller"))
	})
}

func TestRequirePermission(t *testing.T) {
	svc, err := jwt.NewJWTService("middleware-test-secret", "1h")
	require.NoError(t, err)
	handler := newProtected(t, svc, user.PermissionLeaveDecide)

	tests := []struct {
		role user.Role
		want int
	}{
		{user.RoleUser, http.StatusForbidden},
		{user.RoleAdmin, http.StatusForbidden},
		{user.RoleSuperAdmin, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			token, _, err := svc.GenerateAccessToken("id-"+string(tt.role), "x@example.com", tt.role)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPatch, "/", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
