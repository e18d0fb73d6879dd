package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/nkshtr/CropIn/internal/model"
)

const testSecret = "test-secret"

func newProtectedServer(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()

	authed := e.Group("", Authenticate(testSecret))
	authed.GET("/me", func(c echo.Context) error {
		claims, err := CurrentClaims(c)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, claims)
	})

	admin := authed.Group("", RequireRole(model.RoleAdmin))
	admin.GET("/users", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	return e
}

func issueToken(t *testing.T, role model.Role) string {
	t.Helper()
	token, err := NewJWTService(testSecret).GenerateToken(uuid.New(), role)
	assert.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	e := newProtectedServer(t)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "header without bearer scheme", authHeader: "Basic abc123", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer junk", wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", authHeader: "Bearer " + wrongSecretToken(t), wantStatus: http.StatusUnauthorized},
		{name: "valid farmer token", authHeader: "Bearer " + issueToken(t, model.RoleFarmer), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.authHeader != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authHeader)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	e := newProtectedServer(t)

	tests := []struct {
		name       string
		role       model.Role
		wantStatus int
	}{
		{name: "farmer is forbidden", role: model.RoleFarmer, wantStatus: http.StatusForbidden},
		{name: "user is forbidden", role: model.RoleUser, wantStatus: http.StatusForbidden},
		{name: "admin is allowed", role: model.RoleAdmin, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+issueToken(t, tt.role))
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func wrongSecretToken(t *testing.T) string {
	t.Helper()
	token, err := NewJWTService("other-secret").GenerateToken(uuid.New(), model.RoleAdmin)
	assert.NoError(t, err)
	return token
}
