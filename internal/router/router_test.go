package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"matchtrack/internal/auth"
	"matchtrack/internal/model"
)

const testSecret = "test-secret"

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = errorHandler

	guarded := e.Group("/guarded", jwtMiddleware(testSecret))
	guarded.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"ok": true})
	})

	admin := guarded.Group("/admin", requireAdmin)
	admin.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"ok": true})
	})

	return e
}

func issueToken(t *testing.T, role string) string {
	t.Helper()
	token, err := auth.NewTokenService(testSecret).Issue(1, "tester", role)
	assert.NoError(t, err)
	return token
}

func doRequest(e *echo.Echo, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTMiddleware(t *testing.T) {
	e := newTestEcho(t)

	tests := []struct {
		name         string
		token        string
		expectedCode int
	}{
		{name: "no token", token: "", expectedCode: http.StatusUnauthorized},
		{name: "garbage token", token: "not-a-token", expectedCode: http.StatusUnauthorized},
		{name: "token signed with another secret", token: mustSign(t, "other-secret"), expectedCode: http.StatusUnauthorized},
		{name: "valid token", token: issueToken(t, model.RoleUser), expectedCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, "/guarded", tt.token)
			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedCode == http.StatusUnauthorized {
				var body map[string]string
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "Unauthorized", body["error"])
			}
		})
	}
}

func mustSign(t *testing.T, secret string) string {
	t.Helper()
	token, err := auth.NewTokenService(secret).Issue(1, "tester", model.RoleUser)
	assert.NoError(t, err)
	return token
}

func TestRequireAdmin(t *testing.T) {
	e := newTestEcho(t)

	t.Run("user role is forbidden", func(t *testing.T) {
		rec := doRequest(e, "/guarded/admin", issueToken(t, model.RoleUser))
		assert.Equal(t, http.StatusForbidden, rec.Code)

		var body map[string]string
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Unauthorized - Admin only", body["error"])
		assert.Equal(t, "ADMIN_ONLY", body["code"])
	})

	t.Run("admin role passes", func(t *testing.T) {
		rec := doRequest(e, "/guarded/admin", issueToken(t, model.RoleAdmin))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("anonymous is unauthorized, not forbidden", func(t *testing.T) {
		rec := doRequest(e, "/guarded/admin", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestErrorHandler_UnmatchedRoute(t *testing.T) {
	e := newTestEcho(t)

	rec := doRequest(e, "/no-such-route", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Not Found", body["error"])
}
