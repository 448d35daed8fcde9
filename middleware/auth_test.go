package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NailaFatima/stylehub-go/models"
	"github.com/NailaFatima/stylehub-go/utils"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newGuardedEcho() *echo.Echo {
	e := echo.New()
	ok := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
	adm := e.Group("/admin")
	adm.Use(AdminAuthMiddleware(testSecret))
	adm.GET("/products", ok, RequirePermission("products"))
	adm.GET("/orders", ok, RequirePermission("orders"))
	return e
}

func get(e *echo.Echo, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestMissingAuthorizationHeader(t *testing.T) {
	rec := get(newGuardedEcho(), "/admin/products", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMalformedAuthorizationHeader(t *testing.T) {
	e := newGuardedEcho()
	req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInvalidToken(t *testing.T) {
	rec := get(newGuardedEcho(), "/admin/products", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := utils.GenerateToken("admin", models.RoleSuperAdmin, "other-secret")
	require.NoError(t, err)

	rec := get(newGuardedEcho(), "/admin/products", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSuperAdminPassesEveryPermission(t *testing.T) {
	token, err := utils.GenerateToken("admin", models.RoleSuperAdmin, testSecret)
	require.NoError(t, err)

	e := newGuardedEcho()
	assert.Equal(t, http.StatusOK, get(e, "/admin/products", token).Code)
	assert.Equal(t, http.StatusOK, get(e, "/admin/orders", token).Code)
}

func TestStaffDeniedOutsidePermissionSet(t *testing.T) {
	token, err := utils.GenerateToken("clerk", models.RoleStaff, testSecret)
	require.NoError(t, err)

	e := newGuardedEcho()
	assert.Equal(t, http.StatusForbidden, get(e, "/admin/products", token).Code)
	assert.Equal(t, http.StatusOK, get(e, "/admin/orders", token).Code)
}
