package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callGated(t *testing.T, role Role, code string) int {
	t.Helper()
	gate := NewRoleGate("staff-code", "admin-code")

	e := echo.New()
	handler := gate.Require(role)(func(ctx echo.Context) error {
		return ctx.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if code != "" {
		req.Header.Set(AccessCodeHeader, code)
	}
	rec := httptest.NewRecorder()

	err := handler(e.NewContext(req, rec))
	require.NoError(t, err)
	return rec.Code
}

func TestRoleGate(t *testing.T) {
	t.Run("staff code opens staff endpoints", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, callGated(t, RoleStaff, "staff-code"))
	})

	t.Run("admin code opens staff and admin endpoints", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, callGated(t, RoleStaff, "admin-code"))
		assert.Equal(t, http.StatusNoContent, callGated(t, RoleAdmin, "admin-code"))
	})

	t.Run("staff code does not open admin endpoints", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, callGated(t, RoleAdmin, "staff-code"))
	})

	t.Run("wrong or missing code is rejected", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, callGated(t, RoleStaff, "nope"))
		assert.Equal(t, http.StatusForbidden, callGated(t, RoleStaff, ""))
		assert.Equal(t, http.StatusForbidden, callGated(t, RoleAdmin, ""))
	})
}
