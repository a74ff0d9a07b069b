package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AccessCodeHeader carries the session's passphrase on protected endpoints.
const AccessCodeHeader = "X-Access-Code"

// Role names the two protected access levels. Customer endpoints (create
// order, token lookup) carry no role at all.
type Role string

const (
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

// RoleGate authorizes mutating operations by plain passphrase comparison,
// the venue's whole authentication scheme: one code for staff, one for the
// admin. The admin code also opens staff endpoints.
type RoleGate struct {
	staffCode string
	adminCode string
}

// NewRoleGate creates a gate over the two configured passphrases.
func NewRoleGate(staffCode, adminCode string) RoleGate {
	return RoleGate{
		staffCode: staffCode,
		adminCode: adminCode,
	}
}

// Require returns middleware rejecting requests whose access code does not
// open the given role.
func (g RoleGate) Require(role Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			code := ctx.Request().Header.Get(AccessCodeHeader)
			if !g.authorized(role, code) {
				return ctx.JSON(http.StatusForbidden, ErrorResponse{
					Code:    http.StatusForbidden,
					Message: "access code does not authorize this operation",
				})
			}
			return next(ctx)
		}
	}
}

func (g RoleGate) authorized(role Role, code string) bool {
	if code == "" {
		return false
	}

	switch role {
	case RoleStaff:
		return code == g.staffCode || code == g.adminCode
	case RoleAdmin:
		return code == g.adminCode
	default:
		return false
	}
}
