package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Laboratory roles. Admin passes every role check.
const (
	RoleAdmin        = "admin"
	RoleManager      = "manager"
	RoleLabTech      = "lab_technician"
	RoleReceptionist = "receptionist"
	RoleAccountant   = "accountant"
)

// RequireRole restricts a route to the listed roles. Admin always passes.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := RoleFromContext(c.Request().Context())
			if role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if role == RoleAdmin {
				return next(c)
			}
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
			}
			return next(c)
		}
	}
}

// ValidRole reports whether r is one of the laboratory roles.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleLabTech, RoleReceptionist, RoleAccountant:
		return true
	}
	return false
}
