package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/doramarin/wedding-rsvp/internal/core/domain"
)

// RBAC enforces role-based access control on the session set by Auth.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := SessionFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing session"})
			}
			if _, ok := allowed[sess.Role()]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// RequireGuest admits guest sessions only.
func RequireGuest() echo.MiddlewareFunc { return RBAC(domain.RoleGuest) }

// RequireAdmin admits admin sessions only.
func RequireAdmin() echo.MiddlewareFunc { return RBAC(domain.RoleAdmin) }
