package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/souqly/marketplace-api/internal/api/handler"
	"github.com/souqly/marketplace-api/internal/api/metrics"
	"github.com/souqly/marketplace-api/internal/core/domain"
)

// RBAC enforces role-based access control. It must run after the
// signed-token Authenticate middleware.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := handler.ClaimsFrom(c)
			if !ok {
				return domain.ErrAuthMissing
			}
			if _, ok := allowed[claims.Role]; !ok {
				metrics.ObserveAuthorization(domain.ErrForbidden)
				return domain.ErrForbidden
			}
			metrics.ObserveAuthorization(nil)
			return next(c)
		}
	}
}
