package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/genworx/product-service/internal/api/metrics"
	"github.com/genworx/product-service/internal/core/auth"
	"github.com/genworx/product-service/internal/core/domain"
)

// RequireRole gates a route on the resolved user's stored role. It must run
// after Authenticate; a missing user means the chain is miswired and the
// request is rejected as forbidden.
func RequireRole(role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := c.Get(ContextUser).(*domain.User)
			if _, err := auth.Require(user, role); err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return err
			}
			return next(c)
		}
	}
}
