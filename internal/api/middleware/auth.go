package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/genworx/product-service/internal/api/metrics"
	"github.com/genworx/product-service/internal/core/auth"
	"github.com/genworx/product-service/internal/core/domain"
)

// Context keys populated by Authenticate.
const (
	ContextUser   = "user"
	ContextClaims = "claims"
)

// Authenticate validates the bearer token and resolves the subject to a
// stored user, injecting both into the request context. Every rejection
// renders the same generic 401; the internal reason goes to metrics only.
func Authenticate(verifier *auth.Verifier, resolver *auth.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
				return err
			}

			user, err := resolver.Resolve(c.Request().Context(), claims.UserID)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
				return err
			}

			c.Set(ContextUser, user)
			c.Set(ContextClaims, claims)

			return next(c)
		}
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidSubject):
		return "invalid_subject"
	case errors.Is(err, domain.ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, domain.ErrLookupFailed):
		return "lookup_failed"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	default:
		return "invalid_token"
	}
}
