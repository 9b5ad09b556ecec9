package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/restaurant-api/internal/api/metrics"
	"github.com/bistroboss/restaurant-api/internal/core/domain"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

const (
	claimsKey = "claims"
	emailKey  = "email"
)

// Authenticate verifies the bearer token and stores its claims in the context.
// Every failure yields the same 401 response.
func Authenticate(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return unauthorized("missing_token")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return unauthorized("bad_scheme")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return unauthorized(failureReason(err))
			}

			SetClaims(c, claims)
			return next(c)
		}
	}
}

// SetClaims attaches verified claims to the request.
func SetClaims(c echo.Context, claims *domain.Claims) {
	c.Set(claimsKey, claims)
	c.Set(emailKey, claims.Email)
}

// ClaimsFromContext returns the claims stored by Authenticate.
func ClaimsFromContext(c echo.Context) (*domain.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*domain.Claims)
	return claims, ok && claims != nil
}

// PrincipalEmail returns the authenticated email, or "" outside Authenticate.
func PrincipalEmail(c echo.Context) string {
	email, _ := c.Get(emailKey).(string)
	return email
}

func unauthorized(reason string) error {
	metrics.AuthFailuresTotal.WithLabelValues("authenticate", reason).Inc()
	return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUnauthorized.Error())
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenSignature):
		return "bad_signature"
	default:
		return "malformed"
	}
}
