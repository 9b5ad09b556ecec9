package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/restaurant-api/internal/api/metrics"
	"github.com/bistroboss/restaurant-api/internal/core/domain"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

// RequireAdmin lets the request through only when the authenticated user's
// record carries the admin role. Must run after Authenticate.
func RequireAdmin(roles ports.RoleStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := isAdmin(c, roles)
			if err != nil {
				return err
			}
			if !ok {
				return forbidden("not_admin")
			}
			return next(c)
		}
	}
}

// RequireSelf lets the request through only when the authenticated email
// equals the path parameter param.
func RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			self, err := isSelf(c, param)
			if err != nil {
				return err
			}
			if !self {
				return forbidden("not_owner")
			}
			return next(c)
		}
	}
}

// RequireSelfOrAdmin accepts the owner of param and falls back to the admin
// check for everyone else.
func RequireSelfOrAdmin(param string, roles ports.RoleStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			self, err := isSelf(c, param)
			if err != nil {
				return err
			}
			if self {
				return next(c)
			}
			ok, err := isAdmin(c, roles)
			if err != nil {
				return err
			}
			if !ok {
				return forbidden("not_owner")
			}
			return next(c)
		}
	}
}

// PathParam returns the decoded value of the path parameter name. Clients
// percent-encode emails (alice%40example.com) and the router keeps the raw form.
func PathParam(c echo.Context, name string) (string, error) {
	v, err := url.PathUnescape(c.Param(name))
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid path parameter "+name)
	}
	return v, nil
}

func isSelf(c echo.Context, param string) (bool, error) {
	target, err := PathParam(c, param)
	if err != nil {
		return false, err
	}
	email := PrincipalEmail(c)
	return email != "" && email == target, nil
}

func isAdmin(c echo.Context, roles ports.RoleStore) (bool, error) {
	email := PrincipalEmail(c)
	if email == "" {
		metrics.AuthFailuresTotal.WithLabelValues("authorize", "no_principal").Inc()
		return false, echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUnauthorized.Error())
	}

	user, err := roles.FindByEmail(c.Request().Context(), email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("resolve role for %s: %w", email, err)
	}
	return user.IsAdmin(), nil
}

func forbidden(reason string) error {
	metrics.AuthFailuresTotal.WithLabelValues("authorize", reason).Inc()
	return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
}
