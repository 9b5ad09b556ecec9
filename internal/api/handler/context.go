package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/restaurant-api/internal/api/middleware"
)

// principal returns the authenticated email. Routes that call it are mounted
// behind Authenticate, so an empty value means the middleware chain is wrong.
func principal(c echo.Context) (string, error) {
	email := middleware.PrincipalEmail(c)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
	}
	return email, nil
}
