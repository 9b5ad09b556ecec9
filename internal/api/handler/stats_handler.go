package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/restaurant-api/internal/api/middleware"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

// StatsHandler serves the dashboard reports.
type StatsHandler struct {
	service ports.ReportingService
}

func NewStatsHandler(service ports.ReportingService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Summary handles GET /admin-stats.
//
// @Summary      Dashboard totals
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Summary
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin-stats [get]
func (h *StatsHandler) Summary(c echo.Context) error {
	summary, err := h.service.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// Categories handles GET /order-stats.
//
// @Summary      Sales by menu category
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.CategoryStat
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /order-stats [get]
func (h *StatsHandler) Categories(c echo.Context) error {
	stats, err := h.service.CategoryBreakdown(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// User handles GET /user-stats/:email.
//
// @Summary      Activity counts of a customer
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Customer email"
// @Success      200    {object}  domain.UserStats
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /user-stats/{email} [get]
func (h *StatsHandler) User(c echo.Context) error {
	email, err := middleware.PathParam(c, "email")
	if err != nil {
		return err
	}
	stats, err := h.service.UserStats(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
