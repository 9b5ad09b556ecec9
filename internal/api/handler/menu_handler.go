package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

// MenuHandler handles HTTP requests for the menu.
type MenuHandler struct {
	service ports.MenuService
}

func NewMenuHandler(service ports.MenuService) *MenuHandler {
	return &MenuHandler{service: service}
}

// List handles GET /menu.
//
// @Summary      List menu items
// @Tags         menu
// @Produce      json
// @Success      200  {array}  domain.MenuItem
// @Router       /menu [get]
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Names handles GET /menu-names.
//
// @Summary      List menu item names
// @Tags         menu
// @Produce      json
// @Success      200  {array}  menuNameResponse
// @Router       /menu-names [get]
func (h *MenuHandler) Names(c echo.Context) error {
	names, err := h.service.Names(c.Request().Context())
	if err != nil {
		return err
	}
	resp := make([]menuNameResponse, 0, len(names))
	for _, n := range names {
		resp = append(resp, menuNameResponse{Name: n})
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /menu/:id.
//
// @Summary      Get a menu item
// @Tags         menu
// @Produce      json
// @Param        id   path      string  true  "Menu item id"
// @Success      200  {object}  domain.MenuItem
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /menu/{id} [get]
func (h *MenuHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /menu.
//
// @Summary      Add a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      menuItemRequest  true  "Menu item"
// @Success      201   {object}  insertResultResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /menu [post]
func (h *MenuHandler) Create(c echo.Context) error {
	var req menuItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	id, err := h.service.Create(c.Request().Context(), toMenuItemInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, insertResultResponse{InsertedID: id})
}

// Update handles PATCH /menu/:id.
//
// @Summary      Update a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Menu item id"
// @Param        body  body      menuItemRequest  true  "Menu item"
// @Success      200   {object}  updateResultResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /menu/{id} [patch]
func (h *MenuHandler) Update(c echo.Context) error {
	var req menuItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	res, err := h.service.Update(c.Request().Context(), c.Param("id"), toMenuItemInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updateResultResponse{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	})
}

// Delete handles DELETE /menu/:id.
//
// @Summary      Delete a menu item
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Menu item id"
// @Success      200  {object}  deleteResultResponse
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /menu/{id} [delete]
func (h *MenuHandler) Delete(c echo.Context) error {
	n, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteResultResponse{DeletedCount: n})
}

func toMenuItemInput(req menuItemRequest) ports.MenuItemInput {
	return ports.MenuItemInput{
		Name:     req.Name,
		Recipe:   req.Recipe,
		Image:    req.Image,
		Category: req.Category,
		Price:    req.Price,
	}
}
