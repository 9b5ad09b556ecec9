package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

// ReviewHandler handles customer reviews.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// List handles GET /reviews.
//
// @Summary      List reviews
// @Tags         reviews
// @Produce      json
// @Success      200  {array}  domain.Review
// @Router       /reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// Create handles POST /reviews.
//
// @Summary      Post a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body      reviewRequest  true  "Review"
// @Success      201   {object}  insertResultResponse
// @Failure      422   {object}  errorResponse
// @Router       /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var req reviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	id, err := h.service.Create(c.Request().Context(), ports.ReviewInput{
		Name:    req.Name,
		User:    req.User,
		Details: req.Details,
		Rating:  req.Rating,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, insertResultResponse{InsertedID: id})
}

// BookingHandler handles table reservations.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// List handles GET /bookings.
//
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Success      200  {array}  domain.Booking
// @Router       /bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// Create handles POST /bookings. The booking is made for the caller.
//
// @Summary      Book a table
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookingRequest  true  "Booking"
// @Success      201   {object}  insertResultResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	email, err := principal(c)
	if err != nil {
		return err
	}
	var req bookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	id, err := h.service.Create(c.Request().Context(), ports.BookingInput{
		Email:  email,
		Name:   req.Name,
		Phone:  req.Phone,
		Date:   req.Date,
		Guests: req.Guests,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, insertResultResponse{InsertedID: id})
}

// CartHandler handles cart items.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// List handles GET /carts?email=.
//
// @Summary      List the cart of a customer
// @Tags         carts
// @Produce      json
// @Param        email  query     string  true  "Customer email"
// @Success      200    {array}   domain.CartItem
// @Router       /carts [get]
func (h *CartHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Add handles POST /carts.
//
// @Summary      Add an item to a cart
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        body  body      cartItemRequest  true  "Cart item"
// @Success      201   {object}  insertResultResponse
// @Failure      422   {object}  errorResponse
// @Router       /carts [post]
func (h *CartHandler) Add(c echo.Context) error {
	var req cartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	id, err := h.service.Add(c.Request().Context(), ports.CartItemInput{
		MenuID: req.MenuID,
		Email:  req.Email,
		Name:   req.Name,
		Image:  req.Image,
		Price:  req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, insertResultResponse{InsertedID: id})
}

// Remove handles DELETE /carts/:id.
//
// @Summary      Remove an item from a cart
// @Tags         carts
// @Produce      json
// @Param        id   path      string  true  "Cart item id"
// @Success      200  {object}  deleteResultResponse
// @Failure      400  {object}  errorResponse
// @Router       /carts/{id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	n, err := h.service.Remove(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteResultResponse{DeletedCount: n})
}
