package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/restaurant-api/internal/api/metrics"
	"github.com/bistroboss/restaurant-api/internal/api/middleware"
	"github.com/bistroboss/restaurant-api/internal/core/domain"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

// PaymentHandler handles checkout and payment history.
type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// CreateIntent handles POST /create-payment-intent.
//
// @Summary      Create a payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      paymentIntentRequest  true  "Order total"
// @Success      200   {object}  paymentIntentResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req paymentIntentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	intent, err := h.service.CreateIntent(c.Request().Context(), req.Price)
	if err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.PaymentIntentsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, paymentIntentResponse{ClientSecret: intent.ClientSecret})
}

// Record handles POST /payments. Callers can only record their own payments.
//
// @Summary      Record a completed payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      paymentRequest  true  "Payment"
// @Success      200   {object}  paymentResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /payments [post]
func (h *PaymentHandler) Record(c echo.Context) error {
	email, err := principal(c)
	if err != nil {
		return err
	}
	var req paymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Email != email {
		return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
	}

	res, err := h.service.Record(c.Request().Context(), ports.RecordPaymentInput{
		Email:         req.Email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		Date:          req.Date,
		CartIDs:       req.CartIDs,
		MenuItemIDs:   req.MenuItemIDs,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicatePayment) {
			metrics.PaymentsRecordedTotal.WithLabelValues("duplicate").Inc()
		} else {
			metrics.PaymentsRecordedTotal.WithLabelValues("error").Inc()
		}
		return err
	}
	metrics.PaymentsRecordedTotal.WithLabelValues("ok").Inc()

	return c.JSON(http.StatusOK, paymentResponse{
		PaymentResult: insertResultResponse{InsertedID: res.InsertedID},
		DeleteResult:  deleteResultResponse{DeletedCount: res.DeletedCount},
	})
}

// History handles GET /payments/:email.
//
// @Summary      List the payments of a customer
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Customer email"
// @Success      200    {array}   domain.Payment
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /payments/{email} [get]
func (h *PaymentHandler) History(c echo.Context) error {
	email, err := middleware.PathParam(c, "email")
	if err != nil {
		return err
	}
	payments, err := h.service.History(c.Request().Context(), email)
	if err != nil {
		return err
	}
	if payments == nil {
		payments = []*domain.Payment{}
	}
	return c.JSON(http.StatusOK, payments)
}
