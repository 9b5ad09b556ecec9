package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"echo error", echo.NewHTTPError(http.StatusUnprocessableEntity, "price is required"), http.StatusUnprocessableEntity, "price is required"},
		{"expired token", domain.ErrTokenExpired, http.StatusUnauthorized, "unauthorized access"},
		{"forbidden", fmt.Errorf("check: %w", domain.ErrForbidden), http.StatusForbidden, "forbidden access"},
		{"invalid id", fmt.Errorf("delete user: %w", domain.ErrInvalidID), http.StatusBadRequest, "invalid identifier"},
		{"menu item missing", domain.ErrMenuItemNotFound, http.StatusNotFound, "menu item not found"},
		{"duplicate payment", fmt.Errorf("record payment: %w", domain.ErrDuplicatePayment), http.StatusConflict, "payment already recorded"},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusUnprocessableEntity, "amount must be greater than zero"},
		{"unexpected", errors.New("mongo: socket closed on 10.0.0.4"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if got := messageOf(t, rec); got != tc.msg {
				t.Fatalf("expected message %q, got %q", tc.msg, got)
			}
		})
	}
}

func TestHTTPErrorHandler_LogsThroughFallbackLogger(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		level string
	}{
		{"unexpected", errors.New("mongo: socket closed"), `"level":"error"`},
		{"rejected with cause", echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(errors.New("unexpected EOF")), `"level":"warn"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/payments", nil), rec)

			NewHTTPErrorHandler(zerolog.New(&buf))(tc.err, c)

			if !bytes.Contains(buf.Bytes(), []byte(tc.level)) {
				t.Fatalf("expected %s entry, got %q", tc.level, buf.String())
			}
			if bytes.Contains(rec.Body.Bytes(), []byte("socket")) || bytes.Contains(rec.Body.Bytes(), []byte("EOF")) {
				t.Fatalf("cause leaked to the client: %s", rec.Body.String())
			}
		})
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.String(http.StatusOK, "done")

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late"), c)

	if rec.Code != http.StatusOK || rec.Body.String() != "done" {
		t.Fatalf("committed response was overwritten: %d %q", rec.Code, rec.Body.String())
	}
}
