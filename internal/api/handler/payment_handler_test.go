package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

type stubPaymentService struct {
	recorded []ports.RecordPaymentInput
	recordFn func(in ports.RecordPaymentInput) (*ports.RecordPaymentResult, error)
	history  []*domain.Payment
}

func (s *stubPaymentService) CreateIntent(ctx context.Context, price float64) (*domain.PaymentIntent, error) {
	return &domain.PaymentIntent{ClientSecret: "cs_test", AmountCents: int64(price * 100), Currency: "usd"}, nil
}

func (s *stubPaymentService) Record(ctx context.Context, in ports.RecordPaymentInput) (*ports.RecordPaymentResult, error) {
	s.recorded = append(s.recorded, in)
	if s.recordFn != nil {
		return s.recordFn(in)
	}
	return &ports.RecordPaymentResult{InsertedID: "p1", DeletedCount: int64(len(in.CartIDs))}, nil
}

func (s *stubPaymentService) History(ctx context.Context, email string) ([]*domain.Payment, error) {
	return s.history, nil
}

const paymentBody = `{
	"email": "alice@example.com",
	"price": 24.5,
	"transactionId": "txn_123",
	"date": "2026-01-02T15:04:05Z",
	"cartIds": ["665f1c2ab3e4d5f6a7b8c9d0", "665f1c2ab3e4d5f6a7b8c9d1"],
	"menuItemIds": ["665f1c2ab3e4d5f6a7b8c9e0"]
}`

func TestPaymentHandler_Record(t *testing.T) {
	e := newEcho()
	svc := &stubPaymentService{}
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/payments", paymentBody), rec)
	asAuthenticated(c, "alice@example.com")

	if err := NewPaymentHandler(svc).Record(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decode[paymentResponse](t, rec)
	if resp.PaymentResult.InsertedID != "p1" || resp.DeleteResult.DeletedCount != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(svc.recorded) != 1 || svc.recorded[0].TransactionID != "txn_123" || svc.recorded[0].Date.IsZero() {
		t.Fatalf("unexpected input: %+v", svc.recorded)
	}
}

func TestPaymentHandler_Record_OtherUsersEmail(t *testing.T) {
	e := newEcho()
	svc := &stubPaymentService{}
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/payments", paymentBody), rec)
	asAuthenticated(c, "mallory@example.com")

	err := NewPaymentHandler(svc).Record(c)
	if got := statusOf(t, e, c, rec, err); got != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", got)
	}
	if len(svc.recorded) != 0 {
		t.Fatalf("payment should not be recorded")
	}
}

func TestPaymentHandler_Record_Unauthenticated(t *testing.T) {
	e := newEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/payments", paymentBody), rec)

	err := NewPaymentHandler(&stubPaymentService{}).Record(c)
	if got := statusOf(t, e, c, rec, err); got != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", got)
	}
}

func TestPaymentHandler_Record_InvalidCartID(t *testing.T) {
	e := newEcho()
	svc := &stubPaymentService{}
	rec := httptest.NewRecorder()
	body := `{"email":"alice@example.com","price":10,"transactionId":"t","cartIds":["nope"]}`
	c := e.NewContext(jsonRequest(http.MethodPost, "/payments", body), rec)
	asAuthenticated(c, "alice@example.com")

	err := NewPaymentHandler(svc).Record(c)
	if got := statusOf(t, e, c, rec, err); got != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", got)
	}
	if len(svc.recorded) != 0 {
		t.Fatalf("payment should not be recorded")
	}
}

func TestPaymentHandler_Record_Duplicate(t *testing.T) {
	e := newEcho()
	svc := &stubPaymentService{recordFn: func(in ports.RecordPaymentInput) (*ports.RecordPaymentResult, error) {
		return nil, domain.ErrDuplicatePayment
	}}
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/payments", paymentBody), rec)
	asAuthenticated(c, "alice@example.com")

	err := NewPaymentHandler(svc).Record(c)
	if !errors.Is(err, domain.ErrDuplicatePayment) {
		t.Fatalf("expected ErrDuplicatePayment, got %v", err)
	}
}

func TestPaymentHandler_CreateIntent(t *testing.T) {
	e := newEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/create-payment-intent", `{"price":19.99}`), rec)

	if err := NewPaymentHandler(&stubPaymentService{}).CreateIntent(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := decode[paymentIntentResponse](t, rec); got.ClientSecret != "cs_test" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestPaymentHandler_CreateIntent_NonPositive(t *testing.T) {
	e := newEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/create-payment-intent", `{"price":-1}`), rec)

	err := NewPaymentHandler(&stubPaymentService{}).CreateIntent(c)
	if got := statusOf(t, e, c, rec, err); got != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", got)
	}
}

func TestPaymentHandler_History_EmptyIsArray(t *testing.T) {
	e := newEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("email")
	c.SetParamValues("alice@example.com")

	if err := NewPaymentHandler(&stubPaymentService{}).History(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty array, got %q", body)
	}
}
