package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/restaurant-api/internal/api/middleware"
	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func asAuthenticated(c echo.Context, email string) {
	middleware.SetClaims(c, &domain.Claims{Identity: domain.Identity{Email: email}})
}

// statusOf runs err through the framework's default handler and returns the
// resulting status code.
func statusOf(t *testing.T, e *echo.Echo, c echo.Context, rec *httptest.ResponseRecorder, err error) int {
	t.Helper()
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return v
}

// --- Token ---

type stubTokens struct {
	issued []domain.Identity
	err    error
}

func (s *stubTokens) Issue(identity domain.Identity) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.issued = append(s.issued, identity)
	return "signed." + identity.Email, nil
}

func (s *stubTokens) Verify(token string) (*domain.Claims, error) {
	return nil, errors.New("not used")
}

func TestTokenHandler_Issue(t *testing.T) {
	e := newEcho()
	tokens := &stubTokens{}
	h := NewTokenHandler(tokens)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/jwt", `{"email":" alice@example.com","name":"Alice"}`), rec)
	if err := h.Issue(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decode[tokenResponse](t, rec)
	if resp.Token != "signed.alice@example.com" {
		t.Fatalf("unexpected token: %q", resp.Token)
	}
	if len(tokens.issued) != 1 || tokens.issued[0].Name != "Alice" {
		t.Fatalf("unexpected identity: %+v", tokens.issued)
	}
}

func TestTokenHandler_Issue_BadBodies(t *testing.T) {
	cases := map[string]struct {
		body string
		want int
	}{
		"not json":      {`{"email":`, http.StatusBadRequest},
		"missing email": {`{"name":"Alice"}`, http.StatusUnprocessableEntity},
		"invalid email": {`{"email":"alice"}`, http.StatusUnprocessableEntity},
		"blank email":   {`{"email":"   "}`, http.StatusUnprocessableEntity},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			e := newEcho()
			tokens := &stubTokens{}
			rec := httptest.NewRecorder()
			c := e.NewContext(jsonRequest(http.MethodPost, "/jwt", tc.body), rec)

			err := NewTokenHandler(tokens).Issue(c)
			if got := statusOf(t, e, c, rec, err); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
			if len(tokens.issued) != 0 {
				t.Fatalf("token should not be issued")
			}
		})
	}
}
