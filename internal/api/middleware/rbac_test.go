package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

type stubRoleStore struct {
	users map[string]*domain.User
	err   error
	calls int
}

func (s *stubRoleStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func newRoleStore() *stubRoleStore {
	return &stubRoleStore{users: map[string]*domain.User{
		"admin@example.com": {Email: "admin@example.com", Role: domain.RoleAdmin},
		"alice@example.com": {Email: "alice@example.com"},
	}}
}

// newAuthedContext builds a context as Authenticate would leave it.
func newAuthedContext(email, paramName, paramValue string) (echo.Context, *httptest.ResponseRecorder, *echo.Echo) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if email != "" {
		SetClaims(c, &domain.Claims{Identity: domain.Identity{Email: email}})
	}
	if paramName != "" {
		c.SetParamNames(paramName)
		c.SetParamValues(paramValue)
	}
	return c, rec, e
}

func serve(e *echo.Echo, c echo.Context, mw echo.MiddlewareFunc) bool {
	called := false
	h := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return called
}

func TestRequireAdmin_Allows(t *testing.T) {
	c, rec, e := newAuthedContext("admin@example.com", "", "")
	if !serve(e, c, RequireAdmin(newRoleStore())) {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAdmin_Forbids(t *testing.T) {
	for _, email := range []string{"alice@example.com", "ghost@example.com"} {
		c, rec, e := newAuthedContext(email, "", "")
		if serve(e, c, RequireAdmin(newRoleStore())) {
			t.Fatalf("%s: should not reach next handler", email)
		}
		if rec.Code != http.StatusForbidden {
			t.Fatalf("%s: expected 403, got %d", email, rec.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(rec.Body.Bytes(), &body)
		if body["message"] != "forbidden access" {
			t.Fatalf("%s: unexpected body %v", email, body)
		}
	}
}

func TestRequireAdmin_StoreFailure(t *testing.T) {
	c, rec, e := newAuthedContext("admin@example.com", "", "")
	store := &stubRoleStore{err: errors.New("connection reset")}
	if serve(e, c, RequireAdmin(store)) {
		t.Fatalf("should not reach next handler")
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestRequireAdmin_WithoutPrincipal(t *testing.T) {
	c, rec, e := newAuthedContext("", "", "")
	store := newRoleStore()
	if serve(e, c, RequireAdmin(store)) {
		t.Fatalf("should not reach next handler")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if store.calls != 0 {
		t.Fatalf("role store should not be queried")
	}
}

func TestRequireSelf(t *testing.T) {
	c, rec, e := newAuthedContext("alice@example.com", "email", "alice@example.com")
	if !serve(e, c, RequireSelf("email")) || rec.Code != http.StatusOK {
		t.Fatalf("owner should pass, got %d", rec.Code)
	}

	c, rec, e = newAuthedContext("alice@example.com", "email", "bob@example.com")
	if serve(e, c, RequireSelf("email")) {
		t.Fatalf("should not reach next handler")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireSelf_AdminIsNotEnough(t *testing.T) {
	c, rec, e := newAuthedContext("admin@example.com", "email", "alice@example.com")
	if serve(e, c, RequireSelf("email")) {
		t.Fatalf("should not reach next handler")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireSelfOrAdmin(t *testing.T) {
	cases := []struct {
		name      string
		principal string
		target    string
		want      int
		lookups   int
	}{
		{"owner", "alice@example.com", "alice@example.com", http.StatusOK, 0},
		{"admin", "admin@example.com", "alice@example.com", http.StatusOK, 1},
		{"other user", "alice@example.com", "bob@example.com", http.StatusForbidden, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newRoleStore()
			c, rec, e := newAuthedContext(tc.principal, "email", tc.target)
			serve(e, c, RequireSelfOrAdmin("email", store))
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
			if store.calls != tc.lookups {
				t.Fatalf("expected %d role lookups, got %d", tc.lookups, store.calls)
			}
		})
	}
}
