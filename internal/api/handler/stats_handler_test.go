package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

type stubReporting struct {
	summary    *domain.Summary
	categories []domain.CategoryStat
	users      map[string]*domain.UserStats
}

func (s *stubReporting) Summary(ctx context.Context) (*domain.Summary, error) {
	return s.summary, nil
}

func (s *stubReporting) CategoryBreakdown(ctx context.Context) ([]domain.CategoryStat, error) {
	return s.categories, nil
}

func (s *stubReporting) UserStats(ctx context.Context, email string) (*domain.UserStats, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return &domain.UserStats{}, nil
}

func TestStatsHandler_Summary(t *testing.T) {
	e := newEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/admin-stats", nil), rec)
	svc := &stubReporting{summary: &domain.Summary{Users: 3, MenuItems: 10, Orders: 2, Revenue: 19.75}}

	if err := NewStatsHandler(svc).Summary(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	got := decode[map[string]float64](t, rec)
	want := map[string]float64{"users": 3, "menuItems": 10, "orders": 2, "revenue": 19.75}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("%s: expected %v, got %v", k, v, got[k])
		}
	}
}

func TestStatsHandler_Categories(t *testing.T) {
	e := newEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/order-stats", nil), rec)
	svc := &stubReporting{categories: []domain.CategoryStat{
		{Category: "dessert", Quantity: 1, Revenue: 5},
		{Category: "pizza", Quantity: 2, Revenue: 22},
	}}

	if err := NewStatsHandler(svc).Categories(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	got := decode[[]domain.CategoryStat](t, rec)
	if len(got) != 2 || got[1].Category != "pizza" || got[1].Quantity != 2 {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

func TestStatsHandler_User(t *testing.T) {
	e := newEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("email")
	c.SetParamValues("nobody@example.com")

	if err := NewStatsHandler(&stubReporting{}).User(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := rec.Body.String(); body != "{\"orders\":0,\"reviews\":0}\n" {
		t.Fatalf("unexpected body %q", body)
	}
}
