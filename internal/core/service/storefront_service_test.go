package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

type stubBookingRepo struct {
	created []*domain.Booking
}

func (s *stubBookingRepo) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.created, nil
}

func (s *stubBookingRepo) Create(ctx context.Context, b *domain.Booking) (string, error) {
	s.created = append(s.created, b)
	return "b1", nil
}

func TestBookingService_Create_StartsPending(t *testing.T) {
	repo := &stubBookingRepo{}
	svc := NewBookingService(repo)
	local := time.Date(2026, 5, 1, 19, 30, 0, 0, time.FixedZone("UTC+6", 6*3600))

	id, err := svc.Create(context.Background(), ports.BookingInput{
		Email:  "alice@example.com",
		Name:   "Alice",
		Date:   local,
		Guests: 4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "b1" || len(repo.created) != 1 {
		t.Fatalf("booking not stored")
	}
	got := repo.created[0]
	if got.Status != domain.BookingPending {
		t.Fatalf("expected pending, got %q", got.Status)
	}
	if got.Date.Location() != time.UTC || !got.Date.Equal(local) {
		t.Fatalf("expected same instant in UTC, got %v", got.Date)
	}
}

type stubMenuRepo struct {
	items   map[string]*domain.MenuItem
	updated *domain.MenuItem
	err     error
}

func (s *stubMenuRepo) List(ctx context.Context) ([]*domain.MenuItem, error) { return nil, nil }
func (s *stubMenuRepo) Names(ctx context.Context) ([]string, error)         { return nil, nil }

func (s *stubMenuRepo) FindByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	if item, ok := s.items[id]; ok {
		return item, nil
	}
	return nil, domain.ErrMenuItemNotFound
}

func (s *stubMenuRepo) Create(ctx context.Context, item *domain.MenuItem) (string, error) {
	return "m1", s.err
}

func (s *stubMenuRepo) Update(ctx context.Context, id string, item *domain.MenuItem) (*ports.UpdateResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.updated = item
	return &ports.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *stubMenuRepo) Delete(ctx context.Context, id string) (int64, error) {
	return 0, s.err
}

func TestMenuService_UpdateSetsAllFields(t *testing.T) {
	repo := &stubMenuRepo{}
	svc := NewMenuService(repo)

	in := ports.MenuItemInput{Name: "Margherita", Recipe: "tomato, basil", Image: "https://img/m.png", Category: "pizza", Price: 11}
	if _, err := svc.Update(context.Background(), "m1", in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.MenuItem{Name: in.Name, Recipe: in.Recipe, Image: in.Image, Category: in.Category, Price: in.Price}
	if *repo.updated != want {
		t.Fatalf("unexpected update: %+v", repo.updated)
	}
}

func TestMenuService_Get_NotFound(t *testing.T) {
	svc := NewMenuService(&stubMenuRepo{})
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrMenuItemNotFound) {
		t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
	}
}

func TestMenuService_WrapsStoreErrors(t *testing.T) {
	svc := NewMenuService(&stubMenuRepo{err: domain.ErrInvalidID})
	if _, err := svc.Delete(context.Background(), "x"); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected wrapped ErrInvalidID, got %v", err)
	}
}
