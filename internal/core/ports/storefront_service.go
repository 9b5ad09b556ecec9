package ports

import (
	"context"
	"time"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

type ReviewInput struct {
	Name    string
	User    string
	Details string
	Rating  float64
}

type BookingInput struct {
	Email  string
	Name   string
	Phone  string
	Date   time.Time
	Guests int
}

type CartItemInput struct {
	MenuID string
	Email  string
	Name   string
	Image  string
	Price  float64
}

type ReviewService interface {
	List(ctx context.Context) ([]*domain.Review, error)
	Create(ctx context.Context, input ReviewInput) (string, error)
}

type BookingService interface {
	List(ctx context.Context) ([]*domain.Booking, error)
	Create(ctx context.Context, input BookingInput) (string, error)
}

type CartService interface {
	List(ctx context.Context, email string) ([]*domain.CartItem, error)
	Add(ctx context.Context, input CartItemInput) (string, error)
	Remove(ctx context.Context, id string) (int64, error)
}
