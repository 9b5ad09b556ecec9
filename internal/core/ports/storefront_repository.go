package ports

import (
	"context"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

// ReviewRepository persists customer reviews.
type ReviewRepository interface {
	List(ctx context.Context) ([]*domain.Review, error)
	Create(ctx context.Context, review *domain.Review) (string, error)
}

// BookingRepository persists table reservations.
type BookingRepository interface {
	List(ctx context.Context) ([]*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) (string, error)
}

// CartRepository persists unpaid cart items.
type CartRepository interface {
	ListByEmail(ctx context.Context, email string) ([]*domain.CartItem, error)
	Create(ctx context.Context, item *domain.CartItem) (string, error)
	Delete(ctx context.Context, id string) (int64, error)
	// DeleteMany removes every listed item. Removing ids that are already gone
	// is not an error, so the call can be retried.
	DeleteMany(ctx context.Context, ids []string) (int64, error)
}
