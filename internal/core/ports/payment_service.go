package ports

import (
	"context"
	"time"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

// RecordPaymentInput is the checkout the client confirmed with the provider.
type RecordPaymentInput struct {
	Email         string
	Price         float64
	TransactionID string
	Date          time.Time
	CartIDs       []string
	MenuItemIDs   []string
}

// RecordPaymentResult reports both writes of a checkout. CartCleanupDeferred
// is set when the cart items could not be removed inline and a cleanup task
// was queued instead.
type RecordPaymentResult struct {
	InsertedID          string
	DeletedCount        int64
	CartCleanupDeferred bool
}

type PaymentService interface {
	CreateIntent(ctx context.Context, price float64) (*domain.PaymentIntent, error)
	Record(ctx context.Context, input RecordPaymentInput) (*RecordPaymentResult, error)
	History(ctx context.Context, email string) ([]*domain.Payment, error)
}
