package ports

import (
	"context"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

// PaymentRepository persists completed payments.
type PaymentRepository interface {
	// Create returns domain.ErrDuplicatePayment when the transaction id is
	// already stored.
	Create(ctx context.Context, payment *domain.Payment) (string, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.Payment, error)
}

// PaymentGuard claims a transaction id before it is written so that client
// retries do not record the same payment twice.
type PaymentGuard interface {
	// Claim reports false when the transaction id was claimed before.
	Claim(ctx context.Context, transactionID string) (bool, error)
	Release(ctx context.Context, transactionID string) error
}

// PaymentGateway creates provider-side payment intents.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64, currency string) (*domain.PaymentIntent, error)
}

// OrderNotifier tells the customer their order went through.
type OrderNotifier interface {
	NotifyOrderConfirmed(ctx context.Context, payment *domain.Payment) error
}

// TaskQueue runs work outside the request that scheduled it. Tasks with the
// same key run in submission order.
type TaskQueue interface {
	Enqueue(task Task) bool
}

// Task is a unit of background work.
type Task struct {
	ID   string
	Key  string
	Name string
	Run  func(ctx context.Context) error
}
