package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

const (
	defaultCurrency     = "usd"
	cartCleanupAttempts = 3
	cartCleanupBackoff  = 2 * time.Second
)

// PaymentService turns confirmed checkouts into payment records.
//
// Recording a payment is two independent writes: the payment insert and the
// removal of the paid cart items. There is no transaction around them. When
// the cart removal fails the payment still stands and a cleanup task is
// queued; removing cart items is idempotent so the task can simply retry.
type PaymentService struct {
	payments ports.PaymentRepository
	carts    ports.CartRepository
	guard    ports.PaymentGuard
	gateway  ports.PaymentGateway
	notifier ports.OrderNotifier
	tasks    ports.TaskQueue
	currency string
	log      zerolog.Logger

	cleanupBackoff time.Duration
}

// PaymentServiceDeps groups the collaborators of PaymentService.
type PaymentServiceDeps struct {
	Payments ports.PaymentRepository
	Carts    ports.CartRepository
	Guard    ports.PaymentGuard
	Gateway  ports.PaymentGateway
	Notifier ports.OrderNotifier
	Tasks    ports.TaskQueue
	Currency string
}

func NewPaymentService(deps PaymentServiceDeps, log zerolog.Logger) *PaymentService {
	currency := deps.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	return &PaymentService{
		payments:       deps.Payments,
		carts:          deps.Carts,
		guard:          deps.Guard,
		gateway:        deps.Gateway,
		notifier:       deps.Notifier,
		tasks:          deps.Tasks,
		currency:       currency,
		log:            log,
		cleanupBackoff: cartCleanupBackoff,
	}
}

// CreateIntent asks the provider for a payment intent worth price. The amount
// is converted to cents and truncated.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (*domain.PaymentIntent, error) {
	cents := decimal.NewFromFloat(price).Mul(decimal.NewFromInt(100)).IntPart()
	if cents <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, cents, s.currency)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	s.log.Info().Int64("amount_cents", cents).Str("currency", s.currency).Msg("payment intent created")
	return intent, nil
}

// Record stores the payment, clears the paid cart items and schedules the
// confirmation email.
func (s *PaymentService) Record(ctx context.Context, in ports.RecordPaymentInput) (*ports.RecordPaymentResult, error) {
	if in.Price <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	// 1. Claim the transaction id. The unique index still rejects duplicates
	//    if the guard is unavailable.
	claimed, err := s.guard.Claim(ctx, in.TransactionID)
	if err != nil {
		s.log.Warn().Err(err).Str("transaction_id", in.TransactionID).Msg("payment guard unavailable, relying on unique index")
	} else if !claimed {
		return nil, domain.ErrDuplicatePayment
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	payment := &domain.Payment{
		Email:         in.Email,
		Price:         in.Price,
		TransactionID: in.TransactionID,
		Date:          date.UTC(),
		CartIDs:       in.CartIDs,
		MenuItemIDs:   in.MenuItemIDs,
		Status:        domain.PaymentPending,
	}

	// 2. Insert the payment.
	id, err := s.payments.Create(ctx, payment)
	if err != nil {
		if claimed && !errors.Is(err, domain.ErrDuplicatePayment) {
			if relErr := s.guard.Release(ctx, in.TransactionID); relErr != nil {
				s.log.Warn().Err(relErr).Str("transaction_id", in.TransactionID).Msg("failed to release payment guard")
			}
		}
		return nil, fmt.Errorf("record payment: %w", err)
	}
	payment.ID = id
	result := &ports.RecordPaymentResult{InsertedID: id}

	// 3. Remove the paid cart items, deferring to a task on failure.
	if len(in.CartIDs) > 0 {
		deleted, err := s.carts.DeleteMany(ctx, in.CartIDs)
		if err != nil {
			s.log.Error().Err(err).Str("payment_id", id).Msg("cart cleanup failed, scheduling retry")
			result.CartCleanupDeferred = s.scheduleCartCleanup(in.Email, in.CartIDs)
		} else {
			result.DeletedCount = deleted
		}
	}

	// 4. Fire-and-forget confirmation.
	s.scheduleConfirmation(payment)

	s.log.Info().
		Str("payment_id", id).
		Str("transaction_id", in.TransactionID).
		Float64("price", in.Price).
		Int("items", len(in.MenuItemIDs)).
		Msg("payment recorded")

	return result, nil
}

func (s *PaymentService) History(ctx context.Context, email string) ([]*domain.Payment, error) {
	return s.payments.ListByEmail(ctx, email)
}

func (s *PaymentService) scheduleConfirmation(payment *domain.Payment) {
	if s.notifier == nil || s.tasks == nil {
		return
	}
	p := *payment
	ok := s.tasks.Enqueue(ports.Task{
		ID:   uuid.NewString(),
		Key:  p.Email,
		Name: "order_confirmation",
		Run: func(ctx context.Context) error {
			return s.notifier.NotifyOrderConfirmed(ctx, &p)
		},
	})
	if !ok {
		s.log.Warn().Str("transaction_id", p.TransactionID).Msg("confirmation email dropped, queue full")
	}
}

func (s *PaymentService) scheduleCartCleanup(email string, cartIDs []string) bool {
	if s.tasks == nil {
		return false
	}
	ids := append([]string(nil), cartIDs...)
	return s.tasks.Enqueue(ports.Task{
		ID:   uuid.NewString(),
		Key:  email,
		Name: "cart_cleanup",
		Run: func(ctx context.Context) error {
			var lastErr error
			for attempt := 1; attempt <= cartCleanupAttempts; attempt++ {
				if _, lastErr = s.carts.DeleteMany(ctx, ids); lastErr == nil {
					return nil
				}
				if attempt == cartCleanupAttempts {
					break
				}
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(s.cleanupBackoff * time.Duration(attempt)):
				}
			}
			return fmt.Errorf("cart cleanup after %d attempts: %w", cartCleanupAttempts, lastErr)
		},
	})
}
