package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const paymentGuardTTL = 24 * time.Hour

// PaymentGuard claims transaction ids backed by Redis so a retried checkout
// is not recorded twice.
// Key format: payment:txn:<transaction_id>
type PaymentGuard struct {
	client guardCommands
	ttl    time.Duration
}

type guardCommands interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// NewPaymentGuard creates a PaymentGuard wrapping the given Redis client.
func NewPaymentGuard(client redis.Cmdable) *PaymentGuard {
	return &PaymentGuard{client: client, ttl: paymentGuardTTL}
}

// Claim reports whether this call is the first to claim transactionID.
func (g *PaymentGuard) Claim(ctx context.Context, transactionID string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(transactionID), time.Now().UTC().Unix(), g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("payment guard claim: %w", err)
	}
	return ok, nil
}

// Release drops the claim, used when the payment could not be stored.
func (g *PaymentGuard) Release(ctx context.Context, transactionID string) error {
	if err := g.client.Del(ctx, g.key(transactionID)).Err(); err != nil {
		return fmt.Errorf("payment guard release: %w", err)
	}
	return nil
}

func (g *PaymentGuard) key(transactionID string) string {
	return "payment:txn:" + transactionID
}
