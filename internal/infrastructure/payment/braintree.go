package payment

import (
	"context"
	"fmt"

	"github.com/braintree-go/braintree-go"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

// BraintreeConfig holds the merchant credentials.
type BraintreeConfig struct {
	Environment string
	MerchantID  string
	PublicKey   string
	PrivateKey  string
}

type clientTokenGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// BraintreeGateway implements ports.PaymentGateway. The client token it
// generates is what the checkout form uses as the intent's client secret.
type BraintreeGateway struct {
	tokens clientTokenGenerator
}

// NewBraintreeGateway initializes the Braintree SDK gateway.
func NewBraintreeGateway(cfg BraintreeConfig) *BraintreeGateway {
	env := braintree.Sandbox
	if cfg.Environment == "production" {
		env = braintree.Production
	}

	bt := braintree.New(env, cfg.MerchantID, cfg.PublicKey, cfg.PrivateKey)
	return &BraintreeGateway{tokens: bt.ClientToken()}
}

// CreatePaymentIntent asks the provider for a client secret for a charge of
// amountCents in currency.
func (g *BraintreeGateway) CreatePaymentIntent(ctx context.Context, amountCents int64, currency string) (*domain.PaymentIntent, error) {
	if amountCents <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	secret, err := g.tokens.Generate(ctx)
	if err != nil {
		return nil, fmt.Errorf("braintree client token: %w", err)
	}

	return &domain.PaymentIntent{
		ClientSecret: secret,
		AmountCents:  amountCents,
		Currency:     currency,
	}, nil
}
