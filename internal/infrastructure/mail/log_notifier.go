package mail

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

// LogNotifier records confirmations in the log. Used when Mailgun is not
// configured.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) NotifyOrderConfirmed(_ context.Context, payment *domain.Payment) error {
	n.log.Info().
		Str("email", payment.Email).
		Str("transaction_id", payment.TransactionID).
		Msg("order confirmation (mail disabled)")
	return nil
}
