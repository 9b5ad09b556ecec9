// Package mail sends customer notifications.
package mail

import (
	"context"
	"fmt"
	"html"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/rs/zerolog"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

const orderConfirmedSubject = "Confirmation Of your Order - Bistro Boss"

// MailgunConfig holds the sending domain and credentials.
type MailgunConfig struct {
	Domain   string
	APIKey   string
	From     string
	EURegion bool
}

type messageSender interface {
	NewMessage(from, subject, text string, to ...string) *mailgun.Message
	Send(ctx context.Context, m *mailgun.Message) (string, string, error)
}

// MailgunNotifier implements ports.OrderNotifier over the Mailgun API.
type MailgunNotifier struct {
	mg   messageSender
	from string
	log  zerolog.Logger
}

// NewMailgunNotifier builds a notifier for cfg.Domain.
func NewMailgunNotifier(cfg MailgunConfig, log zerolog.Logger) *MailgunNotifier {
	mg := mailgun.NewMailgun(cfg.Domain, cfg.APIKey)
	if cfg.EURegion {
		mg.SetAPIBase(mailgun.APIBaseEU)
	}
	from := cfg.From
	if from == "" {
		from = "Bistro Boss <mailgun@" + cfg.Domain + ">"
	}
	return &MailgunNotifier{mg: mg, from: from, log: log}
}

// NotifyOrderConfirmed emails the customer the transaction id of their order.
func (n *MailgunNotifier) NotifyOrderConfirmed(ctx context.Context, payment *domain.Payment) error {
	text := fmt.Sprintf("Thank you for your order. Your transaction ID is %s.", payment.TransactionID)
	m := n.mg.NewMessage(n.from, orderConfirmedSubject, text, payment.Email)
	m.SetHtml(orderConfirmedHTML(payment.TransactionID))

	_, id, err := n.mg.Send(ctx, m)
	if err != nil {
		return fmt.Errorf("send order confirmation: %w", err)
	}
	n.log.Info().Str("message_id", id).Str("transaction_id", payment.TransactionID).Msg("order confirmation sent")
	return nil
}

func orderConfirmedHTML(transactionID string) string {
	return "<div>" +
		"<h2>Thank you for your Order</h2>" +
		"<h4>Your Transaction ID is - <strong>" + html.EscapeString(transactionID) + "</strong></h4>" +
		"<p>We would love to get your feedback about the food!</p>" +
		"</div>"
}
