package domain

import "time"

const PaymentPending = "pending"

// Payment is a completed checkout. It is written once and never updated.
type Payment struct {
	ID            string    `json:"_id"`
	Email         string    `json:"email"`
	Price         float64   `json:"price"`
	TransactionID string    `json:"transactionId"`
	Date          time.Time `json:"date"`
	CartIDs       []string  `json:"cartIds"`
	MenuItemIDs   []string  `json:"menuItemIds"`
	Status        string    `json:"status"`
}

// PaymentIntent is what the client needs to confirm a card payment with the
// provider.
type PaymentIntent struct {
	ClientSecret string
	AmountCents  int64
	Currency     string
}
