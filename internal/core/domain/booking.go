package domain

import "time"

// Booking is a table reservation.
type Booking struct {
	ID     string    `json:"_id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	Phone  string    `json:"phone,omitempty"`
	Date   time.Time `json:"date"`
	Guests int       `json:"guests"`
	Status string    `json:"status"`
}

const BookingPending = "pending"
