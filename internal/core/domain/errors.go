package domain

import "errors"

var (
	ErrUnauthorized = errors.New("unauthorized access")
	ErrForbidden    = errors.New("forbidden access")

	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenSignature = errors.New("token signature is invalid")
	ErrTokenExpired   = errors.New("token has expired")

	ErrInvalidID        = errors.New("invalid identifier")
	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("user already exists")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrDuplicatePayment = errors.New("payment already recorded")
	ErrInvalidAmount    = errors.New("amount must be greater than zero")
)
