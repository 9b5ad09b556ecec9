package domain

import "time"

// Identity is what a caller asserts when asking for a token.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Claims is the verified content of an access token.
type Claims struct {
	Identity
	IssuedAt  time.Time
	ExpiresAt time.Time
}
