package ports

import "github.com/bistroboss/restaurant-api/internal/core/domain"

// TokenService issues and verifies signed access tokens.
type TokenService interface {
	Issue(identity domain.Identity) (string, error)
	// Verify returns domain.ErrTokenMalformed, domain.ErrTokenSignature or
	// domain.ErrTokenExpired when the token cannot be trusted.
	Verify(token string) (*domain.Claims, error)
}
