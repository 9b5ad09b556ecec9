package ports

import (
	"context"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

// UpdateResult mirrors the matched/modified counters of a single-document update.
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
}

// RoleStore resolves the user record behind an authenticated email.
type RoleStore interface {
	// FindByEmail returns domain.ErrUserNotFound when no record exists.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	RoleStore
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) (string, error)
	SetRole(ctx context.Context, id, role string) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}
