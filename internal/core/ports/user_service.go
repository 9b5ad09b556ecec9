package ports

import (
	"context"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

// CreateUserInput carries the profile sent by the client after sign-up.
type CreateUserInput struct {
	Name  string
	Email string
	Photo string
}

// CreateUserResult reports the inserted id, or AlreadyExists when the email
// was registered before.
type CreateUserResult struct {
	InsertedID    string
	AlreadyExists bool
}

type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, input CreateUserInput) (*CreateUserResult, error)
	Promote(ctx context.Context, id string) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}
