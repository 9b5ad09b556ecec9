package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

// UserService implements user registration and role management.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// IsAdmin reports whether email belongs to an admin. Unknown emails are not
// admins.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("check admin: %w", err)
	}
	return user.IsAdmin(), nil
}

// Create stores the user unless the email is already registered, in which
// case it reports AlreadyExists and writes nothing.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*ports.CreateUserResult, error) {
	email := strings.TrimSpace(input.Email)

	_, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return &ports.CreateUserResult{AlreadyExists: true}, nil
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("create user: %w", err)
	}

	id, err := s.repo.Create(ctx, &domain.User{
		Name:  input.Name,
		Email: email,
		Photo: input.Photo,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return &ports.CreateUserResult{AlreadyExists: true}, nil
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().Str("user_id", id).Str("email", email).Msg("user registered")
	return &ports.CreateUserResult{InsertedID: id}, nil
}

// Promote grants the admin role to the user with the given id.
func (s *UserService) Promote(ctx context.Context, id string) (*ports.UpdateResult, error) {
	res, err := s.repo.SetRole(ctx, id, domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("promote user: %w", err)
	}
	s.logger.Info().Str("user_id", id).Int64("matched", res.MatchedCount).Msg("user promoted to admin")
	return res, nil
}

func (s *UserService) Delete(ctx context.Context, id string) (int64, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete user: %w", err)
	}
	return n, nil
}
