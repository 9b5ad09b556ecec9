package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

type stubUserRepo struct {
	users   map[string]*domain.User // keyed by email
	findErr error
	nextID  int
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.Email] = cloneUser(u)
	}
	return r
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (string, error) {
	if _, exists := r.users[user.Email]; exists {
		return "", domain.ErrUserExists
	}
	r.nextID++
	clone := cloneUser(user)
	clone.ID = fmt.Sprintf("id-%d", r.nextID)
	r.users[clone.Email] = clone
	return clone.ID, nil
}

func (r *stubUserRepo) SetRole(_ context.Context, id, role string) (*ports.UpdateResult, error) {
	for _, u := range r.users {
		if u.ID == id {
			modified := int64(0)
			if u.Role != role {
				u.Role = role
				modified = 1
			}
			return &ports.UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return &ports.UpdateResult{}, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) (int64, error) {
	for email, u := range r.users {
		if u.ID == id {
			delete(r.users, email)
			return 1, nil
		}
	}
	return 0, nil
}

func TestUserService_Create_NewUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	res, err := svc.Create(context.Background(), ports.CreateUserInput{Name: "Alice", Email: " alice@example.com "})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if res.AlreadyExists || res.InsertedID == "" {
		t.Fatalf("expected insert, got %+v", res)
	}
	if _, ok := repo.users["alice@example.com"]; !ok {
		t.Fatalf("expected trimmed email to be stored")
	}
}

func TestUserService_Create_ExistingUser(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "u1", Email: "alice@example.com", Role: domain.RoleAdmin})
	svc := NewUserService(repo, zerolog.Nop())

	res, err := svc.Create(context.Background(), ports.CreateUserInput{Name: "Alice again", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !res.AlreadyExists || res.InsertedID != "" {
		t.Fatalf("expected AlreadyExists, got %+v", res)
	}
	if repo.users["alice@example.com"].Role != domain.RoleAdmin {
		t.Fatalf("existing record must not be overwritten")
	}
}

func TestUserService_IsAdmin(t *testing.T) {
	repo := newStubUserRepo(
		&domain.User{ID: "u1", Email: "admin@example.com", Role: domain.RoleAdmin},
		&domain.User{ID: "u2", Email: "bob@example.com"},
	)
	svc := NewUserService(repo, zerolog.Nop())

	cases := map[string]bool{
		"admin@example.com": true,
		"bob@example.com":   false,
		"ghost@example.com": false,
	}
	for email, want := range cases {
		got, err := svc.IsAdmin(context.Background(), email)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", email, err)
		}
		if got != want {
			t.Fatalf("%s: expected %v, got %v", email, want, got)
		}
	}
}

func TestUserService_IsAdmin_StoreError(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = errors.New("timeout")
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.IsAdmin(context.Background(), "a@example.com"); !errors.Is(err, repo.findErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestUserService_Promote(t *testing.T) {
	repo := newStubUserRepo(&domain.User{ID: "u2", Email: "bob@example.com"})
	svc := NewUserService(repo, zerolog.Nop())

	res, err := svc.Promote(context.Background(), "u2")
	if err != nil {
		t.Fatalf("Promote returned error: %v", err)
	}
	if res.MatchedCount != 1 || res.ModifiedCount != 1 {
		t.Fatalf("unexpected update result: %+v", res)
	}
	if !repo.users["bob@example.com"].IsAdmin() {
		t.Fatalf("expected bob to be admin")
	}
}
