package ports

import (
	"context"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

// MenuRepository defines persistence operations for menu items.
type MenuRepository interface {
	List(ctx context.Context) ([]*domain.MenuItem, error)
	Names(ctx context.Context) ([]string, error)
	// FindByID returns domain.ErrMenuItemNotFound when the id matches nothing.
	FindByID(ctx context.Context, id string) (*domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) (string, error)
	Update(ctx context.Context, id string, item *domain.MenuItem) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}
