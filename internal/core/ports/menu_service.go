package ports

import (
	"context"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

// MenuItemInput holds the editable fields of a menu item.
type MenuItemInput struct {
	Name     string
	Recipe   string
	Image    string
	Category string
	Price    float64
}

type MenuService interface {
	List(ctx context.Context) ([]*domain.MenuItem, error)
	Names(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id string) (*domain.MenuItem, error)
	Create(ctx context.Context, input MenuItemInput) (string, error)
	Update(ctx context.Context, id string, input MenuItemInput) (*UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}
