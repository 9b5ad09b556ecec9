package service

import (
	"context"
	"fmt"

	"github.com/bistroboss/restaurant-api/internal/core/domain"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
)

type MenuService struct {
	repo ports.MenuRepository
}

func NewMenuService(repo ports.MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) List(ctx context.Context) ([]*domain.MenuItem, error) {
	return s.repo.List(ctx)
}

func (s *MenuService) Names(ctx context.Context) ([]string, error) {
	return s.repo.Names(ctx)
}

func (s *MenuService) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MenuService) Create(ctx context.Context, input ports.MenuItemInput) (string, error) {
	id, err := s.repo.Create(ctx, toMenuItem(input))
	if err != nil {
		return "", fmt.Errorf("create menu item: %w", err)
	}
	return id, nil
}

// Update replaces every editable field of the item.
func (s *MenuService) Update(ctx context.Context, id string, input ports.MenuItemInput) (*ports.UpdateResult, error) {
	res, err := s.repo.Update(ctx, id, toMenuItem(input))
	if err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	return res, nil
}

func (s *MenuService) Delete(ctx context.Context, id string) (int64, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete menu item: %w", err)
	}
	return n, nil
}

func toMenuItem(in ports.MenuItemInput) *domain.MenuItem {
	return &domain.MenuItem{
		Name:     in.Name,
		Recipe:   in.Recipe,
		Image:    in.Image,
		Category: in.Category,
		Price:    in.Price,
	}
}
