package service

import (
	"context"

	"warung-pos/internal/domain"
)

// MenuService manages the menu catalog and its categories.
type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) ListMenus(ctx context.Context) ([]domain.Menu, error) {
	return s.repo.ListMenus(ctx)
}

func (s *MenuService) CreateMenu(ctx context.Context, menu *domain.Menu) error {
	if err := validateMenu(menu); err != nil {
		return err
	}
	return s.repo.CreateMenu(ctx, menu)
}

func (s *MenuService) UpdateMenu(ctx context.Context, menu *domain.Menu) error {
	if err := validateMenu(menu); err != nil {
		return err
	}
	return s.repo.UpdateMenu(ctx, menu)
}

func (s *MenuService) DeleteMenu(ctx context.Context, id int) error {
	affected, err := s.repo.DeleteMenu(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrMenuNotFound
	}
	return nil
}

func (s *MenuService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *MenuService) CreateCategory(ctx context.Context, category *domain.Category) error {
	if category.Name == "" {
		return domain.ErrNameRequired
	}
	return s.repo.CreateCategory(ctx, category)
}

func (s *MenuService) UpdateCategory(ctx context.Context, category *domain.Category) error {
	if category.Name == "" {
		return domain.ErrNameRequired
	}
	return s.repo.UpdateCategory(ctx, category)
}

func (s *MenuService) DeleteCategory(ctx context.Context, id int) error {
	affected, err := s.repo.DeleteCategory(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func validateMenu(menu *domain.Menu) error {
	if menu.Name == "" {
		return domain.ErrNameRequired
	}
	if menu.Price < 0 {
		return domain.ErrInvalidPrice
	}
	return nil
}

var _ MenuServiceInterface = (*MenuService)(nil)
