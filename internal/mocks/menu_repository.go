package mocks

import (
	"context"

	"warung-pos/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MenuRepository is a mock type for the service.MenuRepository interface.
type MenuRepository struct {
	mock.Mock
}

func (m *MenuRepository) GetMenus(ctx context.Context, ids []int) (map[int]domain.Menu, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]domain.Menu), args.Error(1)
}

func (m *MenuRepository) ListMenus(ctx context.Context) ([]domain.Menu, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Menu), args.Error(1)
}

func (m *MenuRepository) CreateMenu(ctx context.Context, menu *domain.Menu) error {
	args := m.Called(ctx, menu)
	return args.Error(0)
}

func (m *MenuRepository) UpdateMenu(ctx context.Context, menu *domain.Menu) error {
	args := m.Called(ctx, menu)
	return args.Error(0)
}

func (m *MenuRepository) DeleteMenu(ctx context.Context, id int) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MenuRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MenuRepository) CreateCategory(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MenuRepository) UpdateCategory(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MenuRepository) DeleteCategory(ctx context.Context, id int) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func NewMenuRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
