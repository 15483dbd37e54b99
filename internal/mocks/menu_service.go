package mocks

import (
	"context"

	"warung-pos/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MenuService is a mock type for the service.MenuServiceInterface interface.
type MenuService struct {
	mock.Mock
}

func (m *MenuService) ListMenus(ctx context.Context) ([]domain.Menu, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Menu), args.Error(1)
}

func (m *MenuService) CreateMenu(ctx context.Context, menu *domain.Menu) error {
	args := m.Called(ctx, menu)
	return args.Error(0)
}

func (m *MenuService) UpdateMenu(ctx context.Context, menu *domain.Menu) error {
	args := m.Called(ctx, menu)
	return args.Error(0)
}

func (m *MenuService) DeleteMenu(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MenuService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MenuService) CreateCategory(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MenuService) UpdateCategory(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MenuService) DeleteCategory(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func NewMenuService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuService {
	m := &MenuService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
