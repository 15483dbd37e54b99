package tests

import (
	"context"
	"testing"

	"warung-pos/internal/domain"
	"warung-pos/internal/mocks"
	"warung-pos/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMenuService_CreateMenu(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	svc := service.NewMenuService(repo)
	ctx := context.Background()

	tests := []struct {
		name          string
		menu          *domain.Menu
		prepareMocks  func()
		expectedError error
	}{
		{
			name: "success",
			menu: &domain.Menu{Name: "Bakmi Ayam", CategoryID: 1, Price: 16000, IsAvailable: true},
			prepareMocks: func() {
				repo.On("CreateMenu", ctx, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:          "error_missing_name",
			menu:          &domain.Menu{Price: 16000},
			prepareMocks:  func() {},
			expectedError: domain.ErrNameRequired,
		},
		{
			name:          "error_negative_price",
			menu:          &domain.Menu{Name: "Bakmi Ayam", Price: -1},
			prepareMocks:  func() {},
			expectedError: domain.ErrInvalidPrice,
		},
		{
			name: "free_item_is_allowed",
			menu: &domain.Menu{Name: "Air Putih", Price: 0},
			prepareMocks: func() {
				repo.On("CreateMenu", ctx, mock.Anything).Return(nil).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			err := svc.CreateMenu(ctx, testCase.menu)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestMenuService_DeleteMenu(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	svc := service.NewMenuService(repo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo.On("DeleteMenu", ctx, 1).Return(int64(1), nil).Once()
		assert.NoError(t, svc.DeleteMenu(ctx, 1))
	})

	t.Run("error_not_found", func(t *testing.T) {
		repo.On("DeleteMenu", ctx, 99).Return(int64(0), nil).Once()
		assert.ErrorIs(t, svc.DeleteMenu(ctx, 99), domain.ErrMenuNotFound)
	})
}

func TestMenuService_Categories(t *testing.T) {
	repo := mocks.NewMenuRepository(t)
	svc := service.NewMenuService(repo)
	ctx := context.Background()

	t.Run("create_requires_name", func(t *testing.T) {
		assert.ErrorIs(t, svc.CreateCategory(ctx, &domain.Category{}), domain.ErrNameRequired)
	})

	t.Run("delete_missing_category", func(t *testing.T) {
		repo.On("DeleteCategory", ctx, 99).Return(int64(0), nil).Once()
		assert.ErrorIs(t, svc.DeleteCategory(ctx, 99), domain.ErrCategoryNotFound)
	})

	t.Run("update", func(t *testing.T) {
		repo.On("UpdateCategory", ctx, mock.Anything).Return(nil).Once()
		assert.NoError(t, svc.UpdateCategory(ctx, &domain.Category{ID: 3, Name: "Minuman"}))
	})
}
