package mocks

import (
	"context"
	"time"

	"warung-pos/internal/domain"

	"github.com/stretchr/testify/mock"
)

// OrderRepository is a mock type for the service.OrderRepository interface.
type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepository) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderRepository) GetOrderByUUID(ctx context.Context, uuid string) (*domain.Order, error) {
	args := m.Called(ctx, uuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderRepository) GetItem(ctx context.Context, itemID int) (*domain.OrderItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderItem), args.Error(1)
}

func (m *OrderRepository) AppendItems(ctx context.Context, orderID int, items []domain.OrderItem) (int, error) {
	args := m.Called(ctx, orderID, items)
	return args.Int(0), args.Error(1)
}

func (m *OrderRepository) VoidItems(ctx context.Context, orderID int, itemIDs []int) (int, error) {
	args := m.Called(ctx, orderID, itemIDs)
	return args.Int(0), args.Error(1)
}

func (m *OrderRepository) MarkPaid(ctx context.Context, orderID int, method string, expectedTotal int, paidAt time.Time) error {
	args := m.Called(ctx, orderID, method, expectedTotal, paidAt)
	return args.Error(0)
}

func (m *OrderRepository) MarkCancelled(ctx context.Context, orderID int) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *OrderRepository) UnpaidToday(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderRepository) SaveQRCode(ctx context.Context, orderID int, qr []byte) error {
	args := m.Called(ctx, orderID, qr)
	return args.Error(0)
}

func (m *OrderRepository) GetQRCode(ctx context.Context, orderID int) ([]byte, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
