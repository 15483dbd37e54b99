package mocks

import (
	"context"

	"warung-pos/internal/domain"
	"warung-pos/internal/service"

	"github.com/stretchr/testify/mock"
)

// OrderService is a mock type for the service.OrderServiceInterface interface.
type OrderService struct {
	mock.Mock
}

func (m *OrderService) CreateOrder(ctx context.Context, req *service.CreateOrderRequest) (*service.OrderResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.OrderResult), args.Error(1)
}

func (m *OrderService) AddItems(ctx context.Context, orderID int, items []service.ItemInput) (*service.OrderResult, error) {
	args := m.Called(ctx, orderID, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.OrderResult), args.Error(1)
}

func (m *OrderService) VoidItem(ctx context.Context, itemID int) (*service.VoidResult, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.VoidResult), args.Error(1)
}

func (m *OrderService) BatchVoid(ctx context.Context, itemIDs []int) (*service.VoidResult, error) {
	args := m.Called(ctx, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.VoidResult), args.Error(1)
}

func (m *OrderService) Pay(ctx context.Context, orderID int, req *service.PaymentRequest) (*service.PaymentResult, error) {
	args := m.Called(ctx, orderID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PaymentResult), args.Error(1)
}

func (m *OrderService) Cancel(ctx context.Context, orderID int) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderService) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderService) UnpaidOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderService) SyncOrders(ctx context.Context, payloads []domain.OrderPayload) *domain.SyncResponse {
	args := m.Called(ctx, payloads)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.SyncResponse)
}

func (m *OrderService) ReceiptQRCode(ctx context.Context, orderID int) ([]byte, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func NewOrderService(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderService {
	m := &OrderService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
