package mocks

import (
	"context"

	"warung-pos/internal/domain"

	"github.com/stretchr/testify/mock"
)

// OrderPublisher is a mock type for the service.OrderPublisher interface.
type OrderPublisher struct {
	mock.Mock
}

func (m *OrderPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func NewOrderPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderPublisher {
	m := &OrderPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
