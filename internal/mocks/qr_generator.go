package mocks

import (
	"github.com/stretchr/testify/mock"
)

// QRGenerator is a mock type for the service.QRGenerator interface.
type QRGenerator struct {
	mock.Mock
}

func (m *QRGenerator) Generate(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func NewQRGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
