package mocks

import (
	"context"

	"warung-pos/internal/domain"

	"github.com/stretchr/testify/mock"
)

// ReportCache is a mock type for the service.ReportCache interface.
type ReportCache struct {
	mock.Mock
}

func (m *ReportCache) GetDashboard(ctx context.Context) (*domain.DashboardStats, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Bool(1)
}

func (m *ReportCache) SetDashboard(ctx context.Context, stats *domain.DashboardStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

func (m *ReportCache) DailySales(ctx context.Context, day string) (int, int, bool) {
	args := m.Called(ctx, day)
	return args.Int(0), args.Int(1), args.Bool(2)
}

func (m *ReportCache) TopMenusToday(ctx context.Context, day string, limit int) ([]domain.MenuSales, error) {
	args := m.Called(ctx, day, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuSales), args.Error(1)
}

func NewReportCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReportCache {
	m := &ReportCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
