package mocks

import (
	"context"
	"time"

	"warung-pos/internal/domain"

	"github.com/stretchr/testify/mock"
)

// ReportRepository is a mock type for the service.ReportRepository interface.
type ReportRepository struct {
	mock.Mock
}

func (m *ReportRepository) PaidOrders(ctx context.Context, date time.Time, search string, limit, offset int) ([]domain.Order, int, error) {
	args := m.Called(ctx, date, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Order), args.Int(1), args.Error(2)
}

func (m *ReportRepository) PaidOrdersBetween(ctx context.Context, start, end time.Time) ([]domain.Order, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *ReportRepository) Summary(ctx context.Context, start, end time.Time) (*domain.ReportSummary, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportSummary), args.Error(1)
}

func (m *ReportRepository) HourlyCounts(ctx context.Context, start, end time.Time) (map[int]int, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]int), args.Error(1)
}

func (m *ReportRepository) PaymentDistribution(ctx context.Context, start, end time.Time) ([]domain.PaymentStat, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentStat), args.Error(1)
}

func (m *ReportRepository) MenuSales(ctx context.Context, start, end time.Time, limit int, ascending bool) ([]domain.MenuSales, error) {
	args := m.Called(ctx, start, end, limit, ascending)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuSales), args.Error(1)
}

func (m *ReportRepository) DailyRevenue(ctx context.Context, date time.Time) (int, error) {
	args := m.Called(ctx, date)
	return args.Int(0), args.Error(1)
}

func (m *ReportRepository) CountByStatus(ctx context.Context, status string, date time.Time) (int, error) {
	args := m.Called(ctx, status, date)
	return args.Int(0), args.Error(1)
}

func (m *ReportRepository) TopItems(ctx context.Context, since time.Time, limit int) ([]domain.TopItem, error) {
	args := m.Called(ctx, since, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TopItem), args.Error(1)
}

func (m *ReportRepository) RecentPaid(ctx context.Context, limit int) ([]domain.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func NewReportRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReportRepository {
	m := &ReportRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
