package mocks

import (
	"context"
	"time"

	"warung-pos/internal/domain"

	"github.com/stretchr/testify/mock"
)

// ReportService is a mock type for the service.ReportServiceInterface interface.
type ReportService struct {
	mock.Mock
}

func (m *ReportService) History(ctx context.Context, date time.Time, search string, page int) (*domain.HistoryPage, error) {
	args := m.Called(ctx, date, search, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HistoryPage), args.Error(1)
}

func (m *ReportService) Report(ctx context.Context, start, end time.Time) (*domain.SalesReport, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesReport), args.Error(1)
}

func (m *ReportService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *ReportService) ExportCSV(ctx context.Context, start, end time.Time) ([]byte, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *ReportService) ExportXLSX(ctx context.Context, start, end time.Time) ([]byte, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *ReportService) ExportPDF(ctx context.Context, start, end time.Time) ([]byte, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func NewReportService(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReportService {
	m := &ReportService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
