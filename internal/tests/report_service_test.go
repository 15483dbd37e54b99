package tests

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"warung-pos/internal/domain"
	"warung-pos/internal/mocks"
	"warung-pos/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReportService_History(t *testing.T) {
	repo := mocks.NewReportRepository(t)
	svc := service.NewReportService(repo, nil, "Test Warung")
	ctx := context.Background()

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	orders := []domain.Order{{ID: 7, CustomerName: "Sari", TotalAmount: 32000}}

	t.Run("first_page", func(t *testing.T) {
		repo.On("PaidOrders", ctx, date, "", 15, 0).Return(orders, 31, nil).Once()

		page, err := svc.History(ctx, date, "", 1)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 15, page.PerPage)
		assert.Equal(t, 31, page.Total)
		assert.Len(t, page.Transactions, 1)
	})

	t.Run("third_page_offsets", func(t *testing.T) {
		repo.On("PaidOrders", ctx, date, "Sari", 15, 30).Return([]domain.Order{}, 31, nil).Once()

		page, err := svc.History(ctx, date, "Sari", 3)
		require.NoError(t, err)
		assert.Equal(t, 3, page.Page)
		assert.Empty(t, page.Transactions)
	})

	t.Run("page_floor_is_one", func(t *testing.T) {
		repo.On("PaidOrders", ctx, date, "", 15, 0).Return(orders, 1, nil).Once()

		page, err := svc.History(ctx, date, "", -2)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
	})
}

func TestReportService_Report(t *testing.T) {
	repo := mocks.NewReportRepository(t)
	svc := service.NewReportService(repo, nil, "Test Warung")
	ctx := context.Background()

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	repo.On("Summary", ctx, start, end).Return(&domain.ReportSummary{
		TotalTransactions: 120, TotalRevenue: 3600000, AverageOrder: 30000,
	}, nil).Once()
	repo.On("HourlyCounts", ctx, start, end).Return(map[int]int{12: 40, 19: 55}, nil).Once()
	repo.On("PaymentDistribution", ctx, start, end).Return([]domain.PaymentStat{
		{Method: domain.PaymentCash, Count: 80, Total: 2400000},
	}, nil).Once()
	repo.On("MenuSales", ctx, start, end, 5, false).Return([]domain.MenuSales{
		{Name: "Bakmi Ayam", TotalSold: 200},
	}, nil).Once()
	repo.On("MenuSales", ctx, start, end, 5, true).Return([]domain.MenuSales{
		{Name: "Bakmi Godog", TotalSold: 4},
	}, nil).Once()

	report, err := svc.Report(ctx, start, end)
	require.NoError(t, err)

	assert.Equal(t, 120, report.Summary.TotalTransactions)
	require.Len(t, report.HourlyTrend, 24)
	assert.Equal(t, domain.HourlyBucket{Hour: "12:00", Count: 40}, report.HourlyTrend[12])
	assert.Equal(t, domain.HourlyBucket{Hour: "03:00", Count: 0}, report.HourlyTrend[3])
	assert.Equal(t, "Bakmi Ayam", report.TopMenus[0].Name)
	assert.Equal(t, "Bakmi Godog", report.BottomMenus[0].Name)
	assert.Equal(t, "2025-03-01", report.StartDate)
}

func TestReportService_Dashboard_CacheHit(t *testing.T) {
	repo := mocks.NewReportRepository(t)
	cache := mocks.NewReportCache(t)
	svc := service.NewReportService(repo, cache, "Test Warung")
	ctx := context.Background()

	cache.On("GetDashboard", ctx).Return(&domain.DashboardStats{TodayRevenue: 320000}, true).Once()

	stats, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 320000, stats.TodayRevenue)
	repo.AssertNotCalled(t, "DailyRevenue")
}

func TestReportService_Dashboard_CountersWithDBFallback(t *testing.T) {
	repo := mocks.NewReportRepository(t)
	cache := mocks.NewReportCache(t)
	svc := service.NewReportService(repo, cache, "Test Warung")
	ctx := context.Background()

	day := time.Now().Format("2006-01-02")

	cache.On("GetDashboard", ctx).Return(nil, false).Once()
	// Consumer counters cover today's headline numbers.
	cache.On("DailySales", ctx, day).Return(480000, 16, true).Once()
	repo.On("CountByStatus", ctx, domain.StatusUnpaid, mock.Anything).Return(3, nil).Once()
	repo.On("PaymentDistribution", ctx, mock.Anything, mock.Anything).Return([]domain.PaymentStat{
		{Method: domain.PaymentQRIS, Count: 6, Total: 180000},
	}, nil).Once()
	repo.On("DailyRevenue", ctx, mock.Anything).Return(50000, nil).Times(7)
	repo.On("TopItems", ctx, mock.Anything, 5).Return([]domain.TopItem{
		{Name: "Bakmi Ayam", TotalQty: 60, TotalRevenue: 960000},
	}, nil).Once()
	repo.On("RecentPaid", ctx, 5).Return([]domain.Order{{ID: 7}}, nil).Once()
	cache.On("SetDashboard", ctx, mock.Anything).Return(nil).Once()

	stats, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 480000, stats.TodayRevenue)
	assert.Equal(t, 16, stats.TodayCount)
	assert.Equal(t, 3, stats.ActiveOrders)
	assert.Equal(t, 180000, stats.QRIS.Total)
	assert.Equal(t, domain.PaymentCash, stats.Cash.Method)
	assert.Len(t, stats.ChartData, 7)
	assert.Len(t, stats.ChartLabels, 7)
	assert.Equal(t, "Bakmi Ayam", stats.TopItems[0].Name)
}

func TestReportService_Dashboard_NoCounters(t *testing.T) {
	repo := mocks.NewReportRepository(t)
	cache := mocks.NewReportCache(t)
	svc := service.NewReportService(repo, cache, "Test Warung")
	ctx := context.Background()

	day := time.Now().Format("2006-01-02")

	cache.On("GetDashboard", ctx).Return(nil, false).Once()
	cache.On("DailySales", ctx, day).Return(0, 0, false).Once()
	// Falls back to Postgres for today's numbers. DailyRevenue is also used
	// for the 7-day chart, today included.
	repo.On("DailyRevenue", ctx, mock.Anything).Return(120000, nil).Times(8)
	repo.On("CountByStatus", ctx, domain.StatusPaid, mock.Anything).Return(4, nil).Once()
	repo.On("CountByStatus", ctx, domain.StatusUnpaid, mock.Anything).Return(1, nil).Once()
	repo.On("PaymentDistribution", ctx, mock.Anything, mock.Anything).Return([]domain.PaymentStat{}, nil).Once()
	repo.On("TopItems", ctx, mock.Anything, 5).Return([]domain.TopItem{}, nil).Once()
	repo.On("RecentPaid", ctx, 5).Return([]domain.Order{}, nil).Once()
	cache.On("SetDashboard", ctx, mock.Anything).Return(nil).Once()

	stats, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 120000, stats.TodayRevenue)
	assert.Equal(t, 4, stats.TodayCount)
}

func TestReportService_ExportCSV(t *testing.T) {
	repo := mocks.NewReportRepository(t)
	svc := service.NewReportService(repo, nil, "Test Warung")
	ctx := context.Background()

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	createdAt := time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC)

	repo.On("PaidOrdersBetween", ctx, start, end).Return([]domain.Order{
		{ID: 7, CustomerName: "Sari", PaymentMethod: domain.PaymentCash, TotalAmount: 32000, Status: domain.StatusPaid, CreatedAt: createdAt},
		{ID: 8, CustomerName: "Joko", PaymentMethod: domain.PaymentQRIS, TotalAmount: 16000, Status: domain.StatusPaid, CreatedAt: createdAt},
	}, nil).Once()

	csvData, err := svc.ExportCSV(ctx, start, end)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(csvData)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID,Date,Time,Customer,Payment Method,Total,Status", lines[0])
	assert.Contains(t, lines[1], "#7")
	assert.Contains(t, lines[1], "10/03/2025")
	assert.Contains(t, lines[1], "CASH")
	assert.Contains(t, lines[3], "GRAND TOTAL")
	assert.Contains(t, lines[3], "48000")
}

func TestReportService_ExportXLSX(t *testing.T) {
	repo := mocks.NewReportRepository(t)
	svc := service.NewReportService(repo, nil, "Test Warung")
	ctx := context.Background()

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	createdAt := time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC)

	repo.On("PaidOrdersBetween", ctx, start, end).Return([]domain.Order{
		{ID: 7, CustomerName: "Sari", PaymentMethod: domain.PaymentCash, TotalAmount: 32000, Status: domain.StatusPaid, CreatedAt: createdAt},
		{ID: 8, CustomerName: "Joko", PaymentMethod: domain.PaymentQRIS, TotalAmount: 16000, Status: domain.StatusPaid, CreatedAt: createdAt},
	}, nil).Once()

	data, err := svc.ExportXLSX(ctx, start, end)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)

	firstID, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "#7", firstID)

	method, err := f.GetCellValue(sheet, "E2")
	require.NoError(t, err)
	assert.Equal(t, "CASH", method)

	label, err := f.GetCellValue(sheet, "E4")
	require.NoError(t, err)
	assert.Equal(t, "GRAND TOTAL", label)
	grand, err := f.GetCellValue(sheet, "F4")
	require.NoError(t, err)
	assert.Equal(t, "48000", grand)
}

func TestReportService_ExportPDF(t *testing.T) {
	repo := mocks.NewReportRepository(t)
	svc := service.NewReportService(repo, nil, "Test Warung")
	ctx := context.Background()

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)
	createdAt := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)

	repo.On("PaidOrdersBetween", ctx, start, end).Return([]domain.Order{
		{
			ID: 7, UUID: "a1b2c3d4-0000", CustomerName: "Sari",
			PaymentMethod: domain.PaymentCash, TotalAmount: 32000,
			Status: domain.StatusPaid, CreatedAt: createdAt,
			Items: []domain.OrderItem{
				{MenuName: "Bakmi Ayam", Quantity: 2, Subtotal: 32000, Status: domain.ItemActive},
			},
		},
	}, nil).Once()

	data, err := svc.ExportPDF(ctx, start, end)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Greater(t, len(data), 500)
}
