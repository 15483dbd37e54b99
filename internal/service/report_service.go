package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"warung-pos/internal/domain"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
)

const historyPerPage = 15

const exportDateFormat = "02/01/2006"

// ReportService aggregates paid orders for the history, reports and
// dashboard views. The dashboard is fronted by a short-lived Redis cache,
// and today's numbers prefer the aggregates maintained by the analytics
// consumer, falling back to Postgres.
type ReportService struct {
	repo      ReportRepository
	cache     ReportCache
	storeName string
}

func NewReportService(repo ReportRepository, cache ReportCache, storeName string) *ReportService {
	return &ReportService{repo: repo, cache: cache, storeName: storeName}
}

func (s *ReportService) History(ctx context.Context, date time.Time, search string, page int) (*domain.HistoryPage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * historyPerPage

	orders, total, err := s.repo.PaidOrders(ctx, date, search, historyPerPage, offset)
	if err != nil {
		return nil, err
	}

	return &domain.HistoryPage{
		Transactions: orders,
		Page:         page,
		PerPage:      historyPerPage,
		Total:        total,
	}, nil
}

func (s *ReportService) Report(ctx context.Context, start, end time.Time) (*domain.SalesReport, error) {
	summary, err := s.repo.Summary(ctx, start, end)
	if err != nil {
		return nil, err
	}

	hourly, err := s.repo.HourlyCounts(ctx, start, end)
	if err != nil {
		return nil, err
	}
	trend := make([]domain.HourlyBucket, 24)
	for hour := 0; hour < 24; hour++ {
		trend[hour] = domain.HourlyBucket{
			Hour:  fmt.Sprintf("%02d:00", hour),
			Count: hourly[hour],
		}
	}

	payments, err := s.repo.PaymentDistribution(ctx, start, end)
	if err != nil {
		return nil, err
	}

	top, err := s.repo.MenuSales(ctx, start, end, 5, false)
	if err != nil {
		return nil, err
	}
	bottom, err := s.repo.MenuSales(ctx, start, end, 5, true)
	if err != nil {
		return nil, err
	}

	return &domain.SalesReport{
		Summary:        *summary,
		HourlyTrend:    trend,
		PaymentMethods: payments,
		TopMenus:       top,
		BottomMenus:    bottom,
		StartDate:      start.Format("2006-01-02"),
		EndDate:        end.Format("2006-01-02"),
	}, nil
}

func (s *ReportService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	if s.cache != nil {
		if cached, ok := s.cache.GetDashboard(ctx); ok {
			return cached, nil
		}
	}

	today := time.Now()
	day := today.Format("2006-01-02")
	stats := &domain.DashboardStats{GeneratedAt: today}

	// Today's headline numbers: prefer the consumer-maintained counters.
	var haveCounters bool
	if s.cache != nil {
		if revenue, orders, ok := s.cache.DailySales(ctx, day); ok {
			stats.TodayRevenue = revenue
			stats.TodayCount = orders
			haveCounters = true
		}
	}
	if !haveCounters {
		revenue, err := s.repo.DailyRevenue(ctx, today)
		if err != nil {
			return nil, err
		}
		count, err := s.repo.CountByStatus(ctx, domain.StatusPaid, today)
		if err != nil {
			return nil, err
		}
		stats.TodayRevenue = revenue
		stats.TodayCount = count
	}

	active, err := s.repo.CountByStatus(ctx, domain.StatusUnpaid, today)
	if err != nil {
		return nil, err
	}
	stats.ActiveOrders = active

	startOfDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	payments, err := s.repo.PaymentDistribution(ctx, startOfDay, startOfDay.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	for _, stat := range payments {
		switch stat.Method {
		case domain.PaymentCash:
			stats.Cash = stat
		case domain.PaymentQRIS:
			stats.QRIS = stat
		case domain.PaymentTransfer:
			stats.Transfer = stat
		}
	}
	stats.Cash.Method = domain.PaymentCash
	stats.QRIS.Method = domain.PaymentQRIS
	stats.Transfer.Method = domain.PaymentTransfer

	// Revenue for the last seven days, oldest first.
	for i := 6; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		revenue, err := s.repo.DailyRevenue(ctx, date)
		if err != nil {
			return nil, err
		}
		stats.ChartLabels = append(stats.ChartLabels, date.Format("Mon"))
		stats.ChartData = append(stats.ChartData, revenue)
	}

	topItems, err := s.repo.TopItems(ctx, today.AddDate(0, 0, -30), 5)
	if err != nil {
		return nil, err
	}
	stats.TopItems = topItems

	recent, err := s.repo.RecentPaid(ctx, 5)
	if err != nil {
		return nil, err
	}
	stats.Recent = recent

	if s.cache != nil {
		_ = s.cache.SetDashboard(ctx, stats)
	}

	return stats, nil
}

// ExportCSV renders paid transactions in a date range as a CSV document.
func (s *ReportService) ExportCSV(ctx context.Context, start, end time.Time) ([]byte, error) {
	orders, err := s.repo.PaidOrdersBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"ID", "Date", "Time", "Customer", "Payment Method", "Total", "Status"}); err != nil {
		return nil, err
	}

	grandTotal := 0
	for _, order := range orders {
		record := []string{
			"#" + strconv.Itoa(order.ID),
			order.CreatedAt.Format("02/01/2006"),
			order.CreatedAt.Format("15:04"),
			order.CustomerName,
			strings.ToUpper(order.PaymentMethod),
			strconv.Itoa(order.TotalAmount),
			order.Status,
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
		grandTotal += order.TotalAmount
	}

	if err := writer.Write([]string{"", "", "", "", "GRAND TOTAL", strconv.Itoa(grandTotal), ""}); err != nil {
		return nil, err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportXLSX renders the same transaction listing as a spreadsheet with a
// bold header row.
func (s *ReportService) ExportXLSX(ctx context.Context, start, end time.Time) ([]byte, error) {
	orders, err := s.repo.PaidOrdersBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{
		"ID", "Date", "Time", "Customer", "Payment Method", "Total", "Status",
	}); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return nil, err
	}

	grandTotal := 0
	for i, order := range orders {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &[]interface{}{
			"#" + strconv.Itoa(order.ID),
			order.CreatedAt.Format(exportDateFormat),
			order.CreatedAt.Format("15:04"),
			order.CustomerName,
			strings.ToUpper(order.PaymentMethod),
			order.TotalAmount,
			order.Status,
		}); err != nil {
			return nil, err
		}
		grandTotal += order.TotalAmount
	}

	cell, err := excelize.CoordinatesToCellName(1, len(orders)+2)
	if err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, cell, &[]interface{}{
		"", "", "", "", "GRAND TOTAL", grandTotal, "",
	}); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportPDF renders the printable daily transaction report: one table row
// per paid order with its active items, closed by the grand total.
func (s *ReportService) ExportPDF(ctx context.Context, start, end time.Time) ([]byte, error) {
	orders, err := s.repo.PaidOrdersBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, s.storeName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Daily Transaction Report", "", 1, "C", false, 0, "")
	pdf.Ln(2)
	period := fmt.Sprintf("Period: %s - %s",
		start.Format(exportDateFormat), end.AddDate(0, 0, -1).Format(exportDateFormat))
	pdf.CellFormat(0, 6, period, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	widths := []float64{10, 30, 22, 30, 60, 28, 18}
	headers := []string{"No", "Date", "Invoice", "Customer", "Items", "Total", "Paid"}
	pdf.SetFont("Helvetica", "B", 8)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	grandTotal := 0
	for i, order := range orders {
		var names []string
		for _, item := range order.ActiveItems() {
			names = append(names, fmt.Sprintf("%s x%d", item.MenuName, item.Quantity))
		}
		row := []string{
			strconv.Itoa(i + 1),
			order.CreatedAt.Format(exportDateFormat + " 15:04"),
			strings.ToUpper(order.OrderNumber()),
			order.CustomerName,
			strings.Join(names, ", "),
			"Rp " + formatRupiah(order.TotalAmount),
			strings.ToUpper(order.PaymentMethod),
		}
		for j, value := range row {
			pdf.CellFormat(widths[j], 6, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		grandTotal += order.TotalAmount
	}
	if len(orders) == 0 {
		pdf.CellFormat(198, 6, "No transactions in this period", "1", 1, "C", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, "GRAND TOTAL: Rp "+formatRupiah(grandTotal), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatRupiah groups digits with dots, the Indonesian thousand separator.
func formatRupiah(amount int) string {
	digits := strconv.Itoa(amount)
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

var _ ReportServiceInterface = (*ReportService)(nil)
