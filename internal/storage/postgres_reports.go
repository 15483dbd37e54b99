package storage

import (
	"context"
	"database/sql"
	"time"

	"warung-pos/internal/domain"
)

// ReportStore runs the read-only aggregation queries over paid orders.
type ReportStore struct {
	DB *sql.DB
}

func NewReportStore(db *sql.DB) *ReportStore {
	return &ReportStore{DB: db}
}

func (s *ReportStore) PaidOrders(ctx context.Context, date time.Time, search string, limit, offset int) ([]domain.Order, int, error) {
	day := date.Format("2006-01-02")
	pattern := "%" + search + "%"

	var total int
	err := s.DB.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM orders
		WHERE status = 'paid' AND created_at::date = $1 AND customer_name ILIKE $2
	`, day, pattern).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = 'paid' AND created_at::date = $1 AND customer_name ILIKE $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`, day, pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	itemStore := &OrderStore{DB: s.DB}
	for i := range orders {
		items, err := itemStore.loadItems(ctx, orders[i].ID)
		if err != nil {
			return nil, 0, err
		}
		orders[i].Items = items
	}
	return orders, total, nil
}

func (s *ReportStore) PaidOrdersBetween(ctx context.Context, start, end time.Time) ([]domain.Order, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = 'paid' AND created_at BETWEEN $1 AND $2
		ORDER BY created_at DESC
	`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (s *ReportStore) Summary(ctx context.Context, start, end time.Time) (*domain.ReportSummary, error) {
	var summary domain.ReportSummary
	err := s.DB.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0), COALESCE(AVG(total_amount), 0)
		FROM orders
		WHERE status = 'paid' AND created_at BETWEEN $1 AND $2
	`, start, end).Scan(&summary.TotalTransactions, &summary.TotalRevenue, &summary.AverageOrder)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *ReportStore) HourlyCounts(ctx context.Context, start, end time.Time) (map[int]int, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT EXTRACT(HOUR FROM created_at)::int AS hour, COUNT(*)
		FROM orders
		WHERE status = 'paid' AND created_at BETWEEN $1 AND $2
		GROUP BY hour
	`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[int]int{}
	for rows.Next() {
		var hour, count int
		if err := rows.Scan(&hour, &count); err != nil {
			return nil, err
		}
		counts[hour] = count
	}
	return counts, rows.Err()
}

func (s *ReportStore) PaymentDistribution(ctx context.Context, start, end time.Time) ([]domain.PaymentStat, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT payment_method, COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE status = 'paid' AND created_at BETWEEN $1 AND $2
		GROUP BY payment_method
	`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []domain.PaymentStat{}
	for rows.Next() {
		var stat domain.PaymentStat
		if err := rows.Scan(&stat.Method, &stat.Count, &stat.Total); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}

func (s *ReportStore) MenuSales(ctx context.Context, start, end time.Time, limit int, ascending bool) ([]domain.MenuSales, error) {
	direction := "DESC"
	if ascending {
		direction = "ASC"
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT oi.menu_name, SUM(oi.quantity) AS total_sold
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.id
		WHERE o.status = 'paid' AND oi.status = 'active' AND o.created_at BETWEEN $1 AND $2
		GROUP BY oi.menu_name
		ORDER BY total_sold `+direction+`
		LIMIT $3
	`, start, end, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := []domain.MenuSales{}
	for rows.Next() {
		var sale domain.MenuSales
		if err := rows.Scan(&sale.Name, &sale.TotalSold); err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}
	return sales, rows.Err()
}

func (s *ReportStore) DailyRevenue(ctx context.Context, date time.Time) (int, error) {
	var revenue int
	err := s.DB.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE status = 'paid' AND created_at::date = $1
	`, date.Format("2006-01-02")).Scan(&revenue)
	return revenue, err
}

func (s *ReportStore) CountByStatus(ctx context.Context, status string, date time.Time) (int, error) {
	var count int
	err := s.DB.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM orders
		WHERE status = $1 AND created_at::date = $2
	`, status, date.Format("2006-01-02")).Scan(&count)
	return count, err
}

func (s *ReportStore) TopItems(ctx context.Context, since time.Time, limit int) ([]domain.TopItem, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT oi.menu_name, SUM(oi.quantity) AS total_qty, SUM(oi.subtotal) AS total_revenue
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.id
		WHERE o.status = 'paid' AND oi.status = 'active' AND o.created_at >= $1
		GROUP BY oi.menu_name
		ORDER BY total_qty DESC
		LIMIT $2
	`, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.TopItem{}
	for rows.Next() {
		var item domain.TopItem
		if err := rows.Scan(&item.Name, &item.TotalQty, &item.TotalRevenue); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *ReportStore) RecentPaid(ctx context.Context, limit int) ([]domain.Order, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = 'paid'
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}
