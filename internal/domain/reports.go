package domain

import "time"

type HourlyBucket struct {
	Hour  string `json:"hour"`
	Count int    `json:"count"`
}

type PaymentStat struct {
	Method string `json:"method"`
	Count  int    `json:"count"`
	Total  int    `json:"total"`
}

type MenuSales struct {
	Name      string `json:"name"`
	TotalSold int    `json:"total_sold"`
}

type ReportSummary struct {
	TotalTransactions int     `json:"total_transactions"`
	TotalRevenue      int     `json:"total_revenue"`
	AverageOrder      float64 `json:"average_order"`
}

type SalesReport struct {
	Summary        ReportSummary  `json:"summary"`
	HourlyTrend    []HourlyBucket `json:"hourly_trend"`
	PaymentMethods []PaymentStat  `json:"payment_methods"`
	TopMenus       []MenuSales    `json:"top_menus"`
	BottomMenus    []MenuSales    `json:"bottom_menus"`
	StartDate      string         `json:"start_date"`
	EndDate        string         `json:"end_date"`
}

type TopItem struct {
	Name         string `json:"name"`
	TotalQty     int    `json:"total_qty"`
	TotalRevenue int    `json:"total_revenue"`
}

type DashboardStats struct {
	TodayRevenue int         `json:"today_revenue"`
	TodayCount   int         `json:"today_count"`
	ActiveOrders int         `json:"active_orders"`
	Cash         PaymentStat `json:"cash"`
	QRIS         PaymentStat `json:"qris"`
	Transfer     PaymentStat `json:"transfer"`
	ChartLabels  []string    `json:"chart_labels"`
	ChartData    []int       `json:"chart_data"`
	TopItems     []TopItem   `json:"top_items"`
	Recent       []Order     `json:"recent_transactions"`
	GeneratedAt  time.Time   `json:"generated_at"`
}

type HistoryPage struct {
	Transactions []Order `json:"transactions"`
	Page         int     `json:"page"`
	PerPage      int     `json:"per_page"`
	Total        int     `json:"total"`
}
