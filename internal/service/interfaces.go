package service

import (
	"context"
	"time"

	"warung-pos/internal/domain"
	"warung-pos/internal/storage"
)

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, req *CreateOrderRequest) (*OrderResult, error)
	AddItems(ctx context.Context, orderID int, items []ItemInput) (*OrderResult, error)
	VoidItem(ctx context.Context, itemID int) (*VoidResult, error)
	BatchVoid(ctx context.Context, itemIDs []int) (*VoidResult, error)
	Pay(ctx context.Context, orderID int, req *PaymentRequest) (*PaymentResult, error)
	Cancel(ctx context.Context, orderID int) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)
	UnpaidOrders(ctx context.Context) ([]domain.Order, error)
	SyncOrders(ctx context.Context, payloads []domain.OrderPayload) *domain.SyncResponse
	ReceiptQRCode(ctx context.Context, orderID int) ([]byte, error)
}

type MenuServiceInterface interface {
	ListMenus(ctx context.Context) ([]domain.Menu, error)
	CreateMenu(ctx context.Context, menu *domain.Menu) error
	UpdateMenu(ctx context.Context, menu *domain.Menu) error
	DeleteMenu(ctx context.Context, id int) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) error
	UpdateCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, id int) error
}

type ReportServiceInterface interface {
	History(ctx context.Context, date time.Time, search string, page int) (*domain.HistoryPage, error)
	Report(ctx context.Context, start, end time.Time) (*domain.SalesReport, error)
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
	ExportCSV(ctx context.Context, start, end time.Time) ([]byte, error)
	ExportXLSX(ctx context.Context, start, end time.Time) ([]byte, error)
	ExportPDF(ctx context.Context, start, end time.Time) ([]byte, error)
}

// OrderRepository persists orders. Every mutating method is one atomic unit
// of work: the item mutation, the total recalculation and any bulk item
// update commit or roll back together, and status preconditions are enforced
// inside the same unit so two racing operations serialize cleanly.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	GetOrderByUUID(ctx context.Context, uuid string) (*domain.Order, error)
	GetItem(ctx context.Context, itemID int) (*domain.OrderItem, error)
	AppendItems(ctx context.Context, orderID int, items []domain.OrderItem) (int, error)
	VoidItems(ctx context.Context, orderID int, itemIDs []int) (int, error)
	// MarkPaid settles the order only while the locked row still carries
	// expectedTotal; a drifted total returns ErrOrderChanged.
	MarkPaid(ctx context.Context, orderID int, method string, expectedTotal int, paidAt time.Time) error
	MarkCancelled(ctx context.Context, orderID int) error
	UnpaidToday(ctx context.Context) ([]domain.Order, error)
	SaveQRCode(ctx context.Context, orderID int, qr []byte) error
	GetQRCode(ctx context.Context, orderID int) ([]byte, error)
}

type MenuRepository interface {
	GetMenus(ctx context.Context, ids []int) (map[int]domain.Menu, error)
	ListMenus(ctx context.Context) ([]domain.Menu, error)
	CreateMenu(ctx context.Context, menu *domain.Menu) error
	UpdateMenu(ctx context.Context, menu *domain.Menu) error
	DeleteMenu(ctx context.Context, id int) (int64, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) error
	UpdateCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, id int) (int64, error)
}

type ReportRepository interface {
	PaidOrders(ctx context.Context, date time.Time, search string, limit, offset int) ([]domain.Order, int, error)
	PaidOrdersBetween(ctx context.Context, start, end time.Time) ([]domain.Order, error)
	Summary(ctx context.Context, start, end time.Time) (*domain.ReportSummary, error)
	HourlyCounts(ctx context.Context, start, end time.Time) (map[int]int, error)
	PaymentDistribution(ctx context.Context, start, end time.Time) ([]domain.PaymentStat, error)
	MenuSales(ctx context.Context, start, end time.Time, limit int, ascending bool) ([]domain.MenuSales, error)
	DailyRevenue(ctx context.Context, date time.Time) (int, error)
	CountByStatus(ctx context.Context, status string, date time.Time) (int, error)
	TopItems(ctx context.Context, since time.Time, limit int) ([]domain.TopItem, error)
	RecentPaid(ctx context.Context, limit int) ([]domain.Order, error)
}

// ReportCache fronts the dashboard with Redis. DailySales and TopMenusToday
// read the aggregates maintained by the analytics consumer; a miss falls
// back to Postgres.
type ReportCache interface {
	GetDashboard(ctx context.Context) (*domain.DashboardStats, bool)
	SetDashboard(ctx context.Context, stats *domain.DashboardStats) error
	DailySales(ctx context.Context, day string) (revenue, orders int, ok bool)
	TopMenusToday(ctx context.Context, day string, limit int) ([]domain.MenuSales, error)
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

var (
	_ OrderRepository  = (*storage.OrderStore)(nil)
	_ MenuRepository   = (*storage.MenuStore)(nil)
	_ ReportRepository = (*storage.ReportStore)(nil)
	_ ReportCache      = (*storage.ReportRedisCache)(nil)
	_ OrderPublisher   = (*storage.KafkaPublisher)(nil)
	_ QRGenerator      = (*storage.ReceiptQRGenerator)(nil)
)
