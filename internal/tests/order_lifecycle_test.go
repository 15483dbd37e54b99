package tests

import (
	"context"
	"sync"
	"testing"
	"time"

	"warung-pos/internal/domain"
	"warung-pos/internal/mocks"
	"warung-pos/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memOrderRepo is an in-memory OrderRepository. It mirrors the storage
// contract: every mutation recalculates the order total before returning, and
// status transitions are checked against the stored row.
type memOrderRepo struct {
	mu       sync.Mutex
	nextItem int
	nextID   int
	orders   map[int]*domain.Order
	byUUID   map[string]int
	qrCodes  map[int][]byte
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{
		nextItem: 100,
		orders:   map[int]*domain.Order{},
		byUUID:   map[string]int{},
		qrCodes:  map[int][]byte{},
	}
}

func (r *memOrderRepo) CreateOrder(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	order.ID = r.nextID
	for i := range order.Items {
		r.nextItem++
		order.Items[i].ID = r.nextItem
		order.Items[i].OrderID = order.ID
	}
	order.RecalculateTotal()

	stored := *order
	stored.Items = append([]domain.OrderItem(nil), order.Items...)
	r.orders[order.ID] = &stored
	r.byUUID[order.UUID] = order.ID
	return nil
}

func (r *memOrderRepo) get(id int) (*domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *order
	clone.Items = append([]domain.OrderItem(nil), order.Items...)
	return &clone, nil
}

func (r *memOrderRepo) GetOrder(_ context.Context, id int) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(id)
}

func (r *memOrderRepo) GetOrderByUUID(_ context.Context, uuid string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byUUID[uuid]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return r.get(id)
}

func (r *memOrderRepo) GetItem(_ context.Context, itemID int) (*domain.OrderItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, order := range r.orders {
		for _, item := range order.Items {
			if item.ID == itemID {
				clone := item
				return &clone, nil
			}
		}
	}
	return nil, domain.ErrItemNotFound
}

func (r *memOrderRepo) AppendItems(_ context.Context, orderID int, items []domain.OrderItem) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return 0, domain.ErrOrderNotFound
	}
	if order.Status != domain.StatusUnpaid {
		return 0, domain.ClosedOrderError(order.Status)
	}
	for _, item := range items {
		r.nextItem++
		item.ID = r.nextItem
		item.OrderID = orderID
		order.Items = append(order.Items, item)
	}
	order.RecalculateTotal()
	return len(items), nil
}

func (r *memOrderRepo) VoidItems(_ context.Context, orderID int, itemIDs []int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return 0, domain.ErrOrderNotFound
	}
	if order.Status != domain.StatusUnpaid {
		return 0, domain.ClosedOrderError(order.Status)
	}
	voided := 0
	for _, itemID := range itemIDs {
		for i := range order.Items {
			if order.Items[i].ID == itemID && order.Items[i].Status == domain.ItemActive {
				order.Items[i].Status = domain.ItemVoid
				voided++
			}
		}
	}
	if voided == 0 {
		return 0, domain.ErrItemVoided
	}
	order.RecalculateTotal()
	return voided, nil
}

func (r *memOrderRepo) MarkPaid(_ context.Context, orderID int, method string, expectedTotal int, paidAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if order.Status != domain.StatusUnpaid {
		return domain.ClosedOrderError(order.Status)
	}
	if order.TotalAmount != expectedTotal {
		return domain.ErrOrderChanged
	}
	order.Status = domain.StatusPaid
	order.PaymentMethod = method
	order.PaidAt = &paidAt
	for i := range order.Items {
		order.Items[i].IsPrinted = true
	}
	return nil
}

func (r *memOrderRepo) MarkCancelled(_ context.Context, orderID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if order.Status != domain.StatusUnpaid {
		return domain.ClosedOrderError(order.Status)
	}
	order.Status = domain.StatusCancelled
	return nil
}

func (r *memOrderRepo) UnpaidToday(_ context.Context) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var unpaid []domain.Order
	for _, order := range r.orders {
		if order.Status == domain.StatusUnpaid {
			unpaid = append(unpaid, *order)
		}
	}
	return unpaid, nil
}

func (r *memOrderRepo) SaveQRCode(_ context.Context, orderID int, qr []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.qrCodes[orderID] = qr
	return nil
}

func (r *memOrderRepo) GetQRCode(_ context.Context, orderID int) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[orderID]; !ok {
		return nil, domain.ErrOrderNotFound
	}
	return r.qrCodes[orderID], nil
}

var _ service.OrderRepository = (*memOrderRepo)(nil)

// TestOrderLifecycle walks one order through the full cashier flow: open with
// two portions, add a drink, void it again, settle in cash and verify the
// order is immutable afterwards.
func TestOrderLifecycle(t *testing.T) {
	ctx := context.Background()

	repo := newMemOrderRepo()
	menus := mocks.NewMenuRepository(t)
	publisher := mocks.NewOrderPublisher(t)
	qr := mocks.NewQRGenerator(t)

	menus.On("GetMenus", mock.Anything, mock.Anything).Return(map[int]domain.Menu{
		1: {ID: 1, Name: "Bakmi Ayam", Price: 16000, IsAvailable: true},
		2: {ID: 2, Name: "Es Teh", Price: 8000, IsAvailable: true},
	}, nil)
	publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil)
	qr.On("Generate", mock.Anything).Return([]byte("png-bytes"), nil)

	svc := service.NewOrderService(repo, menus, publisher, qr, service.NewReceiptFormatter("Test Warung", "Budi"))

	created, err := svc.CreateOrder(ctx, &service.CreateOrderRequest{
		CustomerName: "Sari",
		Items:        []service.ItemInput{{MenuID: 1, Quantity: 2}},
	})
	require.NoError(t, err)
	orderID := created.Order.ID
	assert.Equal(t, 32000, created.Order.TotalAmount)
	assert.Equal(t, domain.StatusUnpaid, created.Order.Status)

	added, err := svc.AddItems(ctx, orderID, []service.ItemInput{{MenuID: 2, Quantity: 1}})
	require.NoError(t, err)
	assert.Equal(t, 40000, added.Order.TotalAmount)
	assert.Equal(t, "** ADDITIONAL **", added.Receipt.Subtitle)

	drinkItemID := 0
	for _, item := range added.Order.Items {
		if item.MenuID == 2 {
			drinkItemID = item.ID
		}
	}
	require.NotZero(t, drinkItemID)

	voidResult, err := svc.VoidItem(ctx, drinkItemID)
	require.NoError(t, err)
	assert.Equal(t, 32000, voidResult.Order.TotalAmount)
	assert.Equal(t, 32000, voidResult.Order.ActiveTotal())

	// Voiding the same item twice is rejected.
	_, err = svc.VoidItem(ctx, drinkItemID)
	assert.ErrorIs(t, err, domain.ErrItemVoided)

	paid, err := svc.Pay(ctx, orderID, &service.PaymentRequest{
		Method:       domain.PaymentCash,
		CashReceived: 40000,
	})
	require.NoError(t, err)
	assert.Equal(t, 8000, paid.Change)
	assert.Equal(t, domain.StatusPaid, paid.Order.Status)
	for _, item := range paid.Order.Items {
		assert.True(t, item.IsPrinted)
	}

	// A settled order accepts no further mutation.
	_, err = svc.AddItems(ctx, orderID, []service.ItemInput{{MenuID: 2, Quantity: 1}})
	assert.ErrorIs(t, err, domain.ErrOrderPaid)
	_, err = svc.Cancel(ctx, orderID)
	assert.ErrorIs(t, err, domain.ErrOrderPaid)

	stored, err := svc.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, 32000, stored.TotalAmount)
	assert.Equal(t, stored.ActiveTotal(), stored.TotalAmount)

	code, err := svc.ReceiptQRCode(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), code)
}

// racingOrderRepo commits one extra item right before the settlement, the
// same interleaving as a waiter adding to the order while the cashier keys
// in the payment.
type racingOrderRepo struct {
	*memOrderRepo
	extra    domain.OrderItem
	injected bool
}

func (r *racingOrderRepo) MarkPaid(ctx context.Context, orderID int, method string, expectedTotal int, paidAt time.Time) error {
	if !r.injected {
		r.injected = true
		if _, err := r.memOrderRepo.AppendItems(ctx, orderID, []domain.OrderItem{r.extra}); err != nil {
			return err
		}
	}
	return r.memOrderRepo.MarkPaid(ctx, orderID, method, expectedTotal, paidAt)
}

// TestOrderLifecycle_PayRejectsStaleTotal covers the window between the
// cashier's quote and the settlement: an addition landing in between must
// abort the payment instead of settling below the real total.
func TestOrderLifecycle_PayRejectsStaleTotal(t *testing.T) {
	ctx := context.Background()

	extra := domain.OrderItem{MenuID: 2, MenuName: "Es Teh", Quantity: 1, Price: 8000, Subtotal: 8000, Status: domain.ItemActive}
	repo := &racingOrderRepo{memOrderRepo: newMemOrderRepo(), extra: extra}
	menus := mocks.NewMenuRepository(t)

	menus.On("GetMenus", mock.Anything, mock.Anything).Return(map[int]domain.Menu{
		1: {ID: 1, Name: "Bakmi Ayam", Price: 16000, IsAvailable: true},
	}, nil)

	svc := service.NewOrderService(repo, menus, nil, nil, service.NewReceiptFormatter("Test Warung", "Budi"))

	created, err := svc.CreateOrder(ctx, &service.CreateOrderRequest{
		CustomerName: "Sari",
		Items:        []service.ItemInput{{MenuID: 1, Quantity: 2}},
	})
	require.NoError(t, err)
	orderID := created.Order.ID
	require.Equal(t, 32000, created.Order.TotalAmount)

	_, err = svc.Pay(ctx, orderID, &service.PaymentRequest{
		Method:       domain.PaymentCash,
		CashReceived: 32000,
	})
	assert.ErrorIs(t, err, domain.ErrOrderChanged)

	// The order stays open with the grown total and can be settled in full.
	stored, err := svc.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnpaid, stored.Status)
	assert.Equal(t, 40000, stored.TotalAmount)

	paid, err := svc.Pay(ctx, orderID, &service.PaymentRequest{
		Method:       domain.PaymentCash,
		CashReceived: 40000,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, paid.Change)
	assert.Equal(t, domain.StatusPaid, paid.Order.Status)
	assert.Len(t, paid.Receipt.Items, 2)
	assert.Equal(t, 40000, paid.Receipt.Total)
}

// TestOrderLifecycle_OfflineReplay resubmits a mixed offline batch and checks
// that only genuinely new orders are created while known uuids are absorbed.
func TestOrderLifecycle_OfflineReplay(t *testing.T) {
	ctx := context.Background()

	repo := newMemOrderRepo()
	menus := mocks.NewMenuRepository(t)

	menus.On("GetMenus", mock.Anything, mock.Anything).Return(map[int]domain.Menu{
		1: {ID: 1, Name: "Bakmi Ayam", Price: 16000, IsAvailable: true},
	}, nil)

	svc := service.NewOrderService(repo, menus, nil, nil, service.NewReceiptFormatter("Test Warung", "Budi"))

	batch := []domain.OrderPayload{
		{
			UUID:         "offline-1",
			CustomerName: "Sari",
			Items:        []domain.PayloadItem{{MenuID: 1, Quantity: 1, Price: 15000, Subtotal: 15000}},
			CreatedAt:    time.Now().Add(-2 * time.Hour),
		},
		{
			UUID:         "offline-2",
			CustomerName: "Joko",
			Items:        []domain.PayloadItem{{MenuID: 1, Quantity: 2, Price: 16000, Subtotal: 32000}},
			CreatedAt:    time.Now().Add(-time.Hour),
		},
	}

	first := svc.SyncOrders(ctx, batch)
	assert.Equal(t, 2, first.SyncedCount)
	assert.Empty(t, first.FailedUUIDs)

	// The same batch again must not duplicate anything.
	second := svc.SyncOrders(ctx, batch)
	assert.Equal(t, 2, second.SyncedCount)
	assert.Empty(t, second.FailedUUIDs)

	order, err := repo.GetOrderByUUID(ctx, "offline-1")
	require.NoError(t, err)
	// Price snapshot from the terminal survives, not today's menu price.
	assert.Equal(t, 15000, order.TotalAmount)

	unpaid, err := repo.UnpaidToday(ctx)
	require.NoError(t, err)
	assert.Len(t, unpaid, 2)
}
