package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"warung-pos/internal/domain"

	"github.com/google/uuid"
)

type ItemInput struct {
	MenuID   int `json:"menu_id"`
	Quantity int `json:"quantity"`
	// Price is the client-side snapshot; nil means snapshot the current menu
	// price server-side.
	Price *int `json:"price,omitempty"`
}

type CreateOrderRequest struct {
	UUID         string      `json:"uuid,omitempty"`
	CustomerName string      `json:"customer_name"`
	Items        []ItemInput `json:"items"`
	CreatedAt    time.Time   `json:"created_at,omitempty"`
}

type PaymentRequest struct {
	Method       string `json:"payment_method"`
	CashReceived int    `json:"cash_received"`
}

type OrderResult struct {
	Order   *domain.Order   `json:"order"`
	Receipt *domain.Receipt `json:"print_job,omitempty"`
}

type VoidResult struct {
	Order    *domain.Order      `json:"order"`
	Voided   []domain.OrderItem `json:"voided_items"`
	Receipts []domain.Receipt   `json:"print_jobs,omitempty"`
}

type PaymentResult struct {
	Order   *domain.Order   `json:"order"`
	Change  int             `json:"change"`
	Receipt *domain.Receipt `json:"print_job,omitempty"`
}

// OrderService is the only component that transitions order status or
// mutates an order's item set.
type OrderService struct {
	orders    OrderRepository
	menus     MenuRepository
	publisher OrderPublisher
	qrEncoder QRGenerator
	receipts  *ReceiptFormatter
}

func NewOrderService(orders OrderRepository, menus MenuRepository, publisher OrderPublisher, qr QRGenerator, receipts *ReceiptFormatter) *OrderService {
	return &OrderService{
		orders:    orders,
		menus:     menus,
		publisher: publisher,
		qrEncoder: qr,
		receipts:  receipts,
	}
}

// buildItems validates inputs against the menu catalog and materializes line
// items with price snapshots and derived subtotals.
func (s *OrderService) buildItems(ctx context.Context, inputs []ItemInput) ([]domain.OrderItem, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	ids := make([]int, 0, len(inputs))
	for _, input := range inputs {
		if input.Quantity < 1 {
			return nil, domain.ErrInvalidQuantity
		}
		if input.Price != nil && *input.Price < 0 {
			return nil, domain.ErrInvalidPrice
		}
		ids = append(ids, input.MenuID)
	}

	menus, err := s.menus.GetMenus(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load menus: %w", err)
	}

	items := make([]domain.OrderItem, 0, len(inputs))
	for _, input := range inputs {
		menu, ok := menus[input.MenuID]
		if !ok {
			return nil, fmt.Errorf("menu %d: %w", input.MenuID, domain.ErrMenuNotFound)
		}
		if !menu.IsAvailable {
			return nil, fmt.Errorf("menu %q: %w", menu.Name, domain.ErrMenuUnavailable)
		}

		price := menu.Price
		if input.Price != nil {
			price = *input.Price
		}

		item := domain.OrderItem{
			MenuID:   menu.ID,
			MenuName: menu.Name,
			Quantity: input.Quantity,
			Price:    price,
			Status:   domain.ItemActive,
		}
		item.ComputeSubtotal()
		items = append(items, item)
	}
	return items, nil
}

// CreateOrder opens a new unpaid order with its initial items and returns
// the kitchen ticket for them. All writes commit or roll back as one unit.
func (s *OrderService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*OrderResult, error) {
	if req.CustomerName == "" {
		return nil, domain.ErrCustomerRequired
	}

	items, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		UUID:         req.UUID,
		CustomerName: req.CustomerName,
		Status:       domain.StatusUnpaid,
		CreatedAt:    req.CreatedAt,
		Items:        items,
	}
	if order.UUID == "" {
		order.UUID = uuid.NewString()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	order.RecalculateTotal()

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return &OrderResult{
		Order:   order,
		Receipt: s.receipts.Kitchen(order, order.Items, ""),
	}, nil
}

// AddItems appends items to an open order and recalculates its total. The
// new items come back on a kitchen ticket marked as an addition.
func (s *OrderService) AddItems(ctx context.Context, orderID int, inputs []ItemInput) (*OrderResult, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.StatusUnpaid {
		return nil, domain.ClosedOrderError(order.Status)
	}

	items, err := s.buildItems(ctx, inputs)
	if err != nil {
		return nil, err
	}

	if _, err := s.orders.AppendItems(ctx, orderID, items); err != nil {
		return nil, err
	}

	order, err = s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return &OrderResult{
		Order:   order,
		Receipt: s.receipts.Kitchen(order, items, "** ADDITIONAL **"),
	}, nil
}

// VoidItem cancels a single line item without closing the order.
func (s *OrderService) VoidItem(ctx context.Context, itemID int) (*VoidResult, error) {
	return s.BatchVoid(ctx, []int{itemID})
}

// BatchVoid voids a set of items belonging to one order in a single unit of
// work. Each voided item gets its own void ticket for the kitchen.
func (s *OrderService) BatchVoid(ctx context.Context, itemIDs []int) (*VoidResult, error) {
	if len(itemIDs) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	orderID := 0
	voided := make([]domain.OrderItem, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		item, err := s.orders.GetItem(ctx, itemID)
		if err != nil {
			return nil, err
		}
		if item.Status != domain.ItemActive {
			return nil, fmt.Errorf("item %q: %w", item.MenuName, domain.ErrItemVoided)
		}
		if orderID == 0 {
			orderID = item.OrderID
		} else if item.OrderID != orderID {
			return nil, fmt.Errorf("item %d belongs to another order: %w", itemID, domain.ErrItemNotFound)
		}
		voided = append(voided, *item)
	}

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.StatusUnpaid {
		return nil, domain.ClosedOrderError(order.Status)
	}

	if _, err := s.orders.VoidItems(ctx, orderID, itemIDs); err != nil {
		return nil, err
	}

	order, err = s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	receipts := make([]domain.Receipt, 0, len(voided))
	for _, item := range voided {
		receipts = append(receipts, *s.receipts.Void(order, item))
	}

	return &VoidResult{Order: order, Voided: voided, Receipts: receipts}, nil
}

// Pay finalizes an order. For cash the tendered amount must cover the total;
// the change is returned to the caller for the receipt, never persisted.
func (s *OrderService) Pay(ctx context.Context, orderID int, req *PaymentRequest) (*PaymentResult, error) {
	if !domain.ValidPaymentMethod(req.Method) {
		return nil, domain.ErrInvalidPayment
	}

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.StatusUnpaid {
		return nil, domain.ClosedOrderError(order.Status)
	}

	change := 0
	if req.Method == domain.PaymentCash {
		if req.CashReceived < order.TotalAmount {
			return nil, domain.ErrInsufficientCash
		}
		change = req.CashReceived - order.TotalAmount
	}

	// The quoted total is re-checked under the row lock inside MarkPaid, so
	// an item added between the quote and the settlement aborts the payment.
	paidAt := time.Now()
	if err := s.orders.MarkPaid(ctx, orderID, req.Method, order.TotalAmount, paidAt); err != nil {
		return nil, err
	}

	// Re-read the settled row so the receipt and the event carry exactly
	// what was paid for.
	order, err = s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if s.qrEncoder != nil {
		qr, err := s.qrEncoder.Generate(order.ID)
		if err != nil {
			log.Printf("WARNING: failed to generate QR code for order %d: %v", order.ID, err)
		} else if err := s.orders.SaveQRCode(ctx, order.ID, qr); err != nil {
			log.Printf("WARNING: failed to store QR code for order %d: %v", order.ID, err)
		}
	}

	s.publish(ctx, domain.EventOrderPaid, order)

	receipt := s.receipts.Customer(order, req.Method, req.CashReceived, change)
	return &PaymentResult{Order: order, Change: change, Receipt: receipt}, nil
}

// Cancel closes an order without payment.
func (s *OrderService) Cancel(ctx context.Context, orderID int) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.StatusUnpaid {
		return nil, domain.ClosedOrderError(order.Status)
	}

	if err := s.orders.MarkCancelled(ctx, orderID); err != nil {
		return nil, err
	}
	order.Status = domain.StatusCancelled

	s.publish(ctx, domain.EventOrderCancelled, order)

	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	return s.orders.GetOrder(ctx, orderID)
}

// UnpaidOrders returns today's open orders for session restore.
func (s *OrderService) UnpaidOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.UnpaidToday(ctx)
}

// SyncOrders replays a batch of offline order-creation payloads through the
// same path as live orders. A uuid the server already knows counts as
// synced, so terminals can safely resubmit. Per-order failures are reported
// back so the terminal retains exactly the failed entries.
func (s *OrderService) SyncOrders(ctx context.Context, payloads []domain.OrderPayload) *domain.SyncResponse {
	resp := &domain.SyncResponse{Status: "success"}

	for _, payload := range payloads {
		if payload.UUID == "" {
			resp.Errors = append(resp.Errors, "offline order is missing a uuid")
			continue
		}

		if _, err := s.orders.GetOrderByUUID(ctx, payload.UUID); err == nil {
			resp.SyncedCount++
			continue
		} else if !errors.Is(err, domain.ErrOrderNotFound) {
			resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %v", payload.UUID, err))
			resp.FailedUUIDs = append(resp.FailedUUIDs, payload.UUID)
			continue
		}

		req := &CreateOrderRequest{
			UUID:         payload.UUID,
			CustomerName: payload.CustomerName,
			CreatedAt:    payload.CreatedAt,
		}
		for _, item := range payload.Items {
			price := item.Price
			req.Items = append(req.Items, ItemInput{
				MenuID:   item.MenuID,
				Quantity: item.Quantity,
				Price:    &price,
			})
		}

		if _, err := s.CreateOrder(ctx, req); err != nil {
			resp.Errors = append(resp.Errors, fmt.Sprintf("%s: %v", payload.UUID, err))
			resp.FailedUUIDs = append(resp.FailedUUIDs, payload.UUID)
			continue
		}
		resp.SyncedCount++
	}

	resp.Message = fmt.Sprintf("%d of %d offline orders synced", resp.SyncedCount, len(payloads))
	return resp
}

// ReceiptQRCode returns the stored receipt QR code, regenerating it lazily
// when absent.
func (s *OrderService) ReceiptQRCode(ctx context.Context, orderID int) ([]byte, error) {
	qr, err := s.orders.GetQRCode(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		regenerated, err := s.qrEncoder.Generate(orderID)
		if err != nil {
			return nil, err
		}
		if err := s.orders.SaveQRCode(ctx, orderID, regenerated); err != nil {
			log.Printf("WARNING: failed to cache regenerated QR code: %v", err)
		}
		return regenerated, nil
	}
	return qr, nil
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.publisher == nil {
		return
	}

	event := domain.OrderEvent{
		Type:          eventType,
		OrderID:       order.ID,
		UUID:          order.UUID,
		TotalAmount:   order.TotalAmount,
		PaymentMethod: order.PaymentMethod,
		Timestamp:     time.Now(),
	}
	for _, item := range order.ActiveItems() {
		event.Items = append(event.Items, domain.EventItem{
			MenuID:   item.MenuID,
			MenuName: item.MenuName,
			Quantity: item.Quantity,
			Subtotal: item.Subtotal,
		})
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for order %d: %v", eventType, order.ID, err)
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)
