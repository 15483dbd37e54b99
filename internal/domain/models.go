package domain

import "time"

// Order statuses.
const (
	StatusUnpaid    = "unpaid"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
)

// Line item statuses.
const (
	ItemActive = "active"
	ItemVoid   = "void"
)

// Payment methods.
const (
	PaymentCash     = "cash"
	PaymentQRIS     = "qris"
	PaymentTransfer = "transfer"
)

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Menu struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	CategoryID  int       `json:"category_id"`
	Price       int       `json:"price"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

// Order is one customer's purchase from creation to payment or cancellation.
// TotalAmount is derived: it always equals the sum of subtotals over active
// items after a mutation commits.
type Order struct {
	ID            int         `json:"id"`
	UUID          string      `json:"uuid"`
	CustomerName  string      `json:"customer_name"`
	Status        string      `json:"status"`
	TotalAmount   int         `json:"total_amount"`
	PaymentMethod string      `json:"payment_method,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	PaidAt        *time.Time  `json:"paid_at,omitempty"`
	Items         []OrderItem `json:"items"`
}

// OrderItem is one menu entry within an order. Price is a snapshot taken when
// the item was added; a later menu price change does not affect it.
type OrderItem struct {
	ID        int       `json:"id"`
	OrderID   int       `json:"order_id"`
	MenuID    int       `json:"menu_id"`
	MenuName  string    `json:"menu_name"`
	Quantity  int       `json:"quantity"`
	Price     int       `json:"price"`
	Subtotal  int       `json:"subtotal"`
	Status    string    `json:"status"`
	IsPrinted bool      `json:"is_printed"`
	CreatedAt time.Time `json:"created_at"`
}

// ActiveTotal sums subtotals over active items only. Idempotent: calling it
// twice with no intervening mutation yields the same value.
func (o *Order) ActiveTotal() int {
	total := 0
	for _, item := range o.Items {
		if item.Status == ItemActive {
			total += item.Subtotal
		}
	}
	return total
}

// RecalculateTotal re-derives TotalAmount from the current item set.
func (o *Order) RecalculateTotal() {
	o.TotalAmount = o.ActiveTotal()
}

// ActiveItems returns the items that have not been voided.
func (o *Order) ActiveItems() []OrderItem {
	var active []OrderItem
	for _, item := range o.Items {
		if item.Status == ItemActive {
			active = append(active, item)
		}
	}
	return active
}

// OrderNumber is the short externally visible identifier printed on tickets.
func (o *Order) OrderNumber() string {
	if len(o.UUID) >= 8 {
		return o.UUID[:8]
	}
	return o.UUID
}

// ComputeSubtotal derives the item subtotal. Subtotal is never set
// independently.
func (i *OrderItem) ComputeSubtotal() {
	i.Subtotal = i.Quantity * i.Price
}

// ValidPaymentMethod reports whether method is one of the accepted methods.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCash, PaymentQRIS, PaymentTransfer:
		return true
	}
	return false
}
