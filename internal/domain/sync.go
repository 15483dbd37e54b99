package domain

import "time"

// OrderPayload is one order-creation request buffered by a terminal while it
// was offline, replayed later through the sync endpoint.
type OrderPayload struct {
	UUID         string        `json:"uuid"`
	CustomerName string        `json:"customer_name"`
	Items        []PayloadItem `json:"items"`
	CreatedAt    time.Time     `json:"created_at"`
}

type PayloadItem struct {
	MenuID   int `json:"menu_id"`
	Quantity int `json:"quantity"`
	Price    int `json:"price"`
	Subtotal int `json:"subtotal"`
}

type SyncRequest struct {
	Orders []OrderPayload `json:"orders"`
}

// SyncResponse reports the outcome of a batch replay. FailedUUIDs identifies
// the entries that did not make it so the terminal can retain exactly those.
type SyncResponse struct {
	Status      string   `json:"status"`
	SyncedCount int      `json:"synced_count"`
	Errors      []string `json:"errors,omitempty"`
	FailedUUIDs []string `json:"failed_uuids,omitempty"`
	Message     string   `json:"message"`
}

// Order event types published to the sales stream.
const (
	EventOrderPaid      = "order_paid"
	EventOrderCancelled = "order_cancelled"
)

type EventItem struct {
	MenuID   int    `json:"menu_id"`
	MenuName string `json:"menu_name"`
	Quantity int    `json:"quantity"`
	Subtotal int    `json:"subtotal"`
}

// OrderEvent is the message written to Kafka when an order reaches a
// terminal state. The analytics consumer folds paid events into the daily
// sales aggregates.
type OrderEvent struct {
	Type          string      `json:"type"`
	OrderID       int         `json:"order_id"`
	UUID          string      `json:"uuid"`
	TotalAmount   int         `json:"total_amount"`
	PaymentMethod string      `json:"payment_method,omitempty"`
	Items         []EventItem `json:"items,omitempty"`
	Timestamp     time.Time   `json:"timestamp"`
}
