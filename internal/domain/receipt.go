package domain

// Receipt types.
const (
	ReceiptKitchen  = "kitchen"
	ReceiptCustomer = "customer"
	ReceiptVoid     = "void"
)

type ReceiptItem struct {
	Name     string `json:"name"`
	Qty      int    `json:"qty"`
	Price    int    `json:"price"`
	Subtotal int    `json:"subtotal"`
	Status   string `json:"status,omitempty"`
}

// Receipt is a display projection of an order handed to the printing
// collaborator. It carries no state of its own.
type Receipt struct {
	Type         string        `json:"type"`
	Title        string        `json:"title"`
	Subtitle     string        `json:"subtitle,omitempty"`
	StoreName    string        `json:"store_name"`
	Date         string        `json:"date"`
	Cashier      string        `json:"cashier"`
	CustomerName string        `json:"customer_name"`
	OrderNumber  string        `json:"order_number"`
	Items        []ReceiptItem `json:"items"`
	Total        int           `json:"total"`

	// Payment detail, customer receipts only.
	PaymentMethod string `json:"payment_method,omitempty"`
	CashReceived  int    `json:"cash_received,omitempty"`
	Change        int    `json:"change,omitempty"`
}
