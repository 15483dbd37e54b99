package service

import (
	"time"

	"warung-pos/internal/domain"
)

const receiptDateFormat = "02/01/2006 15:04"

// ReceiptFormatter projects orders into printable receipt structures. It is
// pure: no state beyond the store/cashier labels.
type ReceiptFormatter struct {
	StoreName   string
	CashierName string
}

func NewReceiptFormatter(storeName, cashierName string) *ReceiptFormatter {
	return &ReceiptFormatter{StoreName: storeName, CashierName: cashierName}
}

func (f *ReceiptFormatter) header(receiptType, title, subtitle string, order *domain.Order) *domain.Receipt {
	return &domain.Receipt{
		Type:         receiptType,
		Title:        title,
		Subtitle:     subtitle,
		StoreName:    f.StoreName,
		Date:         time.Now().Format(receiptDateFormat),
		Cashier:      f.CashierName,
		CustomerName: order.CustomerName,
		OrderNumber:  order.OrderNumber(),
	}
}

// Kitchen builds a kitchen ticket listing only the newly added items. The
// subtitle marks add-on tickets.
func (f *ReceiptFormatter) Kitchen(order *domain.Order, newItems []domain.OrderItem, subtitle string) *domain.Receipt {
	receipt := f.header(domain.ReceiptKitchen, "KITCHEN ORDER", subtitle, order)
	for _, item := range newItems {
		receipt.Items = append(receipt.Items, domain.ReceiptItem{
			Name:     item.MenuName,
			Qty:      item.Quantity,
			Price:    item.Price,
			Subtotal: item.Subtotal,
		})
	}
	receipt.Total = order.TotalAmount
	return receipt
}

// Customer builds the payment receipt: all active items plus payment detail.
func (f *ReceiptFormatter) Customer(order *domain.Order, method string, cashReceived, change int) *domain.Receipt {
	receipt := f.header(domain.ReceiptCustomer, "PAYMENT RECEIPT", "", order)
	for _, item := range order.ActiveItems() {
		receipt.Items = append(receipt.Items, domain.ReceiptItem{
			Name:     item.MenuName,
			Qty:      item.Quantity,
			Price:    item.Price,
			Subtotal: item.Subtotal,
		})
	}
	receipt.Total = order.TotalAmount
	receipt.PaymentMethod = method
	if method == domain.PaymentCash {
		receipt.CashReceived = cashReceived
		receipt.Change = change
	}
	return receipt
}

// Void builds a kitchen notice referencing exactly one cancelled item.
func (f *ReceiptFormatter) Void(order *domain.Order, item domain.OrderItem) *domain.Receipt {
	receipt := f.header(domain.ReceiptVoid, "VOID / CANCELLED", "", order)
	receipt.Items = []domain.ReceiptItem{{
		Name:   item.MenuName,
		Qty:    item.Quantity,
		Status: "CANCELLED",
	}}
	return receipt
}
