package tests

import (
	"testing"

	"warung-pos/internal/domain"
	"warung-pos/internal/service"

	"github.com/stretchr/testify/assert"
)

func testOrder() *domain.Order {
	return &domain.Order{
		ID:           7,
		UUID:         "a1b2c3d4-e5f6-7890-abcd-ef1234567890",
		CustomerName: "Sari",
		Status:       domain.StatusUnpaid,
		TotalAmount:  40000,
		Items: []domain.OrderItem{
			{MenuName: "Bakmi Ayam", Quantity: 2, Price: 16000, Subtotal: 32000, Status: domain.ItemActive},
			{MenuName: "Es Teh", Quantity: 1, Price: 8000, Subtotal: 8000, Status: domain.ItemActive},
			{MenuName: "Kerupuk", Quantity: 1, Price: 3000, Subtotal: 3000, Status: domain.ItemVoid},
		},
	}
}

func TestReceiptFormatter_Kitchen(t *testing.T) {
	formatter := service.NewReceiptFormatter("Test Warung", "Budi")
	order := testOrder()

	receipt := formatter.Kitchen(order, order.Items[:2], "")
	assert.Equal(t, domain.ReceiptKitchen, receipt.Type)
	assert.Equal(t, "KITCHEN ORDER", receipt.Title)
	assert.Empty(t, receipt.Subtitle)
	assert.Equal(t, "Test Warung", receipt.StoreName)
	assert.Equal(t, "Budi", receipt.Cashier)
	assert.Equal(t, "a1b2c3d4", receipt.OrderNumber)
	assert.Len(t, receipt.Items, 2)
	assert.Equal(t, 40000, receipt.Total)
}

func TestReceiptFormatter_Kitchen_Additional(t *testing.T) {
	formatter := service.NewReceiptFormatter("Test Warung", "Budi")
	order := testOrder()

	// Add-on ticket lists only the new item.
	receipt := formatter.Kitchen(order, order.Items[1:2], "** ADDITIONAL **")
	assert.Equal(t, "** ADDITIONAL **", receipt.Subtitle)
	assert.Len(t, receipt.Items, 1)
	assert.Equal(t, "Es Teh", receipt.Items[0].Name)
}

func TestReceiptFormatter_Customer(t *testing.T) {
	formatter := service.NewReceiptFormatter("Test Warung", "Budi")
	order := testOrder()

	t.Run("cash_shows_tender_and_change", func(t *testing.T) {
		receipt := formatter.Customer(order, domain.PaymentCash, 50000, 10000)
		assert.Equal(t, "PAYMENT RECEIPT", receipt.Title)
		// Voided items never appear on the customer receipt.
		assert.Len(t, receipt.Items, 2)
		assert.Equal(t, 40000, receipt.Total)
		assert.Equal(t, 50000, receipt.CashReceived)
		assert.Equal(t, 10000, receipt.Change)
	})

	t.Run("qris_omits_cash_detail", func(t *testing.T) {
		receipt := formatter.Customer(order, domain.PaymentQRIS, 0, 0)
		assert.Equal(t, domain.PaymentQRIS, receipt.PaymentMethod)
		assert.Zero(t, receipt.CashReceived)
		assert.Zero(t, receipt.Change)
	})
}

func TestReceiptFormatter_Void(t *testing.T) {
	formatter := service.NewReceiptFormatter("Test Warung", "Budi")
	order := testOrder()

	receipt := formatter.Void(order, order.Items[2])
	assert.Equal(t, domain.ReceiptVoid, receipt.Type)
	assert.Equal(t, "VOID / CANCELLED", receipt.Title)
	assert.Len(t, receipt.Items, 1)
	assert.Equal(t, "Kerupuk", receipt.Items[0].Name)
	assert.Equal(t, "CANCELLED", receipt.Items[0].Status)
}
