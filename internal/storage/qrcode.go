package storage

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// ReceiptQRGenerator encodes the public receipt URL for an order as a PNG
// QR code printed on customer receipts.
type ReceiptQRGenerator struct {
	BaseURL string
}

func NewReceiptQRGenerator(baseURL string) *ReceiptQRGenerator {
	return &ReceiptQRGenerator{BaseURL: baseURL}
}

func (g *ReceiptQRGenerator) Generate(orderID int) ([]byte, error) {
	url := fmt.Sprintf("%s/receipt.html?order_id=%d", g.BaseURL, orderID)
	return qrcode.Encode(url, qrcode.Medium, 256)
}
