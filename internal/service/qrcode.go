package service

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

// DefaultQRGenerator encodes the public tracking URL for an order as a PNG.
type DefaultQRGenerator struct {
	BaseURL string
}

var _ QRGenerator = (*DefaultQRGenerator)(nil)

func (g *DefaultQRGenerator) Generate(orderID string) ([]byte, error) {
	url := fmt.Sprintf("%s/track.html?order_id=%s", g.BaseURL, orderID)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr for order %s: %w", orderID, err)
	}
	return png, nil
}
