package service

import (
	"context"

	"github.com/Adityavardhan394/chatbot-restarunt/internal/domain"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/order"
)

// OrderService reads placed orders back from the store, independent of the
// session that created them.
type OrderService struct {
	store order.Store
	qr    QRGenerator
}

func NewOrderService(store order.Store, qr QRGenerator) *OrderService {
	return &OrderService{store: store, qr: qr}
}

func (s *OrderService) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	o, err := s.store.LoadOrder(ctx, orderID)
	if err != nil {
		return nil, order.ErrOrderNotFound
	}
	return o, nil
}

func (s *OrderService) QRCode(ctx context.Context, orderID string) ([]byte, error) {
	if _, err := s.Get(ctx, orderID); err != nil {
		return nil, err
	}
	return s.qr.Generate(orderID)
}
