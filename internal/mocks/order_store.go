package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Adityavardhan394/chatbot-restarunt/internal/domain"
)

// OrderStore is a hand-rolled testify mock for order.Store.
type OrderStore struct {
	mock.Mock
}

func (m *OrderStore) SaveOrder(ctx context.Context, o *domain.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *OrderStore) LoadOrder(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	var o *domain.Order
	if args.Get(0) != nil {
		o = args.Get(0).(*domain.Order)
	}
	return o, args.Error(1)
}

func NewOrderStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderStore {
	m := &OrderStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
