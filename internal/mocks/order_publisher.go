package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Adityavardhan394/chatbot-restarunt/internal/domain"
)

// OrderPublisher is a hand-rolled testify mock for order.Publisher.
type OrderPublisher struct {
	mock.Mock
}

func (m *OrderPublisher) PublishOrderEvent(ctx context.Context, ev domain.OrderEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func NewOrderPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderPublisher {
	m := &OrderPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
