package mocks

import (
	"github.com/stretchr/testify/mock"
)

// Notifier is a hand-rolled testify mock for order.Notifier.
type Notifier struct {
	mock.Mock
}

func (m *Notifier) Notify(message, severity string) {
	m.Called(message, severity)
}

func NewNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *Notifier {
	m := &Notifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
