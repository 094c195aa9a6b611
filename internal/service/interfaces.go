package service

import (
	"context"

	"github.com/Adityavardhan394/chatbot-restarunt/internal/domain"
)

type ChatServiceInterface interface {
	Chat(ctx context.Context, sessionID, message string) (domain.Reply, error)
}

type OrderServiceInterface interface {
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	QRCode(ctx context.Context, orderID string) ([]byte, error)
}

var _ ChatServiceInterface = (*ChatService)(nil)
var _ OrderServiceInterface = (*OrderService)(nil)
