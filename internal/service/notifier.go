package service

import (
	"github.com/rs/zerolog/log"

	"github.com/Adityavardhan394/chatbot-restarunt/internal/order"
)

// LogNotifier emits customer-facing stage messages to the structured log. A
// push or SMS notifier would implement the same interface.
type LogNotifier struct{}

var _ order.Notifier = (*LogNotifier)(nil)

func (LogNotifier) Notify(message, severity string) {
	log.Info().
		Str("severity", severity).
		Str("channel", "notification").
		Msg(message)
}
