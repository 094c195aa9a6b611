package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Adityavardhan394/chatbot-restarunt/internal/domain"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/order"
)

const orderKeyPrefix = "order:"

// RedisStore persists orders as JSON under "order:<id>" with a TTL.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

var _ order.Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{Client: client, TTL: ttl}
}

func (s *RedisStore) SaveOrder(ctx context.Context, o *domain.Order) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("marshal order %s: %w", o.ID, err)
	}
	if err := s.Client.Set(ctx, orderKeyPrefix+o.ID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("save order %s: %w", o.ID, err)
	}
	return nil
}

// LoadOrder treats a missing key and a corrupt value the same way: the order
// is not retrievable.
func (s *RedisStore) LoadOrder(ctx context.Context, id string) (*domain.Order, error) {
	data, err := s.Client.Get(ctx, orderKeyPrefix+id).Bytes()
	if err != nil {
		return nil, order.ErrOrderNotFound
	}
	var o domain.Order
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, order.ErrOrderNotFound
	}
	return &o, nil
}
