package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adityavardhan394/chatbot-restarunt/internal/domain"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/order"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/storage"
)

func newTestManager() *Manager {
	return NewManager(func() *order.Engine {
		return order.NewEngine(storage.NewMemoryStore(), nil, nil, order.NewManualScheduler())
	}).WithRandSource(func() int64 { return 1 })
}

func TestGetOrCreateReturnsSameSession(t *testing.T) {
	m := newTestManager()

	a := m.GetOrCreate("s1")
	b := m.GetOrCreate("s1")
	assert.Same(t, a, b)
	assert.Equal(t, 1, m.Len())
}

func TestSessionsAreIsolated(t *testing.T) {
	m := newTestManager()
	dish := domain.CatalogDish{Dish: domain.Dish{ID: 501, Name: "Masala Chai", Price: 25}}

	a := m.GetOrCreate("s1")
	b := m.GetOrCreate("s2")
	a.Engine.AddToCart(dish, 1)

	assert.Len(t, a.Engine.Lines(), 1)
	assert.Empty(t, b.Engine.Lines())
}

func TestSelectRestaurant(t *testing.T) {
	s := newTestManager().GetOrCreate("s1")
	assert.Zero(t, s.SelectedRestaurant())
	s.SelectRestaurant(3)
	assert.Equal(t, 3, s.SelectedRestaurant())
}

func TestToggleEco(t *testing.T) {
	s := newTestManager().GetOrCreate("s1")
	assert.False(t, s.EcoMode())
	assert.True(t, s.ToggleEco())
	assert.True(t, s.EcoMode())
	assert.False(t, s.ToggleEco())
}

func TestClose(t *testing.T) {
	m := newTestManager()
	m.GetOrCreate("s1")

	assert.True(t, m.Close("s1"))
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Close("s1"))

	_, ok := m.Get("s1")
	assert.False(t, ok)
}

func TestMemoryCapsTurns(t *testing.T) {
	mem := NewMemory()
	for i := 0; i < 30; i++ {
		mem.Add("user", fmt.Sprintf("message %d", i))
	}
	require.Equal(t, 20, mem.Len())
	// oldest turns dropped first
	assert.Equal(t, "message 10", mem.Turns()[0].Text)
	assert.Equal(t, "message 29", mem.Turns()[19].Text)
}

func TestMemoryContextWindow(t *testing.T) {
	mem := NewMemory()
	mem.Add("user", "hi")
	assert.Equal(t, "user: hi", mem.Context())

	for i := 0; i < 10; i++ {
		mem.Add("assistant", fmt.Sprintf("reply %d", i))
	}
	ctx := mem.Context()
	assert.Contains(t, ctx, "assistant: reply 9")
	assert.Contains(t, ctx, "assistant: reply 5")
	assert.NotContains(t, ctx, "reply 4")
	assert.NotContains(t, ctx, "user: hi")
}
