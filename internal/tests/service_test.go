package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Adityavardhan394/chatbot-restarunt/internal/catalog"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/domain"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/intent"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/mocks"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/order"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/response"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/service"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/session"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/storage"
)

func newChatFixture() (*service.ChatService, *session.Manager) {
	store := storage.NewMemoryStore()
	sessions := session.NewManager(func() *order.Engine {
		return order.NewEngine(store, nil, nil, order.NewManualScheduler())
	}).WithRandSource(func() int64 { return 1 })
	chatSvc := service.NewChatService(
		intent.NewClassifier(),
		response.NewGenerator(catalog.Default(), "Madhapur"),
		sessions,
	)
	return chatSvc, sessions
}

func TestChatRecordsBothTurns(t *testing.T) {
	chatSvc, sessions := newChatFixture()

	reply, err := chatSvc.Chat(context.Background(), "s1", "hello")
	require.NoError(t, err)
	assert.Equal(t, domain.ActionShowWelcome, reply.Action)

	sess, ok := sessions.Get("s1")
	require.True(t, ok)
	turns := sess.Memory.Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, "user", turns[0].Role)
	assert.Equal(t, "hello", turns[0].Text)
	assert.Equal(t, "assistant", turns[1].Role)
	assert.Equal(t, reply.Text, turns[1].Text)
}

func TestChatEcoToggleTakesPriority(t *testing.T) {
	chatSvc, sessions := newChatFixture()
	ctx := context.Background()

	reply, err := chatSvc.Chat(ctx, "s1", "show me eco friendly options")
	require.NoError(t, err)
	assert.Equal(t, domain.ActionToggleEcoMode, reply.Action)
	assert.Equal(t, domain.EcoModeData{Enabled: true}, reply.Data)

	sess, _ := sessions.Get("s1")
	assert.True(t, sess.EcoMode())

	reply, err = chatSvc.Chat(ctx, "s1", "disable eco mode")
	require.NoError(t, err)
	assert.Equal(t, domain.EcoModeData{Enabled: false}, reply.Data)
	assert.False(t, sess.EcoMode())
}

func TestChatAddToCartMutatesSessionCart(t *testing.T) {
	chatSvc, sessions := newChatFixture()

	_, err := chatSvc.Chat(context.Background(), "s1", "add whopper")
	require.NoError(t, err)

	sess, _ := sessions.Get("s1")
	lines := sess.Engine.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Whopper", lines[0].Name)
}

func TestThinkingDelayBounds(t *testing.T) {
	assert.GreaterOrEqual(t, service.ThinkingDelay("hi"), time.Second)
	long := "one two three four five six seven eight nine ten eleven twelve thirteen fourteen fifteen"
	assert.Equal(t, 3*time.Second, service.ThinkingDelay(long))
}

func TestOrderServiceGet(t *testing.T) {
	store := &mocks.OrderStore{}
	qr := &mocks.QRGenerator{}
	svc := service.NewOrderService(store, qr)
	ctx := context.Background()

	placed := &domain.Order{ID: "ORD-ABC123DEF456"}
	store.On("LoadOrder", mock.Anything, "ORD-ABC123DEF456").Return(placed, nil).Once()

	got, err := svc.Get(ctx, "ORD-ABC123DEF456")
	require.NoError(t, err)
	assert.Equal(t, placed.ID, got.ID)

	store.On("LoadOrder", mock.Anything, "ORD-MISSING").Return(nil, assert.AnError).Once()
	_, err = svc.Get(ctx, "ORD-MISSING")
	assert.ErrorIs(t, err, order.ErrOrderNotFound)

	store.AssertExpectations(t)
}

func TestOrderServiceQRCode(t *testing.T) {
	store := &mocks.OrderStore{}
	qr := &mocks.QRGenerator{}
	svc := service.NewOrderService(store, qr)
	ctx := context.Background()

	store.On("LoadOrder", mock.Anything, "ORD-ABC123DEF456").Return(&domain.Order{ID: "ORD-ABC123DEF456"}, nil).Once()
	qr.On("Generate", "ORD-ABC123DEF456").Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()

	png, err := svc.QRCode(ctx, "ORD-ABC123DEF456")
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	store.On("LoadOrder", mock.Anything, "ORD-MISSING").Return(nil, assert.AnError).Once()
	_, err = svc.QRCode(ctx, "ORD-MISSING")
	assert.ErrorIs(t, err, order.ErrOrderNotFound)

	store.AssertExpectations(t)
	qr.AssertExpectations(t)
}
