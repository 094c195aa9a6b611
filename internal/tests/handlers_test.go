package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "github.com/Adityavardhan394/chatbot-restarunt/internal/api/http"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/catalog"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/domain"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/intent"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/order"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/response"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/service"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/session"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/storage"
)

type fixture struct {
	router    http.Handler
	sessions  *session.Manager
	scheduler *order.ManualScheduler
}

func newFixture() *fixture {
	store := storage.NewMemoryStore()
	sched := order.NewManualScheduler()
	sessions := session.NewManager(func() *order.Engine {
		return order.NewEngine(store, nil, nil, sched)
	}).WithRandSource(func() int64 { return 1 })

	cat := catalog.Default()
	chatSvc := service.NewChatService(
		intent.NewClassifier(),
		response.NewGenerator(cat, "Madhapur"),
		sessions,
	)
	orderSvc := service.NewOrderService(store, &service.DefaultQRGenerator{BaseURL: "http://localhost:8080"})
	handler := httpapi.NewHandler(chatSvc, orderSvc, sessions, cat)
	return &fixture{
		router:    httpapi.NewRouter(handler),
		sessions:  sessions,
		scheduler: sched,
	}
}

func (f *fixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

func TestHealthEndpoint(t *testing.T) {
	f := newFixture()
	rec := f.do(t, "GET", "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	decode(t, rec, &body)
	assert.Equal(t, "healthy", body["status"])
}

func TestChatEndpoint(t *testing.T) {
	f := newFixture()
	rec := f.do(t, "POST", "/api/chat", map[string]string{"session_id": "s1", "message": "hello"})

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		SessionID string `json:"session_id"`
		Text      string `json:"text"`
		Action    string `json:"action"`
		TypingMs  int64  `json:"typing_ms"`
	}
	decode(t, rec, &body)
	assert.Equal(t, "s1", body.SessionID)
	assert.Equal(t, "show_welcome", body.Action)
	assert.NotEmpty(t, body.Text)
	assert.Greater(t, body.TypingMs, int64(0))
}

func TestChatEndpointGeneratesSessionID(t *testing.T) {
	f := newFixture()
	rec := f.do(t, "POST", "/api/chat", map[string]string{"message": "hello"})

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		SessionID string `json:"session_id"`
	}
	decode(t, rec, &body)
	assert.NotEmpty(t, body.SessionID)
	_, ok := f.sessions.Get(body.SessionID)
	assert.True(t, ok)
}

func TestChatEndpointRequiresMessage(t *testing.T) {
	f := newFixture()
	rec := f.do(t, "POST", "/api/chat", map[string]string{"session_id": "s1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRestaurantEndpoints(t *testing.T) {
	f := newFixture()

	rec := f.do(t, "GET", "/api/restaurants", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var restaurants []domain.Restaurant
	decode(t, rec, &restaurants)
	assert.Len(t, restaurants, 6)

	rec = f.do(t, "GET", "/api/restaurants/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var rest domain.Restaurant
	decode(t, rec, &rest)
	assert.Equal(t, "Dosa Junction", rest.Name)

	rec = f.do(t, "GET", "/api/restaurants/2/menu", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var menu []domain.MenuSection
	decode(t, rec, &menu)
	assert.Len(t, menu, 2)

	rec = f.do(t, "GET", "/api/restaurants/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartFlow(t *testing.T) {
	f := newFixture()

	rec := f.do(t, "POST", "/api/sessions/s1/cart", map[string]int{"dish_id": 202, "quantity": 2})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(t, "GET", "/api/sessions/s1/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cart struct {
		Items  []domain.CartLine `json:"items"`
		Totals domain.Totals     `json:"totals"`
	}
	decode(t, rec, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 240.0, cart.Totals.Total)

	rec = f.do(t, "PUT", "/api/sessions/s1/cart/202", map[string]int{"quantity": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &cart)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	rec = f.do(t, "DELETE", "/api/sessions/s1/cart/202", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, "DELETE", "/api/sessions/s1/cart/202", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, "POST", "/api/sessions/s1/cart", map[string]int{"dish_id": 999})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderTypeEndpoint(t *testing.T) {
	f := newFixture()
	f.do(t, "POST", "/api/sessions/s1/cart", map[string]int{"dish_id": 202, "quantity": 2})

	rec := f.do(t, "PUT", "/api/sessions/s1/order-type", map[string]string{"order_type": "takeaway"})
	require.Equal(t, http.StatusOK, rec.Code)
	var totals domain.Totals
	decode(t, rec, &totals)
	assert.Zero(t, totals.DeliveryFee)
	assert.Equal(t, 210.0, totals.Total)

	rec = f.do(t, "PUT", "/api/sessions/s1/order-type", map[string]string{"order_type": "teleport"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutAndTracking(t *testing.T) {
	f := newFixture()
	f.do(t, "POST", "/api/sessions/s1/cart", map[string]int{"dish_id": 202, "quantity": 2})

	rec := f.do(t, "POST", "/api/sessions/s1/checkout", map[string]string{"payment_method": "upi"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var placed struct {
		Order        *domain.Order `json:"order"`
		ProcessingMs int64         `json:"processing_ms"`
	}
	decode(t, rec, &placed)
	require.NotNil(t, placed.Order)
	assert.Equal(t, int64(1000), placed.ProcessingMs)
	assert.Equal(t, domain.StatusConfirmed, placed.Order.Status)

	// cart is cleared after checkout
	rec = f.do(t, "GET", "/api/sessions/s1/cart", nil)
	var cart struct {
		Items []domain.CartLine `json:"items"`
	}
	decode(t, rec, &cart)
	assert.Empty(t, cart.Items)

	rec = f.do(t, "GET", "/api/orders/"+placed.Order.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	f.scheduler.Advance(25 * time.Second)
	rec = f.do(t, "GET", "/api/orders/"+placed.Order.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var tracked domain.Order
	decode(t, rec, &tracked)
	assert.Equal(t, domain.StatusDelivered, tracked.Status)

	rec = f.do(t, "GET", fmt.Sprintf("/api/orders/%s/qrcode", placed.Order.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestCheckoutRejections(t *testing.T) {
	f := newFixture()

	rec := f.do(t, "POST", "/api/sessions/s1/checkout", map[string]string{"payment_method": "upi"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	f.do(t, "POST", "/api/sessions/s1/cart", map[string]int{"dish_id": 202})
	rec = f.do(t, "POST", "/api/sessions/s1/checkout", map[string]string{"payment_method": "barter"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderNotFound(t *testing.T) {
	f := newFixture()
	rec := f.do(t, "GET", "/api/orders/ORD-MISSING", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSelectRestaurantEndpoint(t *testing.T) {
	f := newFixture()

	rec := f.do(t, "PUT", "/api/sessions/s1/restaurant", map[string]int{"restaurant_id": 2})
	require.Equal(t, http.StatusNoContent, rec.Code)
	sess, _ := f.sessions.Get("s1")
	assert.Equal(t, 2, sess.SelectedRestaurant())

	rec = f.do(t, "PUT", "/api/sessions/s1/restaurant", map[string]int{"restaurant_id": 99})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCloseSessionEndpoint(t *testing.T) {
	f := newFixture()
	f.do(t, "POST", "/api/sessions/s1/cart", map[string]int{"dish_id": 202})

	rec := f.do(t, "DELETE", "/api/sessions/s1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0, f.sessions.Len())

	rec = f.do(t, "DELETE", "/api/sessions/s1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
