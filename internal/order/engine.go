// Package order implements the session-scoped cart and the simulated
// order/payment/tracking lifecycle.
package order

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Adityavardhan394/chatbot-restarunt/internal/domain"
)

var (
	ErrCartEmpty       = errors.New("cart is empty")
	ErrNoPaymentMethod = errors.New("no payment method selected")
	ErrOrderNotFound   = errors.New("order not found")
	ErrLineNotFound    = errors.New("cart line not found")
)

const (
	flatDeliveryFee = 30.0
	taxRate         = 0.05
)

// Store persists orders keyed by order ID.
type Store interface {
	SaveOrder(ctx context.Context, o *domain.Order) error
	LoadOrder(ctx context.Context, id string) (*domain.Order, error)
}

// Publisher emits order lifecycle events.
type Publisher interface {
	PublishOrderEvent(ctx context.Context, ev domain.OrderEvent) error
}

// Notifier is the fire-and-forget user-facing toast sink.
type Notifier interface {
	Notify(message, severity string)
}

// Engine owns one session's cart and in-flight orders. Cart line identity is
// the dish ID: repeat adds merge into one line.
type Engine struct {
	mu        sync.Mutex
	cart      []domain.CartLine
	orderType domain.OrderType
	orders    map[string]*domain.Order
	timers    map[string][]Timer

	store     Store
	publisher Publisher
	notifier  Notifier
	scheduler Scheduler
	now       func() time.Time
}

func NewEngine(store Store, publisher Publisher, notifier Notifier, scheduler Scheduler) *Engine {
	return &Engine{
		orderType: domain.OrderTypeDelivery,
		orders:    make(map[string]*domain.Order),
		timers:    make(map[string][]Timer),
		store:     store,
		publisher: publisher,
		notifier:  notifier,
		scheduler: scheduler,
		now:       time.Now,
	}
}

// AddToCart merges by dish ID and returns the resulting line.
func (e *Engine) AddToCart(dish domain.CatalogDish, quantity int) domain.CartLine {
	if quantity < 1 {
		quantity = 1
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.cart {
		if e.cart[i].DishID == dish.ID {
			e.cart[i].Quantity += quantity
			return e.cart[i]
		}
	}
	line := domain.CartLine{
		DishID:         dish.ID,
		Name:           dish.Name,
		Price:          dish.Price,
		Description:    dish.Description,
		RestaurantName: dish.RestaurantName,
		Quantity:       quantity,
		AddedAt:        e.now(),
	}
	e.cart = append(e.cart, line)
	return line
}

func (e *Engine) RemoveFromCart(dishID int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.cart {
		if e.cart[i].DishID == dishID {
			e.cart = append(e.cart[:i], e.cart[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

// UpdateQuantity sets a line's quantity, removing the line at n <= 0.
func (e *Engine) UpdateQuantity(dishID, n int) error {
	if n <= 0 {
		return e.RemoveFromCart(dishID)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.cart {
		if e.cart[i].DishID == dishID {
			e.cart[i].Quantity = n
			return nil
		}
	}
	return ErrLineNotFound
}

func (e *Engine) Lines() []domain.CartLine {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.CartLine, len(e.cart))
	copy(out, e.cart)
	return out
}

func (e *Engine) ClearCart() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cart = nil
}

func (e *Engine) SetOrderType(t domain.OrderType) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.orderType = t
}

func (e *Engine) OrderType() domain.OrderType {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.orderType
}

// Totals computes subtotal, delivery fee, tax and total for the current cart.
// The flat delivery fee applies only to delivery orders with a non-empty cart;
// tax is a fixed 5% of the subtotal.
func (e *Engine) Totals() domain.Totals {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalsLocked()
}

func (e *Engine) totalsLocked() domain.Totals {
	var subtotal float64
	for _, line := range e.cart {
		subtotal += line.Price * float64(line.Quantity)
	}
	var fee float64
	if len(e.cart) > 0 && e.orderType == domain.OrderTypeDelivery {
		fee = flatDeliveryFee
	}
	tax := subtotal * taxRate
	return domain.Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       subtotal + fee + tax,
		OrderType:   e.orderType,
	}
}

// PaymentProcessingDelay is the simulated processing time for a method. It is
// cosmetic pacing surfaced to the presentation layer, not a blocking wait.
func PaymentProcessingDelay(method domain.PaymentMethod) time.Duration {
	switch method {
	case domain.PaymentUPI:
		return time.Second
	case domain.PaymentCard:
		return 3 * time.Second
	default:
		return 500 * time.Millisecond
	}
}

func validPaymentMethod(method domain.PaymentMethod) bool {
	switch method {
	case domain.PaymentCard, domain.PaymentUPI, domain.PaymentCOD:
		return true
	}
	return false
}

func newOrderID() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ORD-" + id[:12]
}

// Checkout snapshots the cart into an Order, persists it, clears the cart and
// schedules the staged progression. The cart is untouched on rejection.
func (e *Engine) Checkout(ctx context.Context, method domain.PaymentMethod) (*domain.Order, error) {
	e.mu.Lock()
	if len(e.cart) == 0 {
		e.mu.Unlock()
		return nil, ErrCartEmpty
	}
	if !validPaymentMethod(method) {
		e.mu.Unlock()
		return nil, ErrNoPaymentMethod
	}

	totals := e.totalsLocked()
	items := make([]domain.CartLine, len(e.cart))
	copy(items, e.cart)

	now := e.now()
	o := &domain.Order{
		ID:            newOrderID(),
		Items:         items,
		Totals:        totals,
		OrderType:     e.orderType,
		PaymentMethod: method,
		Status:        domain.StatusConfirmed,
		Stages:        stagesFor(e.orderType),
		EstimatedTime: estimateFor(e.orderType),
		PlacedAt:      now,
	}
	o.Stages[0].ReachedAt = now
	e.cart = nil
	e.orders[o.ID] = o
	e.mu.Unlock()

	if err := e.store.SaveOrder(ctx, o); err != nil {
		log.Error().Err(err).Str("order_id", o.ID).Msg("failed to persist order")
	}
	e.publish(ctx, o, o.Stages[0])
	e.notify(o.Stages[0])
	e.track(o)

	log.Info().
		Str("order_id", o.ID).
		Str("order_type", string(o.OrderType)).
		Str("payment_method", string(method)).
		Float64("total", totals.Total).
		Msg("order placed")
	return o.Snapshot(), nil
}

// Order returns a copy of an order, falling back to the store for orders
// placed by other sessions. Any load failure surfaces as ErrOrderNotFound.
func (e *Engine) Order(ctx context.Context, id string) (*domain.Order, error) {
	e.mu.Lock()
	o, ok := e.orders[id]
	e.mu.Unlock()
	if ok {
		return o.Snapshot(), nil
	}
	stored, err := e.store.LoadOrder(ctx, id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return stored, nil
}

// Cancel stops every pending stage timer. Called on session teardown; orders
// already persisted keep their last reached stage.
func (e *Engine) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for id, timers := range e.timers {
		for _, t := range timers {
			t.Stop()
		}
		delete(e.timers, id)
	}
}

func (e *Engine) publish(ctx context.Context, o *domain.Order, stage domain.StageRecord) {
	if e.publisher == nil {
		return
	}
	_ = e.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
		Type:      "order_stage",
		OrderID:   o.ID,
		Status:    stage.Status,
		Message:   stage.Message,
		Timestamp: e.now(),
	})
}

func (e *Engine) notify(stage domain.StageRecord) {
	if e.notifier == nil {
		return
	}
	e.notifier.Notify(stage.Icon+" "+stage.Message, "info")
}
