package domain

import "time"

type Restaurant struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Location     string        `json:"location"`
	DistanceKm   float64       `json:"distance_km"`
	Rating       float64       `json:"rating"`
	DeliveryTime string        `json:"delivery_time"`
	Cuisines     []string      `json:"cuisines"`
	PriceRange   string        `json:"price_range"`
	Image        string        `json:"image"`
	Offers       []string      `json:"offers"`
	IsOpen       bool          `json:"is_open"`
	DeliveryFee  float64       `json:"delivery_fee"`
	Menu         []MenuSection `json:"menu"`
}

// MenuSection is an ordered slice instead of a map so that lookups scan
// sections in registration order.
type MenuSection struct {
	Key   string `json:"key"`
	Items []Dish `json:"items"`
}

type Dish struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Veg         bool    `json:"veg"`
	Rating      float64 `json:"rating"`
	Popular     bool    `json:"popular"`
	Category    string  `json:"category"`
}

// CatalogDish is a dish paired with the restaurant it belongs to, for
// cross-restaurant search results.
type CatalogDish struct {
	Dish
	RestaurantID   int    `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
}

type CategoryInfo struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CartLine holds a snapshot of the dish at the time it was added, never a
// reference into the catalog.
type CartLine struct {
	DishID         int       `json:"dish_id"`
	Name           string    `json:"name"`
	Price          float64   `json:"price"`
	Description    string    `json:"description"`
	RestaurantName string    `json:"restaurant_name"`
	Quantity       int       `json:"quantity"`
	AddedAt        time.Time `json:"added_at"`
}

type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypeTakeaway OrderType = "takeaway"
	OrderTypeDineIn   OrderType = "dine-in"
)

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
	PaymentCOD  PaymentMethod = "cod"
)

type Totals struct {
	Subtotal    float64   `json:"subtotal"`
	DeliveryFee float64   `json:"delivery_fee"`
	Tax         float64   `json:"tax"`
	Total       float64   `json:"total"`
	OrderType   OrderType `json:"order_type"`
}

type OrderStatus string

const (
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusPacking        OrderStatus = "packing"
	StatusReadyForPickup OrderStatus = "ready_for_pickup"
	StatusCollected      OrderStatus = "collected"
	StatusReady          OrderStatus = "ready"
	StatusPickedUp       OrderStatus = "picked_up"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusServed         OrderStatus = "served"
)

// StageRecord is one step of an order's fixed progression. ReachedAt stays
// zero until the stage is reached.
type StageRecord struct {
	Status    OrderStatus   `json:"status"`
	Message   string        `json:"message"`
	Icon      string        `json:"icon"`
	Offset    time.Duration `json:"offset"`
	ReachedAt time.Time     `json:"reached_at,omitempty"`
}

type Order struct {
	ID            string        `json:"id"`
	Items         []CartLine    `json:"items"`
	Totals        Totals        `json:"totals"`
	OrderType     OrderType     `json:"order_type"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        OrderStatus   `json:"status"`
	Stages        []StageRecord `json:"stages"`
	CurrentStage  int           `json:"current_stage"`
	EstimatedTime string        `json:"estimated_time"`
	PlacedAt      time.Time     `json:"placed_at"`
}

// Terminal reports whether the order has reached the last stage of its
// progression.
func (o *Order) Terminal() bool {
	return o.CurrentStage >= len(o.Stages)-1
}

// Snapshot returns a deep copy safe to hand out while the tracker keeps
// mutating the original.
func (o *Order) Snapshot() *Order {
	cp := *o
	cp.Items = make([]CartLine, len(o.Items))
	copy(cp.Items, o.Items)
	cp.Stages = make([]StageRecord, len(o.Stages))
	copy(cp.Stages, o.Stages)
	return &cp
}

// OrderEvent is published on every stage transition.
type OrderEvent struct {
	Type      string      `json:"type"`
	OrderID   string      `json:"order_id"`
	Status    OrderStatus `json:"status"`
	Message   string      `json:"message"`
	Timestamp time.Time   `json:"timestamp"`
}
