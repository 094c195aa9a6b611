package domain

type IntentType string

const (
	IntentGreeting           IntentType = "greeting"
	IntentFindRestaurants    IntentType = "find_restaurants"
	IntentBestDishes         IntentType = "best_dishes"
	IntentCuisineSearch      IntentType = "cuisine_search"
	IntentDishCategorySearch IntentType = "dish_category_search"
	IntentMenuInquiry        IntentType = "menu_inquiry"
	IntentAddToCart          IntentType = "add_to_cart"
	IntentDietaryFilter      IntentType = "dietary_filter"
	IntentPopularItems       IntentType = "popular_items"
	IntentDeliveryInquiry    IntentType = "delivery_inquiry"
	IntentPriceInquiry       IntentType = "price_inquiry"
	IntentGeneral            IntentType = "general"
)

type Dietary string

const (
	DietaryVegetarian    Dietary = "vegetarian"
	DietaryNonVegetarian Dietary = "non-vegetarian"
)

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Intent is the transient classification result for one user message.
type Intent struct {
	Type       IntentType  `json:"type"`
	Confidence float64     `json:"confidence"`
	Category   string      `json:"category,omitempty"`
	Cuisine    string      `json:"cuisine,omitempty"`
	Dietary    Dietary     `json:"dietary,omitempty"`
	Quantity   int         `json:"quantity,omitempty"`
	PriceRange *PriceRange `json:"price_range,omitempty"`
	RawText    string      `json:"-"`
}

type Action string

const (
	ActionNone             Action = ""
	ActionShowWelcome      Action = "show_welcome"
	ActionShowRestaurants  Action = "show_restaurants"
	ActionShowMenu         Action = "show_menu"
	ActionShowDishCards    Action = "show_dish_cards"
	ActionShowPopular      Action = "show_popular"
	ActionShowFastDelivery Action = "show_fast_delivery"
	ActionShowAlternatives Action = "show_alternatives"
	ActionToggleEcoMode    Action = "toggle_eco_mode"
)

// Reply is the structured result handed to the presentation layer. Data is the
// action-specific payload; its concrete type is fixed per action tag.
type Reply struct {
	Text   string `json:"text"`
	Action Action `json:"action,omitempty"`
	Data   any    `json:"data,omitempty"`
}

type WelcomeData struct {
	Location string `json:"location"`
}

type DishCardsData struct {
	Dishes   []CatalogDish `json:"dishes"`
	Title    string        `json:"title"`
	Category string        `json:"category"`
}

type AlternativesData struct {
	RequestedCuisine  string `json:"requested_cuisine,omitempty"`
	RequestedCategory string `json:"requested_category,omitempty"`
}

type EcoModeData struct {
	Enabled bool `json:"eco_friendly_mode"`
}

type PopularItem struct {
	Restaurant string  `json:"restaurant"`
	Item       string  `json:"item"`
	Price      float64 `json:"price"`
}
