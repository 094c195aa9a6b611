// Package intent classifies free-text user input into a fixed set of intents
// using ordered keyword-pattern matching. Precedence is encoded in an explicit
// rule table: the first rule that matches wins, so reordering the table is a
// data edit.
package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Adityavardhan394/chatbot-restarunt/internal/domain"
)

const (
	confidenceHigh     = 0.9
	confidenceMedium   = 0.8
	confidenceFallback = 0.5
)

var (
	greetingWords    = []string{"hello", "hi", "hey", "good", "morning", "afternoon", "evening"}
	searchWords      = []string{"find", "show", "search", "nearby", "restaurants", "places"}
	superlativeWords = []string{"best", "top", "good", "popular", "rated"}
	menuWords        = []string{"menu", "food", "dish", "items", "order"}
	cartWords        = []string{"add", "order", "buy", "get"}
	dietaryWords     = []string{"vegetarian", "vegan", "veg", "non-veg"}
	popularWords     = []string{"popular", "trending", "best", "top", "famous"}
	deliveryWords    = []string{"delivery", "deliver", "time", "fast"}
	priceWords       = []string{"price", "cost", "cheap", "expensive", "budget"}
	ecoWords         = []string{"eco", "green", "sustainable"}

	quantityPattern   = regexp.MustCompile(`\d+`)
	priceRangePattern = regexp.MustCompile(`(\d+)\s*-\s*(\d+)`)
)

// cuisineTable maps cuisine names to their trigger keywords. Table order is
// significant: the first cuisine with a token overlap wins. Matching is
// token-exact, so multi-word keywords here never fire.
var cuisineTable = []struct {
	name     string
	keywords []string
}{
	{"indian", []string{"indian", "biryani", "curry", "dal", "roti"}},
	{"south indian", []string{"south", "dosa", "idli", "sambar", "vada"}},
	{"chinese", []string{"chinese", "noodles", "fried rice", "manchurian"}},
	{"italian", []string{"italian", "pizza", "pasta"}},
	{"fast food", []string{"fast", "burger", "fries", "quick"}},
	{"beverages", []string{"tea", "coffee", "chai", "drinks"}},
}

// categoryTable maps coarse dish categories to trigger keywords, again in
// significant order. Every keyword here also matches as a substring of the
// whole lowercased message, so "rice" fires inside "price".
var categoryTable = []struct {
	key      string
	keywords []string
}{
	{"biryani", []string{"biryani", "biriyani", "rice"}},
	{"pizza", []string{"pizza", "pizzas"}},
	{"dosa", []string{"dosa", "dosas", "crepe"}},
	{"burger", []string{"burger", "burgers"}},
	{"noodles", []string{"noodles", "noodle"}},
	{"beverage", []string{"tea", "coffee", "chai", "drink", "beverage"}},
	{"curry", []string{"curry", "curries", "gravy"}},
	{"fast_food", []string{"fries", "nuggets", "wings"}},
	{"snack", []string{"samosa", "pakoda", "snacks"}},
	{"fried_rice", []string{"fried rice", "rice"}},
}

type message struct {
	raw    string
	lower  string
	tokens []string
}

func preprocess(text string) message {
	lower := strings.ToLower(text)
	return message{raw: text, lower: lower, tokens: strings.Fields(lower)}
}

func (m message) hasAny(words []string) bool {
	for _, t := range m.tokens {
		for _, w := range words {
			if t == w {
				return true
			}
		}
	}
	return false
}

type rule struct {
	name  string
	apply func(c *Classifier, m message) (domain.Intent, bool)
}

type Classifier struct {
	rules []rule
}

// NewClassifier builds the classifier with its fixed precedence table.
func NewClassifier() *Classifier {
	c := &Classifier{}
	c.rules = []rule{
		{"greeting", func(c *Classifier, m message) (domain.Intent, bool) {
			if m.hasAny(greetingWords) {
				return domain.Intent{Type: domain.IntentGreeting, Confidence: confidenceHigh}, true
			}
			return domain.Intent{}, false
		}},
		{"restaurant_search", func(c *Classifier, m message) (domain.Intent, bool) {
			if m.hasAny(searchWords) {
				return domain.Intent{Type: domain.IntentFindRestaurants, Confidence: confidenceHigh}, true
			}
			return domain.Intent{}, false
		}},
		{"best_dishes", func(c *Classifier, m message) (domain.Intent, bool) {
			cat := detectCategory(m)
			if cat != "" && m.hasAny(superlativeWords) {
				return domain.Intent{Type: domain.IntentBestDishes, Category: cat, Confidence: confidenceHigh}, true
			}
			return domain.Intent{}, false
		}},
		{"cuisine_search", func(c *Classifier, m message) (domain.Intent, bool) {
			if cuisine := detectCuisine(m); cuisine != "" {
				return domain.Intent{Type: domain.IntentCuisineSearch, Cuisine: cuisine, Confidence: confidenceMedium}, true
			}
			return domain.Intent{}, false
		}},
		{"dish_category_search", func(c *Classifier, m message) (domain.Intent, bool) {
			if cat := detectCategory(m); cat != "" {
				return domain.Intent{Type: domain.IntentDishCategorySearch, Category: cat, Confidence: confidenceMedium}, true
			}
			return domain.Intent{}, false
		}},
		{"menu_inquiry", func(c *Classifier, m message) (domain.Intent, bool) {
			if m.hasAny(menuWords) {
				return domain.Intent{Type: domain.IntentMenuInquiry, Confidence: confidenceMedium}, true
			}
			return domain.Intent{}, false
		}},
		{"add_to_cart", func(c *Classifier, m message) (domain.Intent, bool) {
			if m.hasAny(cartWords) {
				return domain.Intent{Type: domain.IntentAddToCart, Confidence: confidenceMedium}, true
			}
			return domain.Intent{}, false
		}},
		{"dietary_filter", func(c *Classifier, m message) (domain.Intent, bool) {
			if m.hasAny(dietaryWords) {
				return domain.Intent{Type: domain.IntentDietaryFilter, Dietary: detectDietary(m), Confidence: confidenceMedium}, true
			}
			return domain.Intent{}, false
		}},
		{"popular_items", func(c *Classifier, m message) (domain.Intent, bool) {
			if m.hasAny(popularWords) {
				return domain.Intent{Type: domain.IntentPopularItems, Confidence: confidenceMedium}, true
			}
			return domain.Intent{}, false
		}},
		{"delivery_inquiry", func(c *Classifier, m message) (domain.Intent, bool) {
			if m.hasAny(deliveryWords) {
				return domain.Intent{Type: domain.IntentDeliveryInquiry, Confidence: confidenceMedium}, true
			}
			return domain.Intent{}, false
		}},
		{"price_inquiry", func(c *Classifier, m message) (domain.Intent, bool) {
			if m.hasAny(priceWords) {
				return domain.Intent{Type: domain.IntentPriceInquiry, PriceRange: extractPriceRange(m.lower), Confidence: confidenceMedium}, true
			}
			return domain.Intent{}, false
		}},
	}
	return c
}

// Classify normalizes the text and evaluates the rule table in order. The
// fallback is a general intent; classification never fails.
func (c *Classifier) Classify(text string) domain.Intent {
	m := preprocess(text)
	for _, r := range c.rules {
		if it, ok := r.apply(c, m); ok {
			it.RawText = text
			it.Quantity = extractQuantity(m.lower)
			return it
		}
	}
	return domain.Intent{
		Type:       domain.IntentGeneral,
		Confidence: confidenceFallback,
		Quantity:   extractQuantity(m.lower),
		RawText:    text,
	}
}

// Rules exposes the precedence order for inspection.
func (c *Classifier) Rules() []string {
	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.name
	}
	return names
}

// EcoToggle reports whether the message asks to flip eco-friendly mode. It is
// checked before intent dispatch.
func EcoToggle(text string) bool {
	return preprocess(text).hasAny(ecoWords)
}

func detectCuisine(m message) string {
	for _, entry := range cuisineTable {
		if m.hasAny(entry.keywords) {
			return entry.name
		}
	}
	return ""
}

func detectCategory(m message) string {
	for _, entry := range categoryTable {
		for _, kw := range entry.keywords {
			if m.hasAny([]string{kw}) || strings.Contains(m.lower, kw) {
				return entry.key
			}
		}
	}
	return ""
}

// detectDietary defaults ambiguous input to vegetarian.
func detectDietary(m message) domain.Dietary {
	if m.hasAny([]string{"vegetarian", "veg"}) {
		return domain.DietaryVegetarian
	}
	if m.hasAny([]string{"non-veg", "chicken", "mutton"}) {
		return domain.DietaryNonVegetarian
	}
	return domain.DietaryVegetarian
}

// extractQuantity returns the first integer literal in the text, or 1.
func extractQuantity(lower string) int {
	match := quantityPattern.FindString(lower)
	if match == "" {
		return 1
	}
	n, err := strconv.Atoi(match)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func extractPriceRange(lower string) *domain.PriceRange {
	match := priceRangePattern.FindStringSubmatch(lower)
	if match == nil {
		return nil
	}
	min, _ := strconv.ParseFloat(match[1], 64)
	max, _ := strconv.ParseFloat(match[2], 64)
	return &domain.PriceRange{Min: min, Max: max}
}
