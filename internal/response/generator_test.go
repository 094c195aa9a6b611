package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adityavardhan394/chatbot-restarunt/internal/catalog"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/domain"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/order"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/session"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/storage"
)

func newTestSession() *session.Session {
	m := session.NewManager(func() *order.Engine {
		return order.NewEngine(storage.NewMemoryStore(), nil, nil, order.NewManualScheduler())
	}).WithRandSource(func() int64 { return 1 })
	return m.GetOrCreate("test")
}

func newTestGenerator() *Generator {
	return NewGenerator(catalog.Default(), "Madhapur")
}

func TestGreeting(t *testing.T) {
	g := newTestGenerator()
	reply := g.Handle(domain.Intent{Type: domain.IntentGreeting}, newTestSession())

	assert.Equal(t, domain.ActionShowWelcome, reply.Action)
	assert.Equal(t, domain.WelcomeData{Location: "Madhapur"}, reply.Data)
	assert.NotEmpty(t, reply.Text)
}

func TestRestaurantSearchSortsByRatingThenDistance(t *testing.T) {
	g := newTestGenerator()
	reply := g.Handle(domain.Intent{Type: domain.IntentFindRestaurants}, newTestSession())

	require.Equal(t, domain.ActionShowRestaurants, reply.Action)
	restaurants, ok := reply.Data.([]domain.Restaurant)
	require.True(t, ok)
	require.Len(t, restaurants, 6)
	assert.Equal(t, "Biryani Paradise", restaurants[0].Name)
	for i := 1; i < len(restaurants); i++ {
		assert.GreaterOrEqual(t, restaurants[i-1].Rating, restaurants[i].Rating)
	}
}

func TestBestDishesFiltersAndSorts(t *testing.T) {
	g := newTestGenerator()
	reply := g.Handle(domain.Intent{Type: domain.IntentBestDishes, Category: "biryani"}, newTestSession())

	require.Equal(t, domain.ActionShowDishCards, reply.Action)
	data, ok := reply.Data.(domain.DishCardsData)
	require.True(t, ok)
	require.Len(t, data.Dishes, 3)
	for _, d := range data.Dishes {
		assert.GreaterOrEqual(t, d.Rating, 4.5)
	}
	// popular first, then rating descending
	assert.Equal(t, "Chicken Biryani", data.Dishes[0].Name)
	assert.Equal(t, "Mutton Biryani", data.Dishes[1].Name)
	assert.Equal(t, "Veg Biryani", data.Dishes[2].Name)
}

func TestBestDishesUnknownCategoryOffersAlternatives(t *testing.T) {
	g := newTestGenerator()
	reply := g.Handle(domain.Intent{Type: domain.IntentBestDishes, Category: "sushi"}, newTestSession())

	require.Equal(t, domain.ActionShowAlternatives, reply.Action)
	data, ok := reply.Data.(domain.AlternativesData)
	require.True(t, ok)
	assert.Equal(t, "sushi", data.RequestedCategory)
}

func TestCuisineSearchMatchesSubstring(t *testing.T) {
	g := newTestGenerator()
	reply := g.Handle(domain.Intent{Type: domain.IntentCuisineSearch, Cuisine: "indian"}, newTestSession())

	require.Equal(t, domain.ActionShowRestaurants, reply.Action)
	restaurants, ok := reply.Data.([]domain.Restaurant)
	require.True(t, ok)
	// "indian" matches both "Indian" and "South Indian" tags
	names := make([]string, len(restaurants))
	for i, r := range restaurants {
		names[i] = r.Name
	}
	assert.Contains(t, names, "Biryani Paradise")
	assert.Contains(t, names, "Dosa Junction")
}

func TestCuisineSearchMissOffersAlternatives(t *testing.T) {
	g := newTestGenerator()
	reply := g.Handle(domain.Intent{Type: domain.IntentCuisineSearch, Cuisine: "mexican"}, newTestSession())

	require.Equal(t, domain.ActionShowAlternatives, reply.Action)
	data, ok := reply.Data.(domain.AlternativesData)
	require.True(t, ok)
	assert.Equal(t, "mexican", data.RequestedCuisine)
}

func TestMenuInquiry(t *testing.T) {
	g := newTestGenerator()

	sess := newTestSession()
	reply := g.Handle(domain.Intent{Type: domain.IntentMenuInquiry}, sess)
	require.Equal(t, domain.ActionShowRestaurants, reply.Action)
	restaurants, ok := reply.Data.([]domain.Restaurant)
	require.True(t, ok)
	assert.Len(t, restaurants, 4)

	sess.SelectRestaurant(2)
	reply = g.Handle(domain.Intent{Type: domain.IntentMenuInquiry}, sess)
	require.Equal(t, domain.ActionShowMenu, reply.Action)
	rest, ok := reply.Data.(domain.Restaurant)
	require.True(t, ok)
	assert.Equal(t, "Dosa Junction", rest.Name)
	assert.Contains(t, reply.Text, "Masala Dosa")
}

func TestAddToCart(t *testing.T) {
	g := newTestGenerator()
	sess := newTestSession()

	reply := g.Handle(domain.Intent{
		Type:     domain.IntentAddToCart,
		RawText:  "add masala dosa please",
		Quantity: 2,
	}, sess)

	assert.Equal(t, domain.ActionNone, reply.Action)
	lines := sess.Engine.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 202, lines[0].DishID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Contains(t, reply.Text, "Masala Dosa")
}

func TestAddToCartUnknownDish(t *testing.T) {
	g := newTestGenerator()
	sess := newTestSession()

	reply := g.Handle(domain.Intent{Type: domain.IntentAddToCart, RawText: "add quinoa bowl"}, sess)

	assert.Equal(t, domain.ActionShowAlternatives, reply.Action)
	assert.Empty(t, sess.Engine.Lines())
}

func TestDietaryFilter(t *testing.T) {
	g := newTestGenerator()

	reply := g.Handle(domain.Intent{Type: domain.IntentDietaryFilter, Dietary: domain.DietaryNonVegetarian}, newTestSession())
	require.Equal(t, domain.ActionShowDishCards, reply.Action)
	data, ok := reply.Data.(domain.DishCardsData)
	require.True(t, ok)
	require.NotEmpty(t, data.Dishes)
	assert.LessOrEqual(t, len(data.Dishes), 8)
	for _, d := range data.Dishes {
		assert.False(t, d.Veg)
	}

	reply = g.Handle(domain.Intent{Type: domain.IntentDietaryFilter, Dietary: domain.DietaryVegetarian}, newTestSession())
	data = reply.Data.(domain.DishCardsData)
	for _, d := range data.Dishes {
		assert.True(t, d.Veg)
	}
}

func TestPopularItems(t *testing.T) {
	g := newTestGenerator()
	reply := g.Handle(domain.Intent{Type: domain.IntentPopularItems}, newTestSession())

	require.Equal(t, domain.ActionShowPopular, reply.Action)
	items, ok := reply.Data.([]domain.PopularItem)
	require.True(t, ok)
	require.Len(t, items, 4)
	assert.Equal(t, "Chicken Biryani", items[0].Item)
}

func TestDeliveryInquiryKeepsFastRestaurants(t *testing.T) {
	g := newTestGenerator()
	reply := g.Handle(domain.Intent{Type: domain.IntentDeliveryInquiry}, newTestSession())

	require.Equal(t, domain.ActionShowFastDelivery, reply.Action)
	restaurants, ok := reply.Data.([]domain.Restaurant)
	require.True(t, ok)
	require.Len(t, restaurants, 4)
	for _, r := range restaurants {
		assert.LessOrEqual(t, leadingMinutes(r.DeliveryTime), 25)
	}
}

func TestPriceInquiryDefaultBudget(t *testing.T) {
	g := newTestGenerator()
	reply := g.Handle(domain.Intent{Type: domain.IntentPriceInquiry}, newTestSession())

	require.Equal(t, domain.ActionShowDishCards, reply.Action)
	data, ok := reply.Data.(domain.DishCardsData)
	require.True(t, ok)
	require.NotEmpty(t, data.Dishes)
	assert.Len(t, data.Dishes, 8)
	// cheapest first
	assert.Equal(t, "Samosa", data.Dishes[0].Name)
	for i := 1; i < len(data.Dishes); i++ {
		assert.LessOrEqual(t, data.Dishes[i-1].Price, data.Dishes[i].Price)
	}
	for _, d := range data.Dishes {
		assert.LessOrEqual(t, d.Price, 150.0)
	}
}

func TestPriceInquiryExplicitRange(t *testing.T) {
	g := newTestGenerator()
	reply := g.Handle(domain.Intent{
		Type:       domain.IntentPriceInquiry,
		PriceRange: &domain.PriceRange{Min: 200, Max: 300},
	}, newTestSession())

	data, ok := reply.Data.(domain.DishCardsData)
	require.True(t, ok)
	for _, d := range data.Dishes {
		assert.GreaterOrEqual(t, d.Price, 200.0)
		assert.LessOrEqual(t, d.Price, 300.0)
	}
}

func TestFallbackSuggestsFollowUp(t *testing.T) {
	g := newTestGenerator()
	sess := newTestSession()

	reply := g.Handle(domain.Intent{Type: domain.IntentGeneral, RawText: "I am so hungry"}, sess)
	assert.Equal(t, domain.ActionNone, reply.Action)
	assert.Contains(t, reply.Text, "Feeling hungry?")
}

func TestFollowUpSuggestion(t *testing.T) {
	assert.Contains(t, FollowUpSuggestion("something cheap maybe", ""), "budget-friendly")
	assert.Contains(t, FollowUpSuggestion("", "user: I want spicy food"), "hungry")
	assert.Empty(t, FollowUpSuggestion("hello", ""))
}
