// Package response turns a classified intent into a structured reply: display
// text, an action tag from a closed set and the action-specific payload.
// Handlers are deterministic in structure; only phrasing and emoji come from
// the session's random source.
package response

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Adityavardhan394/chatbot-restarunt/internal/catalog"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/domain"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/session"
)

const (
	bestDishesMinRating = 4.5
	bestDishesCap       = 5
	categorySearchCap   = 8
	restaurantSearchCap = 6
	cuisineSearchCap    = 4
	fastDeliveryCap     = 4
	fastDeliveryMaxMin  = 25
	defaultBudgetMax    = 150
)

type Generator struct {
	catalog  *catalog.Catalog
	location string
}

func NewGenerator(cat *catalog.Catalog, location string) *Generator {
	return &Generator{catalog: cat, location: location}
}

// Handle dispatches to the per-intent handler and applies cosmetic
// personality on the way out.
func (g *Generator) Handle(it domain.Intent, sess *session.Session) domain.Reply {
	var reply domain.Reply
	switch it.Type {
	case domain.IntentGreeting:
		reply = g.greeting(sess)
	case domain.IntentFindRestaurants:
		reply = g.restaurantSearch()
	case domain.IntentBestDishes:
		reply = g.bestDishes(it)
	case domain.IntentCuisineSearch:
		reply = g.cuisineSearch(it)
	case domain.IntentDishCategorySearch:
		reply = g.categorySearch(it)
	case domain.IntentMenuInquiry:
		reply = g.menuInquiry(sess)
	case domain.IntentAddToCart:
		reply = g.addToCart(it, sess)
	case domain.IntentDietaryFilter:
		reply = g.dietaryFilter(it)
	case domain.IntentPopularItems:
		reply = g.popularItems()
	case domain.IntentDeliveryInquiry:
		reply = g.deliveryInquiry()
	case domain.IntentPriceInquiry:
		reply = g.priceInquiry(it)
	default:
		reply = g.fallback(it, sess)
	}
	return addPersonality(reply, sess)
}

var greetingPool = []string{
	"Hello! Welcome to FoodieBot! 🍽️ I can help you discover amazing restaurants near %s. What are you craving today?",
	"Hi there! 👋 Ready to explore delicious food options in your area? I know all the best spots around %s!",
	"Welcome! 😊 I'm here to help you find the perfect meal from restaurants near you. What type of cuisine are you in the mood for?",
	"Hey! 🤖 Hungry? Let me help you discover fantastic restaurants and order your favorite food right to your doorstep!",
}

func (g *Generator) greeting(sess *session.Session) domain.Reply {
	text := greetingPool[sess.Intn(len(greetingPool))]
	if strings.Contains(text, "%s") {
		text = fmt.Sprintf(text, g.location)
	}
	return domain.Reply{
		Text:   text,
		Action: domain.ActionShowWelcome,
		Data:   domain.WelcomeData{Location: g.location},
	}
}

// restaurantSearch lists the top restaurants sorted by rating descending,
// ties broken by distance ascending.
func (g *Generator) restaurantSearch() domain.Reply {
	restaurants := make([]domain.Restaurant, len(g.catalog.List()))
	copy(restaurants, g.catalog.List())
	sort.SliceStable(restaurants, func(i, j int) bool {
		if restaurants[i].Rating != restaurants[j].Rating {
			return restaurants[i].Rating > restaurants[j].Rating
		}
		return restaurants[i].DistanceKm < restaurants[j].DistanceKm
	})
	if len(restaurants) > restaurantSearchCap {
		restaurants = restaurants[:restaurantSearchCap]
	}

	lines := make([]string, len(restaurants))
	for i, r := range restaurants {
		lines[i] = fmt.Sprintf("🍽️ **%s** (%.1f⭐)\n📍 %s • %.1f km\n🍴 %s\n⏱️ %s • %s",
			r.Name, r.Rating, r.Location, r.DistanceKm, strings.Join(r.Cuisines, ", "), r.DeliveryTime, r.PriceRange)
	}
	return domain.Reply{
		Text:   fmt.Sprintf("Here are the top restaurants near you in %s:\n\n%s\n\nTap on any restaurant to view their menu! 🍽️", g.location, strings.Join(lines, "\n\n")),
		Action: domain.ActionShowRestaurants,
		Data:   restaurants,
	}
}

// sortDishes orders popular dishes first, then by rating descending.
func sortDishes(dishes []domain.CatalogDish) {
	sort.SliceStable(dishes, func(i, j int) bool {
		if dishes[i].Popular != dishes[j].Popular {
			return dishes[i].Popular
		}
		return dishes[i].Rating > dishes[j].Rating
	})
}

func (g *Generator) bestDishes(it domain.Intent) domain.Reply {
	var best []domain.CatalogDish
	for _, d := range g.catalog.DishesByCategory(it.Category) {
		if d.Rating >= bestDishesMinRating {
			best = append(best, d)
		}
	}
	if len(best) == 0 {
		return domain.Reply{
			Text:   fmt.Sprintf("I couldn't find any %s dishes in your area. Let me show you other popular options! 🤔", it.Category),
			Action: domain.ActionShowAlternatives,
			Data:   domain.AlternativesData{RequestedCategory: it.Category},
		}
	}
	sortDishes(best)
	if len(best) > bestDishesCap {
		best = best[:bestDishesCap]
	}
	name := it.Category
	if ci, ok := g.catalog.Category(it.Category); ok {
		name = ci.Name
	}
	return domain.Reply{
		Text:   fmt.Sprintf("Here are the **best %s** dishes near you! 🌟", name),
		Action: domain.ActionShowDishCards,
		Data:   domain.DishCardsData{Dishes: best, Title: "Best " + name, Category: it.Category},
	}
}

func (g *Generator) categorySearch(it domain.Intent) domain.Reply {
	dishes := g.catalog.DishesByCategory(it.Category)
	if len(dishes) == 0 {
		return domain.Reply{
			Text:   fmt.Sprintf("No %s dishes found in your area. Let me show you similar options! 🔍", it.Category),
			Action: domain.ActionShowAlternatives,
			Data:   domain.AlternativesData{RequestedCategory: it.Category},
		}
	}
	sortDishes(dishes)
	total := len(dishes)
	if len(dishes) > categorySearchCap {
		dishes = dishes[:categorySearchCap]
	}
	name := it.Category
	if ci, ok := g.catalog.Category(it.Category); ok {
		name = ci.Name
	}
	return domain.Reply{
		Text:   fmt.Sprintf("Found **%d %s** options for you! 📋", total, name),
		Action: domain.ActionShowDishCards,
		Data:   domain.DishCardsData{Dishes: dishes, Title: name + " Options", Category: it.Category},
	}
}

// cuisineSearch keeps restaurants whose cuisine tags contain the target as a
// case-insensitive substring.
func (g *Generator) cuisineSearch(it domain.Intent) domain.Reply {
	target := strings.ToLower(it.Cuisine)
	var matched []domain.Restaurant
	for _, r := range g.catalog.List() {
		for _, c := range r.Cuisines {
			if strings.Contains(strings.ToLower(c), target) {
				matched = append(matched, r)
				break
			}
		}
	}
	if len(matched) == 0 {
		return domain.Reply{
			Text:   fmt.Sprintf("I couldn't find %s restaurants in your immediate area, but let me show you some similar options that you might love! 🤔", it.Cuisine),
			Action: domain.ActionShowAlternatives,
			Data:   domain.AlternativesData{RequestedCuisine: it.Cuisine},
		}
	}
	shown := matched
	if len(shown) > cuisineSearchCap {
		shown = shown[:cuisineSearchCap]
	}
	lines := make([]string, len(shown))
	for i, r := range shown {
		lines[i] = fmt.Sprintf("🍽️ **%s** (%.1f⭐)\n📍 %.1f km • %s\n🎯 Specializes in %s",
			r.Name, r.Rating, r.DistanceKm, r.DeliveryTime, it.Cuisine)
	}
	return domain.Reply{
		Text:   fmt.Sprintf("Great choice! Here are the best %s restaurants near you:\n\n%s\n\nWhich one catches your eye? 👀", it.Cuisine, strings.Join(lines, "\n\n")),
		Action: domain.ActionShowRestaurants,
		Data:   matched,
	}
}

func (g *Generator) menuInquiry(sess *session.Session) domain.Reply {
	if id := sess.SelectedRestaurant(); id != 0 {
		if r, ok := g.catalog.Get(id); ok {
			return domain.Reply{
				Text:   fmt.Sprintf("Here's the menu for **%s**:\n\n%s\nWhat would you like to add to your cart? 🛒", r.Name, formatMenu(r)),
				Action: domain.ActionShowMenu,
				Data:   *r,
			}
		}
	}
	restaurants := g.catalog.List()
	if len(restaurants) > cuisineSearchCap {
		restaurants = restaurants[:cuisineSearchCap]
	}
	return domain.Reply{
		Text:   "Which restaurant's menu would you like to see? Here are some popular options near you:",
		Action: domain.ActionShowRestaurants,
		Data:   restaurants,
	}
}

func formatMenu(r *domain.Restaurant) string {
	var b strings.Builder
	for _, section := range r.Menu {
		b.WriteString("**")
		b.WriteString(strings.ToUpper(section.Key))
		b.WriteString("**\n")
		for _, item := range section.Items {
			icon := "🔴"
			if item.Veg {
				icon = "🟢"
			}
			fmt.Fprintf(&b, "%s %s - ₹%.0f\n%s\n\n", icon, item.Name, item.Price, item.Description)
		}
	}
	return b.String()
}

func (g *Generator) addToCart(it domain.Intent, sess *session.Session) domain.Reply {
	dish, ok := g.catalog.DishByNameFragment(it.RawText)
	if !ok {
		return domain.Reply{
			Text:   "I couldn't find that dish on any menu near you. Try asking for a category like 'pizza' or 'biryani' to browse options! 🔍",
			Action: domain.ActionShowAlternatives,
			Data:   domain.AlternativesData{},
		}
	}
	line := sess.Engine.AddToCart(dish, it.Quantity)
	totals := sess.Engine.Totals()
	return domain.Reply{
		Text: fmt.Sprintf("✅ **%s** x%d added to your cart! 🛒\n\nPrice: ₹%.0f\nFrom: %s\nCart total: ₹%.2f",
			line.Name, line.Quantity, line.Price, line.RestaurantName, totals.Total),
		Data: line,
	}
}

func (g *Generator) dietaryFilter(it domain.Intent) domain.Reply {
	wantVeg := it.Dietary != domain.DietaryNonVegetarian
	var dishes []domain.CatalogDish
	for _, r := range g.catalog.List() {
		for _, section := range r.Menu {
			for _, d := range section.Items {
				if d.Veg == wantVeg {
					dishes = append(dishes, domain.CatalogDish{Dish: d, RestaurantID: r.ID, RestaurantName: r.Name})
				}
			}
		}
	}
	sortDishes(dishes)
	if len(dishes) > categorySearchCap {
		dishes = dishes[:categorySearchCap]
	}
	title := "Vegetarian Picks"
	text := "Here are the best vegetarian dishes near you! 🥗"
	if !wantVeg {
		title = "Non-Vegetarian Picks"
		text = "Here are the best non-vegetarian dishes near you! 🍗"
	}
	return domain.Reply{
		Text:   text,
		Action: domain.ActionShowDishCards,
		Data:   domain.DishCardsData{Dishes: dishes, Title: title},
	}
}

func (g *Generator) popularItems() domain.Reply {
	var popular []domain.CatalogDish
	for _, r := range g.catalog.List() {
		for _, section := range r.Menu {
			for _, d := range section.Items {
				if d.Popular {
					popular = append(popular, domain.CatalogDish{Dish: d, RestaurantID: r.ID, RestaurantName: r.Name})
				}
			}
		}
	}
	sort.SliceStable(popular, func(i, j int) bool { return popular[i].Rating > popular[j].Rating })
	if len(popular) > fastDeliveryCap {
		popular = popular[:fastDeliveryCap]
	}
	items := make([]domain.PopularItem, len(popular))
	lines := make([]string, len(popular))
	for i, d := range popular {
		items[i] = domain.PopularItem{Restaurant: d.RestaurantName, Item: d.Name, Price: d.Price}
		lines[i] = fmt.Sprintf("⭐ **%s** - ₹%.0f\nFrom %s", d.Name, d.Price, d.RestaurantName)
	}
	return domain.Reply{
		Text:   fmt.Sprintf("Here are the most popular dishes in your area right now:\n\n%s\n\nWant to order any of these? Just let me know! 🌟", strings.Join(lines, "\n\n")),
		Action: domain.ActionShowPopular,
		Data:   items,
	}
}

// deliveryInquiry keeps restaurants whose delivery range starts at 25 minutes
// or less.
func (g *Generator) deliveryInquiry() domain.Reply {
	var fast []domain.Restaurant
	for _, r := range g.catalog.List() {
		if leadingMinutes(r.DeliveryTime) <= fastDeliveryMaxMin {
			fast = append(fast, r)
		}
		if len(fast) == fastDeliveryCap {
			break
		}
	}
	lines := make([]string, len(fast))
	for i, r := range fast {
		lines[i] = fmt.Sprintf("🚀 **%s** - %s\n📍 %.1f km away", r.Name, r.DeliveryTime, r.DistanceKm)
	}
	return domain.Reply{
		Text:   fmt.Sprintf("These restaurants offer the fastest delivery to %s:\n\n%s\n\nAll deliver within 25 minutes! ⚡", g.location, strings.Join(lines, "\n\n")),
		Action: domain.ActionShowFastDelivery,
		Data:   fast,
	}
}

// leadingMinutes parses the first integer of a "25-35 min" range.
func leadingMinutes(deliveryTime string) int {
	i := 0
	for i < len(deliveryTime) && deliveryTime[i] >= '0' && deliveryTime[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0
	}
	n, _ := strconv.Atoi(deliveryTime[:i])
	return n
}

func (g *Generator) priceInquiry(it domain.Intent) domain.Reply {
	pr := domain.PriceRange{Min: 0, Max: defaultBudgetMax}
	if it.PriceRange != nil {
		pr = *it.PriceRange
	}
	var dishes []domain.CatalogDish
	for _, r := range g.catalog.List() {
		for _, section := range r.Menu {
			for _, d := range section.Items {
				if d.Price >= pr.Min && d.Price <= pr.Max {
					dishes = append(dishes, domain.CatalogDish{Dish: d, RestaurantID: r.ID, RestaurantName: r.Name})
				}
			}
		}
	}
	sort.SliceStable(dishes, func(i, j int) bool { return dishes[i].Price < dishes[j].Price })
	if len(dishes) > categorySearchCap {
		dishes = dishes[:categorySearchCap]
	}
	title := fmt.Sprintf("Dishes ₹%.0f-₹%.0f", pr.Min, pr.Max)
	return domain.Reply{
		Text:   fmt.Sprintf("Here are great value options between ₹%.0f and ₹%.0f! 💰", pr.Min, pr.Max),
		Action: domain.ActionShowDishCards,
		Data:   domain.DishCardsData{Dishes: dishes, Title: title},
	}
}

var fallbackPool = []string{
	"I'd love to help you find great food! Try asking me about restaurants near you, specific cuisines, or popular dishes! 🍽️",
	"Not sure what you're looking for? Ask me about nearby restaurants, delivery options, or what's popular in your area! 😊",
	"I'm here to help you discover amazing food! You can ask about restaurants, menus, prices, or place orders. What sounds good? 🤔",
	"Let me help you find something delicious! Try searching for cuisines like 'Indian food' or 'pizza near me'! 🍕",
}

func (g *Generator) fallback(it domain.Intent, sess *session.Session) domain.Reply {
	text := fallbackPool[sess.Intn(len(fallbackPool))]
	if followUp := FollowUpSuggestion(it.RawText, sess.Memory.Context()); followUp != "" {
		text += "\n\n" + followUp
	}
	return domain.Reply{Text: text}
}

var personalityEmojis = []string{"😊", "🍽️", "🤤", "✨", "🎉", "🚀"}

// addPersonality occasionally appends an emoji. Structure (action and data)
// is never touched.
func addPersonality(reply domain.Reply, sess *session.Session) domain.Reply {
	if strings.Contains(reply.Text, "😊") || strings.Contains(reply.Text, "🍽️") {
		return reply
	}
	if sess.Float64() > 0.3 {
		reply.Text += " " + personalityEmojis[sess.Intn(len(personalityEmojis))]
	}
	return reply
}
