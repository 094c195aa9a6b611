package catalog

import "github.com/Adityavardhan394/chatbot-restarunt/internal/domain"

// Seed returns the built-in restaurant registry for the Nagaram-Dammiguda
// area, used when no database is configured.
func Seed() []domain.Restaurant {
	return []domain.Restaurant{
		{
			ID:           1,
			Name:         "Biryani Paradise",
			Location:     "Nagaram Main Road",
			DistanceKm:   0.8,
			Rating:       4.5,
			DeliveryTime: "25-35 min",
			Cuisines:     []string{"Indian", "Biryani", "Hyderabadi"},
			PriceRange:   "₹₹",
			Image:        "🍛",
			Offers:       []string{"50% off on orders above ₹300"},
			IsOpen:       true,
			DeliveryFee:  30,
			Menu: []domain.MenuSection{
				{Key: "biryani", Items: []domain.Dish{
					{ID: 101, Name: "Chicken Biryani", Price: 180, Description: "Aromatic basmati rice with tender chicken", Veg: false, Rating: 4.8, Popular: true, Category: "biryani"},
					{ID: 102, Name: "Mutton Biryani", Price: 220, Description: "Premium mutton with fragrant spices", Veg: false, Rating: 4.7, Popular: true, Category: "biryani"},
					{ID: 103, Name: "Veg Biryani", Price: 150, Description: "Mixed vegetables with saffron rice", Veg: true, Rating: 4.5, Popular: false, Category: "biryani"},
					{ID: 104, Name: "Egg Biryani", Price: 160, Description: "Boiled eggs with spiced rice", Veg: false, Rating: 4.3, Popular: false, Category: "biryani"},
				}},
				{Key: "curries", Items: []domain.Dish{
					{ID: 105, Name: "Butter Chicken", Price: 160, Description: "Creamy tomato-based chicken curry", Veg: false, Rating: 4.6, Popular: true, Category: "curry"},
					{ID: 106, Name: "Dal Tadka", Price: 90, Description: "Yellow lentils with tempering", Veg: true, Rating: 4.4, Popular: false, Category: "curry"},
					{ID: 107, Name: "Paneer Butter Masala", Price: 140, Description: "Cottage cheese in rich gravy", Veg: true, Rating: 4.5, Popular: true, Category: "curry"},
				}},
			},
		},
		{
			ID:           2,
			Name:         "Dosa Junction",
			Location:     "Dammiguda Circle",
			DistanceKm:   1.2,
			Rating:       4.3,
			DeliveryTime: "20-30 min",
			Cuisines:     []string{"South Indian", "Dosa", "Breakfast"},
			PriceRange:   "₹",
			Image:        "🥞",
			Offers:       []string{"Free chutney with every order"},
			IsOpen:       true,
			DeliveryFee:  25,
			Menu: []domain.MenuSection{
				{Key: "dosas", Items: []domain.Dish{
					{ID: 201, Name: "Plain Dosa", Price: 80, Description: "Crispy rice crepe", Veg: true, Rating: 4.3, Popular: false, Category: "dosa"},
					{ID: 202, Name: "Masala Dosa", Price: 100, Description: "Dosa with spiced potato filling", Veg: true, Rating: 4.7, Popular: true, Category: "dosa"},
					{ID: 203, Name: "Cheese Dosa", Price: 120, Description: "Dosa with cheese filling", Veg: true, Rating: 4.4, Popular: true, Category: "dosa"},
					{ID: 204, Name: "Chicken Dosa", Price: 140, Description: "Dosa with chicken filling", Veg: false, Rating: 4.5, Popular: false, Category: "dosa"},
				}},
				{Key: "idli_vada", Items: []domain.Dish{
					{ID: 205, Name: "Idli (2pcs)", Price: 60, Description: "Steamed rice cakes", Veg: true, Rating: 4.5, Popular: true, Category: "south_indian"},
					{ID: 206, Name: "Vada (2pcs)", Price: 70, Description: "Fried lentil donuts", Veg: true, Rating: 4.2, Popular: false, Category: "south_indian"},
					{ID: 207, Name: "Sambar Vada", Price: 80, Description: "Vada in sambar", Veg: true, Rating: 4.4, Popular: false, Category: "south_indian"},
				}},
			},
		},
		{
			ID:           3,
			Name:         "Pizza Corner",
			Location:     "Nagaram X Roads",
			DistanceKm:   0.5,
			Rating:       4.1,
			DeliveryTime: "30-40 min",
			Cuisines:     []string{"Italian", "Pizza", "Fast Food"},
			PriceRange:   "₹₹",
			Image:        "🍕",
			Offers:       []string{"Buy 1 Get 1 on medium pizzas"},
			IsOpen:       true,
			DeliveryFee:  35,
			Menu: []domain.MenuSection{
				{Key: "pizzas", Items: []domain.Dish{
					{ID: 301, Name: "Margherita Pizza", Price: 200, Description: "Classic tomato and mozzarella", Veg: true, Rating: 4.5, Popular: true, Category: "pizza"},
					{ID: 302, Name: "Chicken Supreme", Price: 280, Description: "Chicken with vegetables", Veg: false, Rating: 4.6, Popular: true, Category: "pizza"},
					{ID: 303, Name: "Paneer Tikka Pizza", Price: 250, Description: "Indian style paneer pizza", Veg: true, Rating: 4.4, Popular: false, Category: "pizza"},
					{ID: 304, Name: "Pepperoni Pizza", Price: 300, Description: "Spicy pepperoni with cheese", Veg: false, Rating: 4.7, Popular: true, Category: "pizza"},
				}},
				{Key: "sides", Items: []domain.Dish{
					{ID: 305, Name: "Garlic Bread", Price: 120, Description: "Herb-infused garlic bread", Veg: true, Rating: 4.2, Popular: false, Category: "appetizer"},
					{ID: 306, Name: "Chicken Wings", Price: 180, Description: "Spicy chicken wings", Veg: false, Rating: 4.5, Popular: true, Category: "appetizer"},
				}},
			},
		},
		{
			ID:           4,
			Name:         "Burger King",
			Location:     "Dammiguda Main Road",
			DistanceKm:   1.5,
			Rating:       4.0,
			DeliveryTime: "20-30 min",
			Cuisines:     []string{"American", "Burgers", "Fast Food"},
			PriceRange:   "₹₹",
			Image:        "🍔",
			Offers:       []string{"20% off on combo meals"},
			IsOpen:       true,
			DeliveryFee:  40,
			Menu: []domain.MenuSection{
				{Key: "burgers", Items: []domain.Dish{
					{ID: 401, Name: "Whopper", Price: 220, Description: "Flame-grilled beef burger", Veg: false, Rating: 4.4, Popular: true, Category: "burger"},
					{ID: 402, Name: "Chicken Maharaja", Price: 180, Description: "Spicy chicken burger", Veg: false, Rating: 4.6, Popular: true, Category: "burger"},
					{ID: 403, Name: "Veg Whopper", Price: 160, Description: "Plant-based patty burger", Veg: true, Rating: 4.2, Popular: false, Category: "burger"},
				}},
				{Key: "sides", Items: []domain.Dish{
					{ID: 404, Name: "French Fries", Price: 80, Description: "Crispy golden fries", Veg: true, Rating: 4.3, Popular: true, Category: "fast_food"},
					{ID: 405, Name: "Chicken Nuggets", Price: 120, Description: "Crispy chicken pieces", Veg: false, Rating: 4.1, Popular: false, Category: "fast_food"},
				}},
			},
		},
		{
			ID:           5,
			Name:         "Chai Sutta Bar",
			Location:     "Nagaram Bus Stop",
			DistanceKm:   0.3,
			Rating:       4.4,
			DeliveryTime: "15-25 min",
			Cuisines:     []string{"Beverages", "Snacks", "Street Food"},
			PriceRange:   "₹",
			Image:        "☕",
			Offers:       []string{"Free delivery on orders above ₹150"},
			IsOpen:       true,
			DeliveryFee:  20,
			Menu: []domain.MenuSection{
				{Key: "beverages", Items: []domain.Dish{
					{ID: 501, Name: "Masala Chai", Price: 25, Description: "Traditional spiced tea", Veg: true, Rating: 4.7, Popular: true, Category: "beverage"},
					{ID: 502, Name: "Filter Coffee", Price: 30, Description: "South Indian filter coffee", Veg: true, Rating: 4.5, Popular: true, Category: "beverage"},
					{ID: 503, Name: "Lemon Tea", Price: 20, Description: "Refreshing lemon tea", Veg: true, Rating: 4.2, Popular: false, Category: "beverage"},
				}},
				{Key: "snacks", Items: []domain.Dish{
					{ID: 504, Name: "Samosa", Price: 15, Description: "Crispy fried pastry", Veg: true, Rating: 4.4, Popular: true, Category: "snack"},
					{ID: 505, Name: "Pakoda", Price: 40, Description: "Mixed vegetable fritters", Veg: true, Rating: 4.3, Popular: false, Category: "snack"},
				}},
			},
		},
		{
			ID:           6,
			Name:         "Chinese Dragon",
			Location:     "Dammiguda Market",
			DistanceKm:   1.0,
			Rating:       4.2,
			DeliveryTime: "25-35 min",
			Cuisines:     []string{"Chinese", "Indo-Chinese", "Asian"},
			PriceRange:   "₹₹",
			Image:        "🍜",
			Offers:       []string{"30% off on weekdays"},
			IsOpen:       true,
			DeliveryFee:  30,
			Menu: []domain.MenuSection{
				{Key: "noodles", Items: []domain.Dish{
					{ID: 601, Name: "Chicken Noodles", Price: 140, Description: "Stir-fried noodles with chicken", Veg: false, Rating: 4.5, Popular: true, Category: "noodles"},
					{ID: 602, Name: "Veg Noodles", Price: 120, Description: "Mixed vegetable noodles", Veg: true, Rating: 4.3, Popular: false, Category: "noodles"},
					{ID: 603, Name: "Schezwan Noodles", Price: 150, Description: "Spicy Schezwan sauce noodles", Veg: true, Rating: 4.6, Popular: true, Category: "noodles"},
				}},
				{Key: "rice", Items: []domain.Dish{
					{ID: 604, Name: "Chicken Fried Rice", Price: 160, Description: "Wok-tossed rice with chicken", Veg: false, Rating: 4.4, Popular: true, Category: "fried_rice"},
					{ID: 605, Name: "Veg Fried Rice", Price: 130, Description: "Vegetable fried rice", Veg: true, Rating: 4.2, Popular: false, Category: "fried_rice"},
				}},
			},
		},
	}
}

// SeedCategories returns the display descriptors for the coarse dish
// categories used in cross-restaurant search.
func SeedCategories() []domain.CategoryInfo {
	return []domain.CategoryInfo{
		{Key: "biryani", Name: "Biryani", Description: "Aromatic rice dishes with premium ingredients", Icon: "🍛"},
		{Key: "pizza", Name: "Pizza", Description: "Italian classics with fresh toppings", Icon: "🍕"},
		{Key: "dosa", Name: "Dosa", Description: "South Indian crispy crepes", Icon: "🥞"},
		{Key: "burger", Name: "Burger", Description: "Juicy burgers with premium patties", Icon: "🍔"},
		{Key: "noodles", Name: "Noodles", Description: "Stir-fried noodles with authentic flavors", Icon: "🍜"},
		{Key: "beverage", Name: "Beverages", Description: "Refreshing drinks and traditional teas", Icon: "☕"},
		{Key: "curry", Name: "Curry", Description: "Rich gravies with authentic spices", Icon: "🍛"},
		{Key: "fast_food", Name: "Fast Food", Description: "Quick bites and crispy snacks", Icon: "🍟"},
	}
}
