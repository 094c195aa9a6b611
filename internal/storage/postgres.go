package storage

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/Adityavardhan394/chatbot-restarunt/internal/domain"
)

// CatalogRepository loads the restaurant catalog from Postgres. The catalog
// is read once at startup; the in-memory seed is the fallback when no
// database is configured.
type CatalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) LoadRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, location, distance_km, rating, delivery_time,
		       cuisines, price_range, image, offers, is_open, delivery_fee
		FROM restaurants
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	index := make(map[int]int)
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Location, &rest.DistanceKm,
			&rest.Rating, &rest.DeliveryTime, pq.Array(&rest.Cuisines), &rest.PriceRange,
			&rest.Image, pq.Array(&rest.Offers), &rest.IsOpen, &rest.DeliveryFee); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		index[rest.ID] = len(restaurants)
		restaurants = append(restaurants, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate restaurants: %w", err)
	}

	if err := r.loadDishes(restaurants, index); err != nil {
		return nil, err
	}
	return restaurants, nil
}

// loadDishes groups dishes into menu sections keyed by section name, keeping
// the order sections first appear in for each restaurant.
func (r *CatalogRepository) loadDishes(restaurants []domain.Restaurant, index map[int]int) error {
	rows, err := r.DB.Query(`
		SELECT restaurant_id, section, id, name, price, description,
		       veg, rating, popular, category
		FROM dishes
		ORDER BY restaurant_id, id`)
	if err != nil {
		return fmt.Errorf("query dishes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var restaurantID int
		var section string
		var d domain.Dish
		if err := rows.Scan(&restaurantID, &section, &d.ID, &d.Name, &d.Price,
			&d.Description, &d.Veg, &d.Rating, &d.Popular, &d.Category); err != nil {
			return fmt.Errorf("scan dish: %w", err)
		}
		i, ok := index[restaurantID]
		if !ok {
			continue
		}
		rest := &restaurants[i]
		placed := false
		for j := range rest.Menu {
			if rest.Menu[j].Key == section {
				rest.Menu[j].Items = append(rest.Menu[j].Items, d)
				placed = true
				break
			}
		}
		if !placed {
			rest.Menu = append(rest.Menu, domain.MenuSection{Key: section, Items: []domain.Dish{d}})
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate dishes: %w", err)
	}
	return nil
}
