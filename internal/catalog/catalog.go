// Package catalog holds the static registry of restaurants and their menus.
// The registry is immutable after construction; all lookups are
// side-effect-free and scan in registration order.
package catalog

import (
	"strings"

	"github.com/Adityavardhan394/chatbot-restarunt/internal/domain"
)

type Catalog struct {
	restaurants []domain.Restaurant
	categories  []domain.CategoryInfo
	byID        map[int]int
}

func New(restaurants []domain.Restaurant) *Catalog {
	c := &Catalog{
		restaurants: restaurants,
		categories:  SeedCategories(),
		byID:        make(map[int]int, len(restaurants)),
	}
	for i, r := range restaurants {
		c.byID[r.ID] = i
	}
	return c
}

// Default builds a catalog from the built-in seed data.
func Default() *Catalog {
	return New(Seed())
}

func (c *Catalog) List() []domain.Restaurant {
	return c.restaurants
}

func (c *Catalog) Get(id int) (*domain.Restaurant, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.restaurants[i], true
}

// DishesByCategory collects every dish tagged with the coarse category across
// all restaurants, in registration order.
func (c *Catalog) DishesByCategory(category string) []domain.CatalogDish {
	var dishes []domain.CatalogDish
	for _, r := range c.restaurants {
		for _, section := range r.Menu {
			for _, d := range section.Items {
				if d.Category == category {
					dishes = append(dishes, domain.CatalogDish{Dish: d, RestaurantID: r.ID, RestaurantName: r.Name})
				}
			}
		}
	}
	return dishes
}

// DishByNameFragment finds the first dish whose name overlaps the query,
// scanning restaurants, then menu sections, then dishes in registration
// order. First match wins; no ranking.
func (c *Catalog) DishByNameFragment(query string) (domain.CatalogDish, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	firstWord := query
	if i := strings.IndexByte(query, ' '); i > 0 {
		firstWord = query[:i]
	}
	for _, r := range c.restaurants {
		for _, section := range r.Menu {
			for _, d := range section.Items {
				name := strings.ToLower(d.Name)
				if strings.Contains(query, name) || (firstWord != "" && strings.Contains(name, firstWord)) {
					return domain.CatalogDish{Dish: d, RestaurantID: r.ID, RestaurantName: r.Name}, true
				}
			}
		}
	}
	return domain.CatalogDish{}, false
}

func (c *Catalog) Categories() []domain.CategoryInfo {
	return c.categories
}

func (c *Catalog) Category(key string) (domain.CategoryInfo, bool) {
	for _, ci := range c.categories {
		if ci.Key == key {
			return ci, true
		}
	}
	return domain.CategoryInfo{}, false
}
