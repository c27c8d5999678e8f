package repositories

import "sleeperbooking/internal/domain/models"

// Catalog holds the static route and meal fixtures. Read-only after
// construction, so it is safe to share across requests without locking.
type Catalog struct {
	stations []models.Station
	meals    []models.Meal
}

func NewCatalog() *Catalog {
	return &Catalog{
		stations: []models.Station{
			{ID: 1, Name: "Ahmedabad", Time: "10:00 PM", Price: 50},
			{ID: 2, Name: "Nadiad", Time: "11:00 PM", Price: 150},
			{ID: 3, Name: "Vadodara", Time: "12:30 AM", Price: 200},
			{ID: 4, Name: "Surat", Time: "02:00 AM", Price: 400},
			{ID: 5, Name: "Mumbai", Time: "06:00 AM", Price: 800},
		},
		meals: []models.Meal{
			{ID: 1, Name: "Vegetarian Combo", Description: "Rice, Dal, Roti, Sabji, Sweet", Price: 150},
			{ID: 2, Name: "Non-Veg Combo", Description: "Rice, Chicken Curry, Roti, Salad", Price: 200},
			{ID: 3, Name: "Breakfast Special", Description: "Poha, Tea, Banana", Price: 100},
			{ID: 4, Name: "Snack Box", Description: "Sandwich, Chips, Cold Drink", Price: 120},
		},
	}
}

// Stations returns the stops in route order.
func (c *Catalog) Stations() []models.Station {
	return c.stations
}

// Meals returns the meal options.
func (c *Catalog) Meals() []models.Meal {
	return c.meals
}

// StationByID looks up a station; ok is false for unknown ids.
func (c *Catalog) StationByID(id int) (models.Station, bool) {
	for _, s := range c.stations {
		if s.ID == id {
			return s, true
		}
	}
	return models.Station{}, false
}

// StationName resolves an id to a display name, with the N/A fallback
// used by booking listings.
func (c *Catalog) StationName(id int) string {
	if s, ok := c.StationByID(id); ok {
		return s.Name
	}
	return "N/A"
}

// MealByID looks up a meal option; ok is false for unknown ids.
func (c *Catalog) MealByID(id int) (models.Meal, bool) {
	for _, m := range c.meals {
		if m.ID == id {
			return m, true
		}
	}
	return models.Meal{}, false
}
