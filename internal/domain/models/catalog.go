package models

// Station is a stop on the fixed route. Price is the cumulative fare up
// to the stop, so a segment fare is the difference of two station prices.
type Station struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Time  string  `json:"time"`
	Price float64 `json:"price"`
}

// Meal is an onboard meal option.
type Meal struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}
