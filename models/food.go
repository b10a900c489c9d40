package models

// FoodItem is a single recognized dish with its macro estimates.
// Produced only by an analyzer; never mutated after creation.
type FoodItem struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"` // kcal
	Carbs    float64 `json:"carbs"`    // g
	Protein  float64 `json:"protein"`  // g
	Fat      float64 `json:"fat"`      // g
}
