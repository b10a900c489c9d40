package models

// Summary is the aggregate of one calendar day of the ledger.
type Summary struct {
	Meals         []Meal  `json:"meals"`
	TotalCalories float64 `json:"totalCalories"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalFat      float64 `json:"totalFat"`
}
