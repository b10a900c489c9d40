package models

import (
	"strconv"
	"sync/atomic"
	"time"
)

type MealType string

const (
	MealBreakfast MealType = "BREAKFAST"
	MealLunch     MealType = "LUNCH"
	MealDinner    MealType = "DINNER"
	MealSnack     MealType = "SNACK"
)

func (t MealType) Valid() bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// Meal is one logged eating event. TotalCalories is a snapshot of the sum
// over Foods taken at creation time; it is never recomputed afterwards.
type Meal struct {
	ID            string     `json:"id"`
	Type          MealType   `json:"type"`
	Timestamp     int64      `json:"timestamp"` // epoch millis
	ImageURL      string     `json:"imageUrl,omitempty"`
	Foods         []FoodItem `json:"foods"`
	TotalCalories float64    `json:"totalCalories"`
}

// NewMeal builds a Meal with a fresh ID and the calorie snapshot filled in.
func NewMeal(mealType MealType, timestamp int64, imageURL string, foods []FoodItem) Meal {
	var total float64
	for _, f := range foods {
		total += f.Calories
	}
	return Meal{
		ID:            NewMealID(),
		Type:          mealType,
		Timestamp:     timestamp,
		ImageURL:      imageURL,
		Foods:         foods,
		TotalCalories: total,
	}
}

var lastMealID atomic.Int64

// NewMealID returns a creation-time token, strictly increasing within the
// process so two meals logged in the same millisecond cannot collide.
func NewMealID() string {
	for {
		now := time.Now().UnixMilli()
		prev := lastMealID.Load()
		if now <= prev {
			now = prev + 1
		}
		if lastMealID.CompareAndSwap(prev, now) {
			return strconv.FormatInt(now, 10)
		}
	}
}
