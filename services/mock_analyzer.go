package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/ghdehrl12345/foodLens/models"
)

// mockCatalog is the fixed set of example dishes the mock analyzer draws
// from. Matches the sample data the product demos with.
var mockCatalog = []models.FoodItem{
	{Name: "Grilled Chicken Salad", Calories: 350, Carbs: 12, Protein: 45, Fat: 10},
	{Name: "Kimchi Stew", Calories: 450, Carbs: 30, Protein: 25, Fat: 20},
	{Name: "Bibimbap", Calories: 600, Carbs: 80, Protein: 20, Fat: 15},
	{Name: "Avocado Toast", Calories: 320, Carbs: 35, Protein: 8, Fat: 18},
	{Name: "Protein Shake", Calories: 150, Carbs: 5, Protein: 25, Fat: 2},
	{Name: "Tteokbokki", Calories: 800, Carbs: 120, Protein: 12, Fat: 18},
}

// MockAnalyzer ignores the image and returns one random catalog dish after
// a simulated delay. Used when no model backend is configured.
type MockAnalyzer struct {
	rng *rand.Rand

	// Delay simulates model inference time. Tests set it to zero.
	Delay time.Duration
}

// NewMockAnalyzer accepts a seedable random source so scenario tests are
// reproducible; nil means time-seeded.
func NewMockAnalyzer(rng *rand.Rand) *MockAnalyzer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MockAnalyzer{rng: rng, Delay: 2 * time.Second}
}

func (a *MockAnalyzer) Analyze(ctx context.Context, _ []byte) ([]models.FoodItem, error) {
	if a.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(a.Delay):
		}
	}
	dish := mockCatalog[a.rng.Intn(len(mockCatalog))]
	return []models.FoodItem{dish}, nil
}
