package utils

import (
	"math"

	"github.com/ghdehrl12345/foodLens/models"
)

// activityMultipliers maps each activity level to its TDEE multiplier.
// Discrete lookup, no interpolation.
var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// ComputeDailyTarget derives the recommended daily calorie intake from
// body statistics using the revised Harris-Benedict BMR equation, scaled
// by activity level and shifted 500 kcal for a lose/gain goal. Pure; the
// caller validates that age, height and weight are positive.
func ComputeDailyTarget(stats models.UserStats) int {
	var bmr float64
	if stats.Gender == models.GenderMale {
		bmr = 88.362 + 13.397*stats.Weight + 4.799*stats.Height - 5.677*float64(stats.Age)
	} else {
		bmr = 447.593 + 9.247*stats.Weight + 3.098*stats.Height - 4.330*float64(stats.Age)
	}

	mult, ok := activityMultipliers[stats.ActivityLevel]
	if !ok {
		mult = activityMultipliers[models.ActivitySedentary]
	}
	tdee := bmr * mult

	switch stats.Goal {
	case models.GoalLose:
		tdee -= 500
	case models.GoalGain:
		tdee += 500
	}
	return int(math.Round(tdee))
}
