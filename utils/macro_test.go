package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ghdehrl12345/foodLens/models"
)

func exampleStats() models.UserStats {
	return models.UserStats{
		Name:          "Mina",
		Age:           25,
		Gender:        models.GenderFemale,
		Height:        165,
		Weight:        60,
		ActivityLevel: models.ActivityModerate,
		Goal:          models.GoalMaintain,
	}
}

func TestComputeDailyTargetFemaleMaintain(t *testing.T) {
	// BMR = 447.593 + 9.247*60 + 3.098*165 - 4.330*25 = 1405.333
	// TDEE = 1405.333 * 1.55 = 2178.27
	assert.Equal(t, 2178, ComputeDailyTarget(exampleStats()))
}

func TestComputeDailyTargetGoalAdjustment(t *testing.T) {
	maintain := ComputeDailyTarget(exampleStats())

	lose := exampleStats()
	lose.Goal = models.GoalLose
	gain := exampleStats()
	gain.Goal = models.GoalGain

	assert.Equal(t, maintain-500, ComputeDailyTarget(lose))
	assert.Equal(t, maintain+500, ComputeDailyTarget(gain))
}

func TestComputeDailyTargetMale(t *testing.T) {
	stats := models.UserStats{
		Name:          "Jun",
		Age:           30,
		Gender:        models.GenderMale,
		Height:        180,
		Weight:        80,
		ActivityLevel: models.ActivitySedentary,
		Goal:          models.GoalMaintain,
	}
	// BMR = 88.362 + 13.397*80 + 4.799*180 - 5.677*30 = 1853.632
	// TDEE = 1853.632 * 1.2 = 2224.36
	assert.Equal(t, 2224, ComputeDailyTarget(stats))

	stats.ActivityLevel = models.ActivityVeryActive
	assert.Equal(t, 3522, ComputeDailyTarget(stats))
}

func TestComputeDailyTargetIsPure(t *testing.T) {
	stats := exampleStats()
	first := ComputeDailyTarget(stats)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ComputeDailyTarget(stats))
	}
}

func TestComputeDailyTargetMultipliersAreIncreasing(t *testing.T) {
	stats := exampleStats()
	levels := []models.ActivityLevel{
		models.ActivitySedentary,
		models.ActivityLight,
		models.ActivityModerate,
		models.ActivityActive,
		models.ActivityVeryActive,
	}
	prev := 0
	for _, lvl := range levels {
		stats.ActivityLevel = lvl
		target := ComputeDailyTarget(stats)
		assert.Greater(t, target, prev, "level %s", lvl)
		prev = target
	}
}
