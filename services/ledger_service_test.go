package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ghdehrl12345/foodLens/models"
	"github.com/ghdehrl12345/foodLens/storage"
)

func newTestLedger() (*LedgerService, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	return NewLedgerService(store, zap.NewNop()), store
}

func millisOn(year int, month time.Month, day, hour int) int64 {
	return time.Date(year, month, day, hour, 0, 0, 0, time.Local).UnixMilli()
}

func testMeal(ts int64, foods ...models.FoodItem) models.Meal {
	if len(foods) == 0 {
		foods = []models.FoodItem{{Name: "Pizza", Calories: 285, Carbs: 36, Protein: 12, Fat: 10}}
	}
	return models.NewMeal(models.MealLunch, ts, "", foods)
}

func TestAppendAndAggregate(t *testing.T) {
	ledger, _ := newTestLedger()

	ts := millisOn(2024, 5, 1, 12)
	m1 := testMeal(ts,
		models.FoodItem{Name: "Bibimbap", Calories: 600, Carbs: 80, Protein: 20, Fat: 15},
		models.FoodItem{Name: "Protein Shake", Calories: 150, Carbs: 5, Protein: 25, Fat: 2},
	)
	m2 := testMeal(millisOn(2024, 5, 1, 19),
		models.FoodItem{Name: "Kimchi Stew", Calories: 450, Carbs: 30, Protein: 25, Fat: 20},
	)
	require.NoError(t, ledger.Append(m1))
	require.NoError(t, ledger.Append(m2))

	summary, err := ledger.Aggregate(DateKey(ts))
	require.NoError(t, err)

	require.Len(t, summary.Meals, 2)
	assert.Equal(t, m1.ID, summary.Meals[0].ID)
	assert.Equal(t, m2.ID, summary.Meals[1].ID)
	assert.Equal(t, 1200.0, summary.TotalCalories)
	assert.Equal(t, 115.0, summary.TotalCarbs)
	assert.Equal(t, 70.0, summary.TotalProtein)
	assert.Equal(t, 37.0, summary.TotalFat)
}

func TestAggregateTotalMatchesMealSnapshots(t *testing.T) {
	ledger, _ := newTestLedger()

	ts := millisOn(2024, 5, 3, 8)
	for i := 0; i < 4; i++ {
		require.NoError(t, ledger.Append(testMeal(ts)))
	}

	summary, err := ledger.Aggregate(DateKey(ts))
	require.NoError(t, err)

	var fromSnapshots float64
	for _, m := range summary.Meals {
		fromSnapshots += m.TotalCalories
	}
	assert.Equal(t, fromSnapshots, summary.TotalCalories)
}

func TestAppendDoesNotTouchOtherDays(t *testing.T) {
	ledger, _ := newTestLedger()

	day1 := millisOn(2024, 5, 1, 12)
	day2 := millisOn(2024, 5, 2, 12)
	require.NoError(t, ledger.Append(testMeal(day1)))

	before, err := ledger.Aggregate(DateKey(day1))
	require.NoError(t, err)

	require.NoError(t, ledger.Append(testMeal(day2)))

	after, err := ledger.Aggregate(DateKey(day1))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAggregateEmptyDay(t *testing.T) {
	ledger, _ := newTestLedger()

	summary, err := ledger.Aggregate("2024-01-01")
	require.NoError(t, err)
	assert.Empty(t, summary.Meals)
	assert.Zero(t, summary.TotalCalories)
	assert.Zero(t, summary.TotalCarbs)
	assert.Zero(t, summary.TotalProtein)
	assert.Zero(t, summary.TotalFat)
}

func TestAggregateIsIdempotent(t *testing.T) {
	ledger, _ := newTestLedger()

	ts := millisOn(2024, 5, 1, 12)
	require.NoError(t, ledger.Append(testMeal(ts)))

	first, err := ledger.Aggregate(DateKey(ts))
	require.NoError(t, err)
	second, err := ledger.Aggregate(DateKey(ts))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAggregateSkipsCorruptDay(t *testing.T) {
	ledger, store := newTestLedger()

	good := testMeal(millisOn(2024, 5, 2, 12))
	goodDay, err := json.Marshal([]models.Meal{good})
	require.NoError(t, err)

	record := map[string]json.RawMessage{
		"2024-05-01": json.RawMessage(`{"not":"a list"}`),
		"2024-05-02": goodDay,
	}
	buf, err := json.Marshal(record)
	require.NoError(t, err)
	require.NoError(t, store.Set(storage.KeyDailyLogs, buf))

	// The corrupt day aggregates to nothing, without an error.
	corrupt, err := ledger.Aggregate("2024-05-01")
	require.NoError(t, err)
	assert.Empty(t, corrupt.Meals)

	// Its neighbor stays fully usable.
	ok, err := ledger.Aggregate("2024-05-02")
	require.NoError(t, err)
	require.Len(t, ok.Meals, 1)
	assert.Equal(t, good.ID, ok.Meals[0].ID)
}

func TestAggregateSurvivesCorruptRecord(t *testing.T) {
	ledger, store := newTestLedger()
	require.NoError(t, store.Set(storage.KeyDailyLogs, []byte("not json at all")))

	summary, err := ledger.Aggregate("2024-05-01")
	require.NoError(t, err)
	assert.Empty(t, summary.Meals)
}

func TestAppendRefusesToClobberCorruptRecord(t *testing.T) {
	ledger, store := newTestLedger()
	require.NoError(t, store.Set(storage.KeyDailyLogs, []byte("not json at all")))

	err := ledger.Append(testMeal(millisOn(2024, 5, 1, 12)))
	assert.ErrorIs(t, err, ErrPersistence)
}

type failingStore struct {
	*storage.MemoryStore
}

func (s failingStore) Set(string, []byte) error {
	return errors.New("disk full")
}

func TestAppendReportsWriteFailure(t *testing.T) {
	ledger := NewLedgerService(failingStore{storage.NewMemoryStore()}, zap.NewNop())

	err := ledger.Append(testMeal(millisOn(2024, 5, 1, 12)))
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestDateKeyIsStable(t *testing.T) {
	ts := millisOn(2024, 12, 31, 23)
	assert.Equal(t, "2024-12-31", DateKey(ts))
	assert.Equal(t, DateKey(ts), DateKey(ts))
}
