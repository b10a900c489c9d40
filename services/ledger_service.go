package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ghdehrl12345/foodLens/models"
	"github.com/ghdehrl12345/foodLens/storage"
	"go.uber.org/zap"
)

// ErrPersistence wraps any failure to read or write the ledger record.
// A caller seeing it must assume the meal was not saved.
var ErrPersistence = errors.New("ledger: persistence failure")

// LedgerService owns the date-partitioned meal store. The physical layout
// is a single record mapping ISO date to the ordered list of that day's
// meals, so a day's aggregate only ever decodes that day's entries.
type LedgerService struct {
	store storage.Store
	log   *zap.Logger
}

func NewLedgerService(store storage.Store, log *zap.Logger) *LedgerService {
	return &LedgerService{store: store, log: log}
}

// DateKey renders the calendar day of an epoch-millis timestamp in local
// time, so a meal's partition is fully determined by its timestamp.
func DateKey(timestampMillis int64) string {
	return time.UnixMilli(timestampMillis).Local().Format("2006-01-02")
}

// Append inserts the meal at the end of its day's sequence, creating the
// sequence if absent. Other days are carried over byte-for-byte.
func (s *LedgerService) Append(meal models.Meal) error {
	logs, err := s.loadRaw()
	if err != nil {
		// An undecodable ledger record also blocks the write: clobbering it
		// would silently drop every other day.
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	key := DateKey(meal.Timestamp)
	var meals []models.Meal
	if raw, ok := logs[key]; ok {
		if err := json.Unmarshal(raw, &meals); err != nil {
			// Unreadable day: replace it rather than refuse every future save.
			s.log.Warn("replacing unreadable ledger day",
				zap.String("date", key), zap.Error(err))
			meals = nil
		}
	}
	meals = append(meals, meal)

	buf, err := json.Marshal(meals)
	if err != nil {
		return fmt.Errorf("%w: encode day %s: %v", ErrPersistence, key, err)
	}
	logs[key] = buf

	out, err := json.Marshal(logs)
	if err != nil {
		return fmt.Errorf("%w: encode ledger: %v", ErrPersistence, err)
	}
	if err := s.store.Set(storage.KeyDailyLogs, out); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// Aggregate sums every food item of every meal logged for the date. A date
// with no data yields a zero Summary. A day entry that does not decode as
// a meal list is skipped so the rest of the ledger stays usable.
func (s *LedgerService) Aggregate(dateKey string) (models.Summary, error) {
	summary := models.Summary{Meals: []models.Meal{}}

	meals, err := s.MealsFor(dateKey)
	if err != nil {
		return summary, err
	}

	summary.Meals = meals
	for _, m := range meals {
		for _, f := range m.Foods {
			summary.TotalCalories += f.Calories
			summary.TotalCarbs += f.Carbs
			summary.TotalProtein += f.Protein
			summary.TotalFat += f.Fat
		}
	}
	return summary, nil
}

// MealsFor returns the ordered meals of one day, empty when none exist.
func (s *LedgerService) MealsFor(dateKey string) ([]models.Meal, error) {
	logs, err := s.loadRaw()
	if errors.Is(err, errCorruptLedger) {
		// Whole record unreadable: best-effort empty result.
		return []models.Meal{}, nil
	}
	if err != nil {
		return []models.Meal{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	raw, ok := logs[dateKey]
	if !ok {
		return []models.Meal{}, nil
	}
	var meals []models.Meal
	if err := json.Unmarshal(raw, &meals); err != nil {
		s.log.Warn("skipping unreadable ledger day",
			zap.String("date", dateKey), zap.Error(err))
		return []models.Meal{}, nil
	}
	return meals, nil
}

var errCorruptLedger = errors.New("ledger record is not a date map")

// loadRaw reads the ledger record without decoding individual days, so a
// single corrupt day cannot poison the others.
func (s *LedgerService) loadRaw() (map[string]json.RawMessage, error) {
	buf, err := s.store.Get(storage.KeyDailyLogs)
	if errors.Is(err, storage.ErrNotFound) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger record: %w", err)
	}

	var logs map[string]json.RawMessage
	if err := json.Unmarshal(buf, &logs); err != nil {
		s.log.Warn("ledger record is not a date map", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", errCorruptLedger, err)
	}
	if logs == nil {
		logs = map[string]json.RawMessage{}
	}
	return logs, nil
}
