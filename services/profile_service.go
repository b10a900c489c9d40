package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/ghdehrl12345/foodLens/models"
	"github.com/ghdehrl12345/foodLens/storage"
	"github.com/ghdehrl12345/foodLens/utils"
)

// DefaultDailyTarget is the kcal target shown before a profile is saved.
const DefaultDailyTarget = 2000

// ProfileService owns the single UserStats record and the cached daily
// calorie target derived from it.
type ProfileService struct {
	store storage.Store
}

func NewProfileService(store storage.Store) *ProfileService {
	return &ProfileService{store: store}
}

// Save replaces the profile wholesale, recomputes the daily target and
// persists both records. Returns the new target.
func (s *ProfileService) Save(stats models.UserStats) (int, error) {
	target := utils.ComputeDailyTarget(stats)

	buf, err := json.Marshal(stats)
	if err != nil {
		return 0, fmt.Errorf("encode profile: %w", err)
	}
	if err := s.store.Set(storage.KeyUserStats, buf); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := s.store.Set(storage.KeyTargetCal, []byte(strconv.Itoa(target))); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return target, nil
}

// Load returns the saved profile and target. Without a saved profile it
// returns (nil, DefaultDailyTarget, nil); the summary view treats that as
// a guest with the default budget. A missing or unreadable target record
// is recomputed from the stats, the calculator being pure.
func (s *ProfileService) Load() (*models.UserStats, int, error) {
	buf, err := s.store.Get(storage.KeyUserStats)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, DefaultDailyTarget, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	var stats models.UserStats
	if err := json.Unmarshal(buf, &stats); err != nil {
		return nil, 0, fmt.Errorf("decode profile: %w", err)
	}

	target := utils.ComputeDailyTarget(stats)
	if raw, err := s.store.Get(storage.KeyTargetCal); err == nil {
		if cached, err := strconv.Atoi(string(raw)); err == nil {
			target = cached
		}
	}
	return &stats, target, nil
}
