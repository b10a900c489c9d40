// Package storage provides the key/value record store the ledger and
// profile services persist into. Callers never touch a database directly;
// they get and set opaque byte records by key.
package storage

import "errors"

// ErrNotFound is returned by Get when no record exists for the key.
var ErrNotFound = errors.New("storage: record not found")

// Store is a flat keyed record store.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// Record keys for the persisted application state.
const (
	KeyUserStats    = "userStats"
	KeyTargetCal    = "userTargetCalories"
	KeyDailyLogs    = "dailyLogs"
	KeyModelBaseURL = "modelBaseUrl"
)
