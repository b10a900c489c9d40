package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is the single table backing the GormStore.
type Record struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     []byte
	UpdatedAt time.Time
}

// GormStore persists records through a gorm connection (postgres in
// production, sqlite in tests).
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("migrate records table: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(key string) ([]byte, error) {
	var rec Record
	err := s.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.Value, nil
}

func (s *GormStore) Set(key string, value []byte) error {
	rec := Record{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
}
