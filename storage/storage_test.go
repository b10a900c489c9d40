package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set("k", []byte("v1")))
	v, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)

	require.NoError(t, s.Set("k", []byte("v2")))
	v, err = s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), v)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := NewMemoryStore()
	buf := []byte("original")
	require.NoError(t, s.Set("k", buf))

	buf[0] = 'X'
	v, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), v)

	v[0] = 'Y'
	again, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}

func newTestGormStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	s, err := NewGormStore(db)
	require.NoError(t, err)
	return s
}

func TestGormStoreRoundTrip(t *testing.T) {
	s := newTestGormStore(t)

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set("k", []byte("v1")))
	v, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)
}

func TestGormStoreUpsert(t *testing.T) {
	s := newTestGormStore(t)

	require.NoError(t, s.Set("k", []byte("v1")))
	require.NoError(t, s.Set("k", []byte("v2")))

	v, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), v)
}
