package storage

import (
	"errors"

	"gorm.io/gorm"
)

// Slot names for the local key-value store.
const (
	KeyGameSession = "game-session"
	KeyGameResults = "game-results"
	KeyTheme       = "theme-preference"
)

// Store is an opaque key-value store. Callers treat write failures as
// fail-soft: log and keep going with in-memory state.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

type Entry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value"`
}

func (Entry) TableName() string { return "kv_entries" }

// DBStore keeps the slots in a sqlite table.
type DBStore struct{ db *gorm.DB }

func NewDBStore(db *gorm.DB) *DBStore { return &DBStore{db: db} }

func (s *DBStore) Get(key string) (string, bool, error) {
	var e Entry
	err := s.db.First(&e, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return e.Value, true, nil
}

func (s *DBStore) Set(key, value string) error {
	return s.db.Save(&Entry{Key: key, Value: value}).Error
}

func (s *DBStore) Remove(key string) error {
	return s.db.Delete(&Entry{}, "key = ?", key).Error
}
