package kv

import (
	"context"
	"errors"

	"app/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kv_entriesテーブルの1行。
type Entry struct {
	Key   string `gorm:"primaryKey;type:varchar(255);column:key"`
	Value []byte `gorm:"not null"`
}

func (Entry) TableName() string {
	return "kv_entries"
}

// PostgresをKVStoreとして使う（カタログと同じ接続を共有する）。
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var e Entry
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return e.Value, nil
}

func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	e := Entry{Key: key, Value: value}

	// upsert（同キーは上書き）
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&e).Error
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("key = ?", key).Delete(&Entry{}).Error
}
