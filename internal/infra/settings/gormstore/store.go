package gormstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fpdemo/internal/infra/settings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Setting is one persisted key-value row.
type Setting struct {
	Key       string `gorm:"primaryKey;size:255"`
	Value     []byte
	UpdatedAt time.Time
}

func (Setting) TableName() string { return "demo_settings" }

// Store keeps the general settings in Postgres through gorm.
type Store struct {
	db *gorm.DB
}

func New(dsn string) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("gormstore: dsn is required")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gormstore: connect postgres: %w", err)
	}
	if err := db.AutoMigrate(&Setting{}); err != nil {
		return nil, fmt.Errorf("gormstore: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) WriteData(ctx context.Context, key string, data []byte) error {
	row := Setting{Key: key, Value: data, UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
}

func (s *Store) ReadData(ctx context.Context, key string) ([]byte, error) {
	var row Setting
	err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, settings.ErrValueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("gormstore: read %s: %w", key, err)
	}
	return row.Value, nil
}

func (s *Store) RemoveData(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Setting{}, "key = ?", key).Error
}

func (s *Store) ContainsData(ctx context.Context, key string) bool {
	var count int64
	err := s.db.WithContext(ctx).Model(&Setting{}).Where("key = ?", key).Count(&count).Error
	return err == nil && count > 0
}

var _ settings.BackingStore = (*Store)(nil)
