package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"traceability-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore keeps one row per collection in the records table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, name string) ([]byte, error) {
	var rec models.Record
	if err := s.db.WithContext(ctx).First(&rec, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return []byte(rec.Document), nil
}

func (s *GormStore) Put(ctx context.Context, name string, doc []byte) error {
	return upsert(s.db.WithContext(ctx), name, doc, time.Now())
}

// PutAll saves the documents in one transaction.
func (s *GormStore) PutAll(ctx context.Context, docs map[string][]byte) error {
	now := time.Now()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for name, doc := range docs {
			if err := upsert(tx, name, doc, now); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsert(db *gorm.DB, name string, doc []byte, now time.Time) error {
	rec := models.Record{
		Name:      name,
		Document:  string(doc),
		UpdatedAt: now,
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}
