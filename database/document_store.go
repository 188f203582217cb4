package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/yeremiapane/restaurant-pos/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDocumentStore keeps each collection as one JSON row keyed by name.
type GormDocumentStore struct {
	DB *gorm.DB
}

func NewGormDocumentStore(db *gorm.DB) *GormDocumentStore {
	return &GormDocumentStore{DB: db}
}

// Migrate creates the documents table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Document{})
}

func encodeDocument(key string, v interface{}) (models.Document, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return models.Document{}, fmt.Errorf("encode %s: %w", key, err)
	}
	return models.Document{Key: key, Payload: datatypes.JSON(payload)}, nil
}

func upsert(tx *gorm.DB, doc *models.Document) error {
	return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(doc).Error
}

// Save replaces the whole document stored under key.
func (s *GormDocumentStore) Save(ctx context.Context, key string, v interface{}) error {
	doc, err := encodeDocument(key, v)
	if err != nil {
		return err
	}
	return upsert(s.DB.WithContext(ctx), &doc)
}

// SaveAll replaces several documents in one transaction: either every key
// is written or none is.
func (s *GormDocumentStore) SaveAll(ctx context.Context, docs map[string]interface{}) error {
	keys := make([]string, 0, len(docs))
	for key := range docs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	encoded := make([]models.Document, 0, len(keys))
	for _, key := range keys {
		doc, err := encodeDocument(key, docs[key])
		if err != nil {
			return err
		}
		encoded = append(encoded, doc)
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range encoded {
			if err := upsert(tx, &encoded[i]); err != nil {
				return fmt.Errorf("save %s: %w", encoded[i].Key, err)
			}
		}
		return nil
	})
}

// Load decodes the document under key into v. It reports false, leaving v
// untouched, when nothing was ever saved under key.
func (s *GormDocumentStore) Load(ctx context.Context, key string, v interface{}) (bool, error) {
	var doc models.Document
	err := s.DB.WithContext(ctx).Where(&models.Document{Key: key}).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(doc.Payload, v); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}
