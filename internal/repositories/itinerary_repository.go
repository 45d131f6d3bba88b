package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"easytrip/internal/models/db_models"
	"easytrip/internal/models/response_models"
)

// IItineraryRepository is the persistence collaborator: one document row per
// session, replaced wholesale on every successful generation or mutation.
type IItineraryRepository interface {
	UpsertDocument(ctx context.Context, doc *response_models.ItineraryDocument) error
	GetDocument(ctx context.Context, sessionID string) (*response_models.ItineraryDocument, error)
}

type ItineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) IItineraryRepository {
	return &ItineraryRepository{db: db}
}

func (r *ItineraryRepository) UpsertDocument(ctx context.Context, doc *response_models.ItineraryDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal itinerary document: %w", err)
	}

	record := db_models.ItineraryRecord{
		ID:       doc.ID,
		Revision: doc.RID,
		Document: payload,
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&record).Error
	if err != nil {
		return err
	}

	return nil
}

func (r *ItineraryRepository) GetDocument(ctx context.Context, sessionID string) (*response_models.ItineraryDocument, error) {

	var record db_models.ItineraryRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", sessionID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var doc response_models.ItineraryDocument
	if err := json.Unmarshal(record.Document, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal itinerary document: %w", err)
	}

	return &doc, nil
}
