package db_models

import (
	"gorm.io/datatypes"
)

// ItineraryRecord is one stored itinerary document. The primary key is the
// chat session id, so each session has exactly one document row that gets
// replaced on every successful generation or mutation.
type ItineraryRecord struct {
	ID        string         `gorm:"primaryKey;size:64"`
	Revision  string         `gorm:"size:40"`
	Document  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt int64          `gorm:"autoCreateTime"`
	UpdatedAt int64          `gorm:"autoUpdateTime"`
}
