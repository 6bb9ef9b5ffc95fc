package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sablewing/cardkeep/pkg/cards"
)

// CollectionStatus is the per-user ownership record layered on top of the
// static catalog. It is created lazily on the first status-changing
// operation for a card and updated in place afterwards.
type CollectionStatus struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey"`
	CardID       uuid.UUID          `gorm:"type:uuid;uniqueIndex;not null"`
	IsCollected  bool               `gorm:"default:false;index"`
	IsHolo       bool               `gorm:"default:false"`
	IsPromo      bool               `gorm:"default:false"`
	IsMisprint   bool               `gorm:"default:false"`
	Acquisition  *cards.Acquisition `gorm:"type:varchar(10)"`
	DateAcquired *time.Time         `gorm:"index"`
	Notes        string             `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for CollectionStatus
func (CollectionStatus) TableName() string {
	return "collection_statuses"
}

// BeforeCreate assigns the primary key
func (s *CollectionStatus) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
