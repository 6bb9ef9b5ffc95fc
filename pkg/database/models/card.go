package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sablewing/cardkeep/pkg/cards"
)

// Card is the catalog row shared by every card type. Type-specific
// attributes live in the detail tables; user ownership state lives in
// CollectionStatus. The catalog itself is mostly static reference data.
type Card struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name        string         `gorm:"index;not null"`
	CardType    cards.CardType `gorm:"type:varchar(20);index;not null"`
	Talent      string         `gorm:"type:text"`
	Edition     string         `gorm:"type:varchar(50);index"`
	CardNumber  string         `gorm:"type:varchar(20);uniqueIndex;not null"`
	Illustrator string         `gorm:"type:varchar(100);index"`
	ImagePath   string         `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships; at most one detail row, matching CardType
	CharacterDetails *CharacterDetails `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
	SupportDetails   *SupportDetails   `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
	ElementalDetails *ElementalDetails `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
	CollectionStatus *CollectionStatus `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Card
func (Card) TableName() string {
	return "cards"
}

// BeforeCreate assigns the primary key; SQLite has no server-side uuid default
func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// CharacterDetails holds the gameplay attributes of character cards.
// Every column is nullable because box toppers carry none of them.
// Age, height and weight mirror the printed card text, hence strings.
type CharacterDetails struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CardID            uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null"`
	PowerLevel        *int           `gorm:"index"`
	Element           *cards.Element `gorm:"type:varchar(10);index"`
	Age               *string        `gorm:"type:varchar(50)"`
	Height            *string        `gorm:"type:varchar(50)"`
	Weight            *string        `gorm:"type:varchar(50)"`
	ElementalStrength *cards.Element `gorm:"type:varchar(10)"`
	ElementalWeakness *cards.Element `gorm:"type:varchar(10)"`
	IsBoxTopper       bool           `gorm:"default:false"`
	IsMascot          bool           `gorm:"default:false"`
}

// TableName specifies the table name for CharacterDetails
func (CharacterDetails) TableName() string {
	return "character_details"
}

// BeforeCreate assigns the primary key
func (d *CharacterDetails) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// SupportDetails holds the attributes specific to support cards
type SupportDetails struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CardID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	IsSecretRare bool      `gorm:"default:false"`
}

// TableName specifies the table name for SupportDetails
func (SupportDetails) TableName() string {
	return "support_details"
}

// BeforeCreate assigns the primary key
func (d *SupportDetails) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// ElementalDetails holds the single element carried by guardian and shield cards
type ElementalDetails struct {
	ID      uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CardID  uuid.UUID     `gorm:"type:uuid;uniqueIndex;not null"`
	Element cards.Element `gorm:"type:varchar(10);index;not null"`
}

// TableName specifies the table name for ElementalDetails
func (ElementalDetails) TableName() string {
	return "elemental_details"
}

// BeforeCreate assigns the primary key
func (d *ElementalDetails) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
