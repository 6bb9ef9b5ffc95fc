// Package catalog loads the card catalog from a YAML seed file and inserts
// it into the database. Every entry passes through the validating domain
// constructors before any row is written, so an invalid catalog file fails
// fast with a card-level error.
package catalog

import (
	"fmt"
	"os"

	"gorm.io/gorm"
	"gopkg.in/yaml.v3"

	"github.com/sablewing/cardkeep/pkg/cards"
	"github.com/sablewing/cardkeep/pkg/database/models"
)

// File is the top-level shape of a catalog seed file
type File struct {
	Edition string  `yaml:"edition"`
	Cards   []Entry `yaml:"cards"`
}

// Entry describes one card in the seed file. Exactly one of the detail
// sections should be present, matching the card type; promos carry none.
type Entry struct {
	Number      string `yaml:"number"`
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Talent      string `yaml:"talent"`
	Edition     string `yaml:"edition"`
	Illustrator string `yaml:"illustrator"`
	Image       string `yaml:"image"`

	Character *CharacterEntry `yaml:"character"`
	Support   *SupportEntry   `yaml:"support"`
	Element   string          `yaml:"element"`
}

// CharacterEntry carries the character detail section of a seed entry
type CharacterEntry struct {
	PowerLevel *int    `yaml:"power_level"`
	Element    string  `yaml:"element"`
	Age        *string `yaml:"age"`
	Height     *string `yaml:"height"`
	Weight     *string `yaml:"weight"`
	Strength   string  `yaml:"strength"`
	Weakness   string  `yaml:"weakness"`
	BoxTopper  bool    `yaml:"box_topper"`
	Mascot     bool    `yaml:"mascot"`
	Holo       bool    `yaml:"holo"`
}

// SupportEntry carries the support detail section of a seed entry
type SupportEntry struct {
	SecretRare bool `yaml:"secret_rare"`
}

// Stats counts the outcome of a seeding run
type Stats struct {
	Created int
	Skipped int
}

// Load parses a catalog seed file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid catalog file: %w", err)
	}
	return &file, nil
}

// Seed validates every entry and inserts the missing ones. Card numbers
// already present are skipped, so reseeding an existing database is safe.
// Validation covers the whole file before anything is written.
func Seed(db *gorm.DB, file *File) (Stats, error) {
	stats := Stats{}

	rows := make([]*models.Card, 0, len(file.Cards))
	for i := range file.Cards {
		row, err := buildRow(file, &file.Cards[i])
		if err != nil {
			return Stats{}, err
		}
		rows = append(rows, row)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			var count int64
			if err := tx.Model(&models.Card{}).Where("card_number = ?", row.CardNumber).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				stats.Skipped++
				continue
			}
			if err := tx.Create(row).Error; err != nil {
				return err
			}
			stats.Created++
		}
		return nil
	})
	if err != nil {
		return Stats{}, err
	}

	return stats, nil
}

// buildRow runs an entry through the domain constructors and maps the
// validated card onto its database rows
func buildRow(file *File, entry *Entry) (*models.Card, error) {
	edition := entry.Edition
	if edition == "" {
		edition = file.Edition
	}

	base := cards.BaseCard{
		Name:        entry.Name,
		Talent:      entry.Talent,
		Edition:     edition,
		CardNumber:  entry.Number,
		Illustrator: entry.Illustrator,
		ImagePath:   entry.Image,
	}

	cardType := cards.CardType(entry.Type)
	if !cardType.Valid() {
		return nil, fmt.Errorf("card %s: unknown card type %q", entry.Number, entry.Type)
	}

	row := &models.Card{
		Name:        base.Name,
		CardType:    cardType,
		Talent:      base.Talent,
		Edition:     base.Edition,
		CardNumber:  base.CardNumber,
		Illustrator: base.Illustrator,
		ImagePath:   base.ImagePath,
	}

	switch cardType {
	case cards.TypeCharacter:
		if entry.Character == nil {
			return nil, fmt.Errorf("card %s: character section is required", entry.Number)
		}
		section := entry.Character

		base.IsHolo = section.Holo
		character := cards.CharacterCard{
			BaseCard:    base,
			PowerLevel:  section.PowerLevel,
			Age:         section.Age,
			Height:      section.Height,
			Weight:      section.Weight,
			IsBoxTopper: section.BoxTopper,
			IsMascot:    section.Mascot,
		}
		if section.Element != "" {
			element := cards.Element(section.Element)
			character.Element = &element
		}
		if section.Strength != "" {
			element := cards.Element(section.Strength)
			character.ElementalStrength = &element
		}
		if section.Weakness != "" {
			element := cards.Element(section.Weakness)
			character.ElementalWeakness = &element
		}

		validated, err := cards.NewCharacterCard(character)
		if err != nil {
			return nil, err
		}

		row.CharacterDetails = &models.CharacterDetails{
			PowerLevel:        validated.PowerLevel,
			Element:           validated.Element,
			Age:               validated.Age,
			Height:            validated.Height,
			Weight:            validated.Weight,
			ElementalStrength: validated.ElementalStrength,
			ElementalWeakness: validated.ElementalWeakness,
			IsBoxTopper:       validated.IsBoxTopper,
			IsMascot:          validated.IsMascot,
		}

	case cards.TypeSupport:
		secretRare := entry.Support != nil && entry.Support.SecretRare
		validated, err := cards.NewSupportCard(cards.SupportCard{BaseCard: base, IsSecretRare: secretRare})
		if err != nil {
			return nil, err
		}
		row.SupportDetails = &models.SupportDetails{IsSecretRare: validated.IsSecretRare}

	case cards.TypeGuardian:
		validated, err := cards.NewGuardianCard(cards.ElementalCard{BaseCard: base, Element: cards.Element(entry.Element)})
		if err != nil {
			return nil, err
		}
		row.ElementalDetails = &models.ElementalDetails{Element: validated.Element}

	case cards.TypeShield:
		validated, err := cards.NewShieldCard(cards.ElementalCard{BaseCard: base, Element: cards.Element(entry.Element)})
		if err != nil {
			return nil, err
		}
		row.ElementalDetails = &models.ElementalDetails{Element: validated.Element}

	case cards.TypePromo:
		// Promos carry no detail table; the promo flag lives on the
		// ownership record once the card is collected.
	}

	return row, nil
}
