package collection

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sablewing/cardkeep/pkg/cards"
	"github.com/sablewing/cardkeep/pkg/database"
	"github.com/sablewing/cardkeep/pkg/database/migration"
	"github.com/sablewing/cardkeep/pkg/database/models"
)

func intPtr(v int) *int                      { return &v }
func strPtr(s string) *string                { return &s }
func elemPtr(e cards.Element) *cards.Element { return &e }

// newTestManager opens a throwaway database, migrates the schema and wraps it
// in a manager. Each test gets its own file under t.TempDir.
func newTestManager(t *testing.T) *Manager {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "cardkeep.db")
	db, err := database.NewGormDB(dbPath)
	require.NoError(t, err)
	require.NoError(t, migration.RunMigration(db))

	return NewManager(db, Options{DatabasePath: dbPath})
}

func characterRow(number, name string, level int, element cards.Element) *models.Card {
	return &models.Card{
		Name:        name,
		CardType:    cards.TypeCharacter,
		CardNumber:  number,
		Edition:     "First",
		Illustrator: "A. Painter",
		CharacterDetails: &models.CharacterDetails{
			PowerLevel:        intPtr(level),
			Element:           elemPtr(element),
			Age:               strPtr("17"),
			Height:            strPtr("5'6\""),
			Weight:            strPtr("130 lbs"),
			ElementalStrength: elemPtr(cards.ElementGrass),
			ElementalWeakness: elemPtr(cards.ElementWater),
		},
	}
}

func boxTopperRow(number, name string) *models.Card {
	return &models.Card{
		Name:       name,
		CardType:   cards.TypeCharacter,
		CardNumber: number,
		Edition:    "First",
		CharacterDetails: &models.CharacterDetails{
			IsBoxTopper: true,
		},
	}
}

func supportRow(number, name string, secretRare bool) *models.Card {
	return &models.Card{
		Name:           name,
		CardType:       cards.TypeSupport,
		CardNumber:     number,
		Edition:        "First",
		Illustrator:    "B. Brush",
		SupportDetails: &models.SupportDetails{IsSecretRare: secretRare},
	}
}

func elementalRow(number, name string, cardType cards.CardType, element cards.Element) *models.Card {
	return &models.Card{
		Name:             name,
		CardType:         cardType,
		CardNumber:       number,
		Edition:          "First",
		ElementalDetails: &models.ElementalDetails{Element: element},
	}
}

func promoRow(number, name string) *models.Card {
	return &models.Card{
		Name:       name,
		CardType:   cards.TypePromo,
		CardNumber: number,
		Edition:    "First",
	}
}

// seedCatalog inserts the standard fixture catalog: two characters with
// several variants each, two supports, one guardian/shield pair and a promo.
func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	fixture := []*models.Card{
		characterRow("CH-001A", "Fream", 8, cards.ElementFire),
		characterRow("CH-002A", "Fream", 9, cards.ElementFire),
		characterRow("CH-003A", "Fream", 10, cards.ElementFire),
		boxTopperRow("CH-004A", "Fream"),
		characterRow("CH-005A", "Kaida", 8, cards.ElementWater),
		supportRow("SP-001A", "Training Grounds", true),
		supportRow("SP-002A", "Energy Drink", false),
		elementalRow("GD-001", "Fire Guardian", cards.TypeGuardian, cards.ElementFire),
		elementalRow("SH-001", "Fire Shield", cards.TypeShield, cards.ElementFire),
		promoRow("PR-0001", "Convention Fream"),
	}
	for _, row := range fixture {
		require.NoError(t, db.Create(row).Error)
	}
}

func newSeededManager(t *testing.T) *Manager {
	t.Helper()
	m := newTestManager(t)
	seedCatalog(t, m.db)
	return m
}

func cardNumbers(result []models.Card) []string {
	numbers := make([]string, len(result))
	for i := range result {
		numbers[i] = result[i].CardNumber
	}
	return numbers
}
