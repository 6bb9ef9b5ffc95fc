package collection

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/sablewing/cardkeep/pkg/cards"
	"github.com/sablewing/cardkeep/pkg/database/models"
)

// Card number grammar, one pattern per card type. Character and support
// numbers carry a letter suffix, guardian and shield do not, promos use
// four digits. This grammar is applied uniformly across validation, seed
// data and import/export.
var cardNumberPatterns = map[cards.CardType]*regexp.Regexp{
	cards.TypeCharacter: regexp.MustCompile(`^CH-\d{3}[A-Z]$`), // CH-001A
	cards.TypeSupport:   regexp.MustCompile(`^SP-\d{3}[A-Z]$`), // SP-001A
	cards.TypeGuardian:  regexp.MustCompile(`^GD-\d{3}$`),      // GD-001
	cards.TypeShield:    regexp.MustCompile(`^SH-\d{3}$`),      // SH-001
	cards.TypePromo:     regexp.MustCompile(`^PR-\d{4}$`),      // PR-0001
}

// ValidateCardNumber checks a card number for format and uniqueness.
// It never fails on malformed input; the second return carries one of three
// distinct messages, or "" when the number is valid and unused.
func (m *Manager) ValidateCardNumber(cardNumber string) (bool, string) {
	if cardNumber == "" {
		return false, "Card number cannot be empty"
	}

	validFormat := false
	for _, pattern := range cardNumberPatterns {
		if pattern.MatchString(cardNumber) {
			validFormat = true
			break
		}
	}
	if !validFormat {
		return false, "Invalid card number format"
	}

	var count int64
	if err := m.db.Model(&models.Card{}).Where("card_number = ?", cardNumber).Count(&count).Error; err != nil {
		m.logger.Error("Card number uniqueness check failed", err, map[string]interface{}{
			"card_number": cardNumber,
		})
		return false, "Card number validation failed"
	}
	if count > 0 {
		return false, "Card number already exists"
	}

	return true, ""
}

// CardRef identifies a card inside a report bucket
type CardRef struct {
	ID         uuid.UUID
	CardNumber string
	Name       string
	CardType   cards.CardType
}

func refOf(card *models.Card) CardRef {
	return CardRef{
		ID:         card.ID,
		CardNumber: card.CardNumber,
		Name:       card.Name,
		CardType:   card.CardType,
	}
}

// DuplicateNumber lists the cards sharing one card number
type DuplicateNumber struct {
	CardNumber string
	Count      int64
	Cards      []CardRef
}

// DuplicateName flags a character name with more printed variants than expected
type DuplicateName struct {
	Name  string
	Count int64
	Cards []CardRef
}

// ElementMismatch flags a character whose variants disagree on their element
type ElementMismatch struct {
	Name     string
	Elements []cards.Element
	Cards    []CardRef
}

// DuplicateReport is the always-succeeding result of duplicate detection.
// Findings are operator-review data, not errors.
type DuplicateReport struct {
	DuplicateNumbers   []DuplicateNumber
	DuplicateNames     []DuplicateName
	MismatchedElements []ElementMismatch
}

// GetDuplicateEntries finds potential duplicates: repeated card numbers,
// character names with more variants than the configured threshold, and
// same-named characters with conflicting elements.
func (m *Manager) GetDuplicateEntries() (*DuplicateReport, error) {
	report := &DuplicateReport{}

	type grouped struct {
		Key   string
		Count int64
	}

	// Repeated card numbers
	var numbers []grouped
	err := m.db.Model(&models.Card{}).
		Select("card_number AS key, COUNT(id) AS count").
		Group("card_number").
		Having("COUNT(id) > 1").
		Scan(&numbers).Error
	if err != nil {
		return nil, err
	}
	for _, g := range numbers {
		var dupes []models.Card
		if err := m.db.Where("card_number = ?", g.Key).Find(&dupes).Error; err != nil {
			return nil, err
		}
		entry := DuplicateNumber{CardNumber: g.Key, Count: g.Count}
		for i := range dupes {
			entry.Cards = append(entry.Cards, refOf(&dupes[i]))
		}
		report.DuplicateNumbers = append(report.DuplicateNumbers, entry)
	}

	// Character names with more variants than expected
	var names []grouped
	err = m.db.Model(&models.Card{}).
		Select("name AS key, COUNT(id) AS count").
		Where("card_type = ?", cards.TypeCharacter).
		Group("name").
		Having("COUNT(id) > ?", m.variantThreshold).
		Scan(&names).Error
	if err != nil {
		return nil, err
	}
	for _, g := range names {
		var variants []models.Card
		if err := m.db.Where("name = ? AND card_type = ?", g.Key, cards.TypeCharacter).Find(&variants).Error; err != nil {
			return nil, err
		}
		entry := DuplicateName{Name: g.Key, Count: g.Count}
		for i := range variants {
			entry.Cards = append(entry.Cards, refOf(&variants[i]))
		}
		report.DuplicateNames = append(report.DuplicateNames, entry)
	}

	// Same-named characters must agree on their element
	var characters []models.Card
	err = m.db.Preload("CharacterDetails").
		Where("card_type = ?", cards.TypeCharacter).
		Order("card_number").
		Find(&characters).Error
	if err != nil {
		return nil, err
	}

	elementsByName := make(map[string]map[cards.Element]bool)
	cardsByName := make(map[string][]CardRef)
	nameOrder := []string{}
	for i := range characters {
		card := &characters[i]
		details := card.CharacterDetails
		if details == nil || details.Element == nil {
			continue
		}
		if _, ok := elementsByName[card.Name]; !ok {
			elementsByName[card.Name] = make(map[cards.Element]bool)
			nameOrder = append(nameOrder, card.Name)
		}
		elementsByName[card.Name][*details.Element] = true
		cardsByName[card.Name] = append(cardsByName[card.Name], refOf(card))
	}

	for _, name := range nameOrder {
		if len(elementsByName[name]) <= 1 {
			continue
		}
		mismatch := ElementMismatch{Name: name, Cards: cardsByName[name]}
		for _, element := range cards.Elements() {
			if elementsByName[name][element] {
				mismatch.Elements = append(mismatch.Elements, element)
			}
		}
		report.MismatchedElements = append(report.MismatchedElements, mismatch)
	}

	return report, nil
}

// MissingDetailIssue reports a card without the detail row its type requires
type MissingDetailIssue struct {
	Card    CardRef
	Missing string
}

// ElementIssue reports a broken element assignment. Card-level issues carry
// the card; catalog-level issues (element counts) carry Element and Problem.
type ElementIssue struct {
	Card    *CardRef
	Element cards.Element
	Problem string
}

// CollectionIssue reports a defective ownership record
type CollectionIssue struct {
	StatusID uuid.UUID
	CardID   uuid.UUID
	Issues   []string
}

// ConstraintIssue reports game-rule violations on one card
type ConstraintIssue struct {
	Card   CardRef
	Issues []string
}

// IntegrityReport is the full data-quality sweep. A card can surface in
// several buckets at once; the sweep itself always succeeds.
type IntegrityReport struct {
	MissingDetails       []MissingDetailIssue
	InvalidElements      []ElementIssue
	CollectionIssues     []CollectionIssue
	ConstraintViolations []ConstraintIssue
}

// Empty reports whether the sweep found nothing
func (r *IntegrityReport) Empty() bool {
	return len(r.MissingDetails) == 0 &&
		len(r.InvalidElements) == 0 &&
		len(r.CollectionIssues) == 0 &&
		len(r.ConstraintViolations) == 0
}

// VerifyDatabaseIntegrity performs the comprehensive integrity check:
// missing type-specific details, invalid element assignments, defective or
// orphaned ownership records, and game-rule constraint violations.
func (m *Manager) VerifyDatabaseIntegrity() (*IntegrityReport, error) {
	report := &IntegrityReport{}

	var allCards []models.Card
	if err := withDetails(m.db).Order("card_number").Find(&allCards).Error; err != nil {
		return nil, err
	}

	// Every card needs the detail row matching its type tag
	for i := range allCards {
		card := &allCards[i]
		switch card.CardType {
		case cards.TypeCharacter:
			if card.CharacterDetails == nil {
				report.MissingDetails = append(report.MissingDetails,
					MissingDetailIssue{Card: refOf(card), Missing: "character_details"})
			}
		case cards.TypeSupport:
			if card.SupportDetails == nil {
				report.MissingDetails = append(report.MissingDetails,
					MissingDetailIssue{Card: refOf(card), Missing: "support_details"})
			}
		case cards.TypeGuardian, cards.TypeShield:
			if card.ElementalDetails == nil {
				report.MissingDetails = append(report.MissingDetails,
					MissingDetailIssue{Card: refOf(card), Missing: "elemental_details"})
			}
		}
	}

	// Character elemental fields must all be present (box toppers excepted)
	guardianCounts := make(map[cards.Element]int)
	shieldCounts := make(map[cards.Element]int)
	for i := range allCards {
		card := &allCards[i]
		switch card.CardType {
		case cards.TypeCharacter:
			details := card.CharacterDetails
			if details == nil || details.IsBoxTopper {
				continue
			}
			if details.Element == nil || details.ElementalStrength == nil || details.ElementalWeakness == nil {
				ref := refOf(card)
				report.InvalidElements = append(report.InvalidElements, ElementIssue{
					Card:    &ref,
					Problem: "character card with incomplete elemental fields",
				})
			}
		case cards.TypeGuardian:
			if card.ElementalDetails != nil {
				guardianCounts[card.ElementalDetails.Element]++
			}
		case cards.TypeShield:
			if card.ElementalDetails != nil {
				shieldCounts[card.ElementalDetails.Element]++
			}
		}
	}

	// Exactly one guardian and one shield per element
	for _, element := range cards.Elements() {
		if guardianCounts[element] != 1 {
			report.InvalidElements = append(report.InvalidElements, ElementIssue{
				Element: element,
				Problem: "each element should have exactly one guardian card",
			})
		}
		if shieldCounts[element] != 1 {
			report.InvalidElements = append(report.InvalidElements, ElementIssue{
				Element: element,
				Problem: "each element should have exactly one shield card",
			})
		}
	}

	// Ownership records: orphans, and collected rows missing their metadata
	knownCards := make(map[uuid.UUID]bool, len(allCards))
	for i := range allCards {
		knownCards[allCards[i].ID] = true
	}

	var statuses []models.CollectionStatus
	if err := m.db.Find(&statuses).Error; err != nil {
		return nil, err
	}
	for i := range statuses {
		status := &statuses[i]
		var issues []string

		if !knownCards[status.CardID] {
			issues = append(issues, "no associated card")
		}
		if status.IsCollected && status.DateAcquired == nil {
			issues = append(issues, "missing acquisition date")
		}
		if status.IsCollected && status.Acquisition == nil {
			issues = append(issues, "missing acquisition method")
		}

		if len(issues) > 0 {
			report.CollectionIssues = append(report.CollectionIssues, CollectionIssue{
				StatusID: status.ID,
				CardID:   status.CardID,
				Issues:   issues,
			})
		}
	}

	// Game-rule constraints on character cards
	for i := range allCards {
		card := &allCards[i]
		if card.CardType != cards.TypeCharacter || card.CharacterDetails == nil {
			continue
		}
		details := card.CharacterDetails
		var issues []string

		switch {
		case details.IsBoxTopper:
			if details.PowerLevel != nil {
				issues = append(issues, "box topper should not have power level")
			}
		case details.PowerLevel == nil:
			issues = append(issues, "missing power level")
		case details.IsMascot:
			if *details.PowerLevel != 1 {
				issues = append(issues, "mascot cards must have power level 1")
			}
		case *details.PowerLevel != 8 && *details.PowerLevel != 9 && *details.PowerLevel != 10:
			issues = append(issues, "power level must be 8, 9, or 10")
		}

		if details.PowerLevel != nil && *details.PowerLevel == 10 {
			if card.CollectionStatus != nil && !card.CollectionStatus.IsHolo {
				issues = append(issues, "level 10 card must be holo")
			}
		}

		if len(issues) > 0 {
			report.ConstraintViolations = append(report.ConstraintViolations, ConstraintIssue{
				Card:   refOf(card),
				Issues: issues,
			})
		}
	}

	return report, nil
}
