package commands

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/sablewing/cardkeep/pkg/database/models"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	okColor     = color.New(color.FgGreen)
	warnColor   = color.New(color.FgYellow)
	badColor    = color.New(color.FgRed)
)

// printCardLine prints the one-line summary used by list outputs
func printCardLine(card *models.Card) {
	collected := " "
	if card.CollectionStatus != nil && card.CollectionStatus.IsCollected {
		collected = okColor.Sprint("✓")
	}

	extra := ""
	if card.CharacterDetails != nil {
		switch {
		case card.CharacterDetails.IsBoxTopper:
			extra = " (box topper)"
		case card.CharacterDetails.IsMascot:
			extra = " (mascot)"
		case card.CharacterDetails.PowerLevel != nil:
			extra = fmt.Sprintf(" (level %d)", *card.CharacterDetails.PowerLevel)
		}
	}
	if card.ElementalDetails != nil {
		extra = fmt.Sprintf(" (%s)", card.ElementalDetails.Element)
	}
	if card.SupportDetails != nil && card.SupportDetails.IsSecretRare {
		extra = " (secret rare)"
	}

	fmt.Printf("  [%s] %-8s %-10s %s%s\n", collected, card.CardNumber, card.CardType, card.Name, extra)
}

func printCardList(list []models.Card) {
	if len(list) == 0 {
		fmt.Println("  no cards")
		return
	}
	for i := range list {
		printCardLine(&list[i])
	}
}
