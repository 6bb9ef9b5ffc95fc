package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sablewing/cardkeep/pkg/cards"
)

var (
	searchType      string
	searchElement   string
	searchCollected bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search cards by name, with optional type and element filters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var cardType *cards.CardType
		if searchType != "" {
			t := cards.CardType(searchType)
			if !t.Valid() {
				return fmt.Errorf("unknown card type %q", searchType)
			}
			cardType = &t
		}

		var element *cards.Element
		if searchElement != "" {
			e := cards.Element(searchElement)
			if !e.Valid() {
				return fmt.Errorf("unknown element %q", searchElement)
			}
			element = &e
		}

		result, err := manager.SearchCards(args[0], cardType, element, searchCollected)
		if err != nil {
			return err
		}
		printCardList(result)
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchType, "type", "", "filter by card type (CHARACTER, SUPPORT, GUARDIAN, SHIELD, PROMO)")
	searchCmd.Flags().StringVar(&searchElement, "element", "", "filter by element (FIRE, WATER, GRASS, ELECTRIC, PLATINUM)")
	searchCmd.Flags().BoolVar(&searchCollected, "collected", false, "only show collected cards")
}
