package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <card-number>",
	Short: "Show a single card by its card number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		card, err := manager.GetCardByNumber(args[0])
		if err != nil {
			return err
		}
		if card == nil {
			warnColor.Printf("no card with number %s\n", args[0])
			return nil
		}

		headerColor.Printf("%s  %s (%s)\n", card.CardNumber, card.Name, card.CardType)
		fmt.Printf("  edition:     %s\n", card.Edition)
		fmt.Printf("  illustrator: %s\n", card.Illustrator)
		if card.Talent != "" {
			fmt.Printf("  talent:      %s\n", card.Talent)
		}

		if d := card.CharacterDetails; d != nil {
			if d.IsBoxTopper {
				fmt.Println("  variant:     box topper (not playable)")
			} else {
				fmt.Printf("  power level: %d\n", *d.PowerLevel)
				fmt.Printf("  element:     %s (strong vs %s, weak vs %s)\n",
					*d.Element, *d.ElementalStrength, *d.ElementalWeakness)
				fmt.Printf("  age/height/weight: %s / %s / %s\n", *d.Age, *d.Height, *d.Weight)
			}
			if d.IsMascot {
				fmt.Println("  variant:     mascot")
			}
		}
		if d := card.SupportDetails; d != nil && d.IsSecretRare {
			fmt.Println("  variant:     secret rare")
		}
		if d := card.ElementalDetails; d != nil {
			fmt.Printf("  element:     %s\n", d.Element)
		}

		if s := card.CollectionStatus; s != nil && s.IsCollected {
			okColor.Println("  collected")
			if s.Acquisition != nil {
				fmt.Printf("  acquisition: %s\n", *s.Acquisition)
			}
			if s.DateAcquired != nil {
				fmt.Printf("  acquired:    %s\n", s.DateAcquired.Format("2006-01-02"))
			}
			if s.IsHolo {
				fmt.Println("  holo")
			}
			if s.IsMisprint {
				fmt.Println("  misprint")
			}
			if s.Notes != "" {
				fmt.Printf("  notes:\n%s\n", s.Notes)
			}
		} else {
			warnColor.Println("  not collected")
		}
		return nil
	},
}
