package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sablewing/cardkeep/pkg/cards"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection completion statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := manager.GetCollectionStats()
		if err != nil {
			return err
		}

		headerColor.Println("Collection progress")
		fmt.Printf("  collected: %d / %d (%.1f%%)\n",
			stats.TotalCollected, stats.TotalCards, stats.CompletionPercentage)
		for _, cardType := range cards.CardTypes() {
			fmt.Printf("  %-10s %d\n", cardType, stats.CollectedByType[cardType])
		}
		fmt.Printf("  holos:        %d\n", stats.TotalHolos)
		fmt.Printf("  secret rares: %d\n", stats.TotalSecretRares)
		return nil
	},
}
