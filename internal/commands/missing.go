package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var missingCmd = &cobra.Command{
	Use:   "missing",
	Short: "List cards not yet collected",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		missing, err := manager.GetMissingCards()
		if err != nil {
			return err
		}
		if len(missing) == 0 {
			okColor.Println("collection is complete")
			return nil
		}
		headerColor.Printf("missing %d cards\n", len(missing))
		printCardList(missing)
		fmt.Println()
		return nil
	},
}
