package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List characters whose every variant is collected",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := manager.GetCompleteSets()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			warnColor.Println("no complete character sets yet")
			return nil
		}
		headerColor.Printf("complete sets (%d)\n", len(names))
		for _, name := range names {
			fmt.Printf("  %s\n", name)
		}
		return nil
	},
}
