package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var misprintClear bool

var misprintCmd = &cobra.Command{
	Use:   "misprint <card-number>",
	Short: "Flag a card as a misprint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !manager.UpdateCardCondition(args[0], !misprintClear) {
			return fmt.Errorf("no card with number %s", args[0])
		}
		if misprintClear {
			okColor.Printf("cleared misprint flag on %s\n", args[0])
		} else {
			okColor.Printf("flagged %s as a misprint\n", args[0])
		}
		return nil
	},
}

func init() {
	misprintCmd.Flags().BoolVar(&misprintClear, "clear", false, "clear the misprint flag instead of setting it")
}
