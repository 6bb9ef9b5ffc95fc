package commands

import (
	"github.com/spf13/cobra"
)

var recentLimit int

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the most recently acquired cards",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		recent, err := manager.GetRecentAcquisitions(recentLimit)
		if err != nil {
			return err
		}
		if len(recent) == 0 {
			warnColor.Println("no dated acquisitions recorded")
			return nil
		}
		headerColor.Println("recent acquisitions")
		printCardList(recent)
		return nil
	},
}

func init() {
	recentCmd.Flags().IntVar(&recentLimit, "limit", 10, "maximum number of cards to show")
}
