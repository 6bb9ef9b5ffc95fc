package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var tradeDate string

var tradeCmd = &cobra.Command{
	Use:   "trade <acquired-number> <traded-number>",
	Short: "Record a trade between two cards",
	Long:  "Marks the first card as collected via trade and the second as traded away, with cross-referencing notes on both.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var when *time.Time
		if tradeDate != "" {
			parsed, err := time.Parse("2006-01-02", tradeDate)
			if err != nil {
				return fmt.Errorf("invalid trade date %q, expected YYYY-MM-DD", tradeDate)
			}
			when = &parsed
		}
		if !manager.RecordTrade(args[0], args[1], when) {
			return fmt.Errorf("trade failed; check that both %s and %s exist", args[0], args[1])
		}
		okColor.Printf("traded away %s for %s\n", args[1], args[0])
		return nil
	},
}

func init() {
	tradeCmd.Flags().StringVar(&tradeDate, "date", "", "trade date (YYYY-MM-DD, defaults to today)")
}
