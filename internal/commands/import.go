package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sablewing/cardkeep/pkg/collection"
)

var importStrategy string

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import collection status from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strategy := collection.MergeStrategy(importStrategy)
		switch strategy {
		case collection.MergeSkip, collection.MergeUpdate, collection.MergeReplace:
		default:
			return fmt.Errorf("unknown merge strategy %q (skip, update, replace)", importStrategy)
		}

		stats, err := manager.ImportCollection(args[0], strategy)
		if err != nil {
			return err
		}
		okColor.Printf("imported %d, updated %d, skipped %d\n", stats.Imported, stats.Updated, stats.Skipped)
		if stats.Failed > 0 {
			badColor.Printf("%d entries failed; see logs\n", stats.Failed)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importStrategy, "strategy", "skip", "merge strategy for already-collected cards (skip, update, replace)")
}
