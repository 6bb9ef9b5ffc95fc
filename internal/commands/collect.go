package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sablewing/cardkeep/pkg/cards"
	"github.com/sablewing/cardkeep/pkg/collection"
)

var (
	collectHolo        bool
	collectAcquisition string
	collectNote        string
)

var collectCmd = &cobra.Command{
	Use:   "collect <card-number> [card-number...]",
	Short: "Mark cards as collected",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Multiple numbers go through the bulk path; flags only apply to
		// a single card.
		if len(args) > 1 {
			if collectHolo || collectAcquisition != "" || collectNote != "" {
				return errors.New("flags only apply when collecting a single card")
			}
			if !manager.BulkUpdateCollection(args, true) {
				return errors.New("bulk update failed; nothing was written")
			}
			okColor.Printf("collected %d cards\n", len(args))
			return nil
		}

		update := collection.StatusUpdate{IsHolo: collectHolo, Notes: collectNote}
		if collectAcquisition != "" {
			method := cards.Acquisition(collectAcquisition)
			if !method.Valid() {
				return fmt.Errorf("unknown acquisition method %q", collectAcquisition)
			}
			update.Acquisition = &method
		}

		if !manager.UpdateCollectionStatus(args[0], true, update) {
			return fmt.Errorf("no card with number %s", args[0])
		}
		okColor.Printf("collected %s\n", args[0])
		return nil
	},
}

var uncollectCmd = &cobra.Command{
	Use:   "uncollect <card-number> [card-number...]",
	Short: "Mark cards as not collected",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			if !manager.BulkUpdateCollection(args, false) {
				return errors.New("bulk update failed; nothing was written")
			}
			okColor.Printf("uncollected %d cards\n", len(args))
			return nil
		}
		if !manager.UpdateCollectionStatus(args[0], false, collection.StatusUpdate{}) {
			return fmt.Errorf("no card with number %s", args[0])
		}
		okColor.Printf("uncollected %s\n", args[0])
		return nil
	},
}

func init() {
	collectCmd.Flags().BoolVar(&collectHolo, "holo", false, "the copy is holographic")
	collectCmd.Flags().StringVar(&collectAcquisition, "acquisition", "", "how the card was acquired (PULLED, TRADED, GIFTED)")
	collectCmd.Flags().StringVar(&collectNote, "note", "", "note to store with the card")
}
