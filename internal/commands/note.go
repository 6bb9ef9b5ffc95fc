package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note <card-number> <text...>",
	Short: "Append a timestamped note to a card",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args[1:], " ")
		if !manager.AddCardNote(args[0], text) {
			return fmt.Errorf("no card with number %s", args[0])
		}
		okColor.Printf("note added to %s\n", args[0])
		return nil
	},
}
