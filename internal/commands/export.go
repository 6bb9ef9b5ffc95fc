package commands

import (
	"errors"

	"github.com/spf13/cobra"
)

var exportSkipNotes bool

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export collection status to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !manager.ExportCollection(args[0], !exportSkipNotes) {
			return errors.New("export failed")
		}
		okColor.Printf("exported collection to %s\n", args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().BoolVar(&exportSkipNotes, "no-notes", false, "omit notes from the export")
}
