package commands

import (
	"github.com/spf13/cobra"

	"github.com/sablewing/cardkeep/pkg/catalog"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the card catalog from a YAML seed file",
	Long:  "Validates the seed file and inserts every card not already in the catalog. Reseeding an existing database is safe.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := seedFile
		if path == "" {
			path = cfg.CatalogPath
		}

		file, err := catalog.Load(path)
		if err != nil {
			return err
		}
		stats, err := catalog.Seed(manager.DB(), file)
		if err != nil {
			return err
		}
		okColor.Printf("seeded %d cards, %d already present\n", stats.Created, stats.Skipped)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "catalog file to load (defaults to the configured catalog path)")
}
