// Package commands wires the CLI onto the collection manager. Every command
// is a thin shim: parse flags, call the manager, print, set the exit code.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/sablewing/cardkeep/internal/config"
	"github.com/sablewing/cardkeep/pkg/collection"
)

var (
	manager *collection.Manager
	cfg     *config.Config
)

// Initialize hands the shared collection manager and config to the command tree
func Initialize(m *collection.Manager, c *config.Config) {
	manager = m
	cfg = c
}

var rootCmd = &cobra.Command{
	Use:           "cardkeep",
	Short:         "Personal trading-card collection tracker",
	Long:          "CardKeep tracks which cards of the catalog you own, records acquisitions and trades, and reports collection completion.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(
		showCmd,
		searchCmd,
		statsCmd,
		collectCmd,
		uncollectCmd,
		tradeCmd,
		noteCmd,
		misprintCmd,
		missingCmd,
		setsCmd,
		recentCmd,
		exportCmd,
		importCmd,
		backupCmd,
		verifyCmd,
		seedCmd,
		versionCmd,
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
