package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sablewing/cardkeep/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Get().String())
	},
}
