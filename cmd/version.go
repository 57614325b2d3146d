package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Both can be set with -ldflags "-X github.com/spigell/skillmatch/cmd.version=...".
var (
	version = "unknown"
	commit  = "none"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of skillmatch",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s (commit %s)\n", app, version, commit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
