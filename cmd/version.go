package cmd

import (
	"fmt"
	"strings"

	"github.com/spigell/answer-scorer/internal/scoring"

	"github.com/spf13/cobra"
)

// Actual version can be specified in build command.
var version = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the available scoring strategies",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s (strategies: %s)\n", app, version, strings.Join(scoring.Names(), ", "))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
