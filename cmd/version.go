package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tristendillon/nbstub/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of nbstub",
	Long:  `Displays the version of nbstub.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "nbstub %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
