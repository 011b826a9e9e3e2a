package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/lineed"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lineed version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), lineed.Describe())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
