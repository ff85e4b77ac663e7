package main

import (
	"fmt"

	"github.com/aretw0/docframe"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of docframe",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "docframe version %s\n", docframe.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
