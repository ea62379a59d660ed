package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"declc/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the declc version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
		return nil
	},
}
