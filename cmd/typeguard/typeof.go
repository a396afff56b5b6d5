package main

import (
	"github.com/aretw0/typeguard/internal/cli"
	"github.com/spf13/cobra"
)

var typeofCmd = &cobra.Command{
	Use:   "typeof <literal> [literal ...]",
	Short: "Classify YAML/JSON literals",
	Long:  `Decodes each literal and prints its type tag plus every registered tag it satisfies.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.TypeOf(cmd.OutOrStdout(), colorEnabled(cmd), args)
	},
}

func init() {
	rootCmd.AddCommand(typeofCmd)
}
