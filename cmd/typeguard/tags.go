package main

import (
	"github.com/aretw0/typeguard/internal/cli"
	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the supported type tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		width, _ := cmd.Flags().GetInt("width")
		return cli.Tags(cmd.OutOrStdout(), colorEnabled(cmd), width)
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)

	tagsCmd.Flags().Int("width", 100, "Word wrap width of the rendered table")
}
