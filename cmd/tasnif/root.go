package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand(ctx *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tasnif",
		Short:         "Classify Arabic sentences into hate, offensive, violent, and vulgar scores",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newClassifyCommand(ctx))
	rootCmd.AddCommand(newCategoriesCommand())

	return rootCmd
}
