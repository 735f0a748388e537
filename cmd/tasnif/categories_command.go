package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/tasnif/internal/classifier"
)

func newCategoriesCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the categories the model is asked to score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				return writeJSON(cmd, classifier.Categories)
			}
			for _, c := range classifier.Categories {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the categories as JSON")

	return cmd
}
