package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/tasnif/internal/classifier"
)

const (
	resultsHeading = "Classification Results"
	missingJSON    = "Could not find JSON in the model output. Showing raw output below for debugging:"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "classify [sentence...]",
		Short: "Classify a sentence (read from stdin when no arguments are given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sentence, err := readSentence(cmd, args)
			if err != nil {
				return err
			}

			var c *classifier.Classification
			if strings.TrimSpace(sentence) == "" {
				err = classifier.ErrValidation
			} else {
				sys, sysErr := ctx.classifier(cmd.ErrOrStderr())
				if sysErr != nil {
					return sysErr
				}
				c, err = sys.Classify(cmd.Context(), sentence)
			}

			outcome := classifier.NewOutcome(sentence, c, err)
			if jsonOutput {
				if err := writeJSON(cmd, outcome); err != nil {
					return err
				}
				return outcomeError(outcome)
			}

			return printOutcome(cmd.OutOrStdout(), outcome)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the outcome as JSON")

	return cmd
}

func readSentence(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func printOutcome(w io.Writer, o classifier.Outcome) error {
	switch o.Status {
	case classifier.StatusResult:
		keys := o.Result.Keys()
		rows := make([][]string, 0, len(keys))
		for _, k := range keys {
			rows = append(rows, []string{k, o.Result.Value(k)})
		}
		fmt.Fprintln(w, resultsHeading)
		fmt.Fprintln(w, renderTable([]string{"Category", "Score"}, rows, []columnAlignment{alignLeft, alignRight}))
		return nil
	case classifier.StatusWarning:
		fmt.Fprintln(w, missingJSON)
		fmt.Fprintln(w, o.Raw)
		return nil
	default:
		return outcomeError(o)
	}
}

func outcomeError(o classifier.Outcome) error {
	switch o.Status {
	case classifier.StatusInvalid:
		return classifier.ErrValidation
	case classifier.StatusError:
		return errors.New("classification failed: " + o.Error)
	}
	return nil
}
