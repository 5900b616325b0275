package main

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"gametitle/internal/camelcase"
)

func newWordsCommand(ctx *commandContext) *cobra.Command {
	var countOnly bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "words <text>...",
		Short: "Split camelCase text into words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			classifier := camelcase.NewClassifier(cfg.NamingTables().Classifier)

			if jsonOutput {
				type wordsResult struct {
					Input string   `json:"input"`
					Words []string `json:"words"`
					Count int      `json:"count"`
				}
				results := make([]wordsResult, 0, len(args))
				for _, arg := range args {
					words := slices.Collect(classifier.Words(arg))
					if words == nil {
						words = []string{}
					}
					results = append(results, wordsResult{Input: arg, Words: words, Count: len(words)})
				}
				return writeJSON(cmd, results)
			}

			out := cmd.OutOrStdout()
			if countOnly {
				for _, arg := range args {
					fmt.Fprintln(out, strconv.Itoa(classifier.WordCount(arg)))
				}
				return nil
			}

			rows := make([][]string, 0, len(args))
			for _, arg := range args {
				rows = append(rows, []string{
					arg,
					classifier.ToSpaces(arg),
					strconv.Itoa(classifier.WordCount(arg)),
				})
			}
			fmt.Fprintln(out, renderTable([]string{"Input", "Words", "Count"}, rows, []columnAlignment{alignLeft, alignLeft, alignRight}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&countOnly, "count", false, "Print only the word count for each input")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	return cmd
}
