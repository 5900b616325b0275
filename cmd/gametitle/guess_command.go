package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gametitle/internal/logging"
)

type guessResult struct {
	Input string `json:"input"`
	Title string `json:"title,omitempty"`
	Found bool   `json:"found"`
}

func newGuessCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "guess <filename>...",
		Short: "Guess the title for one or more file names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			namer, err := ctx.ensureNamer()
			if err != nil {
				return err
			}
			logger, err := ctx.componentLogger("guess")
			if err != nil {
				return err
			}

			results := make([]guessResult, 0, len(args))
			for _, arg := range args {
				title, ok := namer.FilenameToName(arg)
				logger.Debug("guessed title",
					logging.String(logging.FieldPath, arg),
					logging.String(logging.FieldTitle, title),
					logging.Bool("found", ok),
				)
				results = append(results, guessResult{Input: arg, Title: title, Found: ok})
			}

			if jsonOutput {
				return writeJSON(cmd, results)
			}

			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{r.Input, displayTitle(r.Title, r.Found)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Input", "Title"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	return cmd
}

func displayTitle(title string, found bool) string {
	if !found {
		return "<none>"
	}
	return title
}
