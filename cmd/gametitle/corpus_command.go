package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"gametitle/internal/corpus"
)

func newCorpusCommand(ctx *commandContext) *cobra.Command {
	corpusCmd := &cobra.Command{
		Use:   "corpus",
		Short: "Accuracy corpus utilities",
	}
	corpusCmd.AddCommand(newCorpusScoreCommand(ctx))
	return corpusCmd
}

type scoreOutput struct {
	Total       int           `json:"total"`
	Skipped     int           `json:"skipped"`
	Score       int           `json:"score"`
	FailureRate float64       `json:"failure_rate"`
	Failures    []scoreFailed `json:"failures"`
}

type scoreFailed struct {
	Filename   string  `json:"filename"`
	Guess      string  `json:"guess,omitempty"`
	Found      bool    `json:"found"`
	Ideal      string  `json:"ideal"`
	Score      int     `json:"score"`
	Similarity float64 `json:"similarity"`
}

func newCorpusScoreCommand(ctx *commandContext) *cobra.Command {
	var filePath string
	var jsonOutput bool
	var minScore int

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score the title guesser against a fixture corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			namer, err := ctx.ensureNamer()
			if err != nil {
				return err
			}
			logger, err := ctx.componentLogger("corpus")
			if err != nil {
				return err
			}

			path := strings.TrimSpace(filePath)
			if path == "" {
				path = cfg.Corpus.Path
			}
			entries, err := corpus.Load(path)
			if err != nil {
				return fmt.Errorf("load corpus: %w", err)
			}

			report := corpus.Score(entries, namer, logger)

			if jsonOutput {
				if err := writeJSON(cmd, newScoreOutput(report)); err != nil {
					return err
				}
			} else {
				renderScoreReport(cmd, report)
			}

			if cmd.Flags().Changed("min-score") && report.Score < minScore {
				return fmt.Errorf("corpus score %d is below the minimum %d", report.Score, minScore)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Fixture file to score (defaults to [corpus].path or the built-in corpus)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().IntVar(&minScore, "min-score", 0, "Fail when the total score is below this value")
	return cmd
}

func newScoreOutput(report corpus.Report) scoreOutput {
	out := scoreOutput{
		Total:       report.Total(),
		Skipped:     report.Skipped,
		Score:       report.Score,
		FailureRate: report.FailureRate(),
		Failures:    []scoreFailed{},
	}
	for _, res := range report.Failures() {
		out.Failures = append(out.Failures, scoreFailed{
			Filename:   res.Filename,
			Guess:      res.Guess,
			Found:      res.Found,
			Ideal:      res.Ideal(),
			Score:      res.Score,
			Similarity: res.Similarity,
		})
	}
	return out
}

func renderScoreReport(cmd *cobra.Command, report corpus.Report) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	failures := report.Failures()

	if len(failures) > 0 {
		rows := make([][]string, 0, len(failures))
		for _, res := range failures {
			rows = append(rows, []string{
				res.Filename,
				displayTitle(res.Guess, res.Found),
				res.Ideal(),
				strconv.Itoa(res.Score),
				strconv.FormatFloat(res.Similarity, 'f', 2, 64),
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"Filename", "Guess", "Ideal", "Score", "Similarity"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
		))
	}

	for _, line := range renderSectionHeader("Corpus", colorize) {
		fmt.Fprintln(out, line)
	}
	kind := statusOK
	for _, res := range failures {
		kind = statusWarn
		if !res.Found || !slices.Contains(res.Acceptable, res.Guess) {
			kind = statusError
			break
		}
	}
	fmt.Fprintln(out, renderStatusLine("Perfect guesses", kind,
		fmt.Sprintf("%d of %d (%.2f%% missed)", report.Total()-len(failures), report.Total(), report.FailureRate()), colorize))
	fmt.Fprintln(out, renderStatusLine("Skipped (audit)", statusInfo, strconv.Itoa(report.Skipped), colorize))
	fmt.Fprintln(out, renderStatusLine("Final score", kind, strconv.Itoa(report.Score), colorize))
}
