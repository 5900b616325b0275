package corpus

import (
	"fmt"
	"log/slog"
	"strings"

	"gametitle/internal/textutil"
)

const missScore = -10

// Guesser produces a title for a file name.
type Guesser interface {
	FilenameToName(path string) (string, bool)
}

// Result is the outcome for one entry.
type Result struct {
	Entry
	Guess string
	// Found is false when the guesser produced no title.
	Found bool
	// Score is 0 for the ideal title, minus the position of any other
	// acceptable title, and -10 for a miss.
	Score int
	// Similarity is the word overlap between Guess and the ideal title, from
	// 0 to 1. It helps spot near misses such as casing differences.
	Similarity float64
}

// Perfect reports whether the guess was the ideal title.
func (r Result) Perfect() bool {
	return r.Score == 0
}

// Report aggregates the results of one run.
type Report struct {
	Results []Result
	Score   int
	Skipped int
}

// Total is the number of scored entries.
func (r Report) Total() int {
	return len(r.Results)
}

// Failures returns every result that was not the ideal title.
func (r Report) Failures() []Result {
	var failures []Result
	for _, res := range r.Results {
		if !res.Perfect() {
			failures = append(failures, res)
		}
	}
	return failures
}

// FailureRate is the share of scored entries that missed the ideal title,
// as a percentage.
func (r Report) FailureRate() float64 {
	if len(r.Results) == 0 {
		return 0
	}
	return float64(len(r.Failures())) / float64(len(r.Results)) * 100
}

// Summary renders the report as plain text, one failure per line.
func (r Report) Summary() string {
	failures := r.Failures()
	var b strings.Builder
	fmt.Fprintf(&b, "Failed to perfectly guess %d of %d titles (%.2f%%):\n", len(failures), r.Total(), r.FailureRate())
	for _, res := range failures {
		guess := res.Guess
		if !res.Found {
			guess = "<none>"
		}
		fmt.Fprintf(&b, "\t%-35s-> %-35s (not %s)\n", res.Filename, guess, res.Ideal())
	}
	fmt.Fprintf(&b, "Final accuracy score: %d", r.Score)
	return b.String()
}

// Score runs g over every audited entry. A nil logger discards output.
func Score(entries []Entry, g Guesser, logger *slog.Logger) Report {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	report := Report{Results: make([]Result, 0, len(entries))}
	for _, entry := range entries {
		if entry.MustAudit {
			report.Skipped++
			continue
		}
		guess, found := g.FilenameToName(entry.Filename)
		res := Result{Entry: entry, Guess: guess, Found: found, Score: missScore}
		if found {
			res.Similarity = textutil.Similarity(guess, entry.Ideal())
			for pos, title := range entry.Acceptable {
				if guess == title {
					res.Score = -pos
					break
				}
			}
		}
		if !res.Perfect() {
			logger.Debug("imperfect guess",
				slog.String("filename", entry.Filename),
				slog.String("guess", guess),
				slog.String("ideal", entry.Ideal()),
				slog.Int("score", res.Score),
				slog.Float64("similarity", res.Similarity),
			)
		}
		report.Score += res.Score
		report.Results = append(report.Results, res)
	}

	logger.Info("corpus scored",
		slog.Int("total", report.Total()),
		slog.Int("failures", len(report.Failures())),
		slog.Int("skipped", report.Skipped),
		slog.Int("score", report.Score),
	)
	return report
}
