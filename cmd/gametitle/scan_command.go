package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gametitle/internal/config"
	"gametitle/internal/corpus"
	"gametitle/internal/fileutil"
	"gametitle/internal/scan"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var updatePath string
	var includeFiles bool
	var includeHidden bool
	var watch bool

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Guess titles for every entry in a directory",
		Long: "Guess titles for every entry in a directory.\n\n" +
			"--json prints a corpus fixture template keyed by entry name with every\n" +
			"entry flagged MUST_AUDIT. --update merges that template into an existing\n" +
			"fixture file, keeping entries that were already audited. --watch keeps\n" +
			"running after the listing and reports entries as they appear.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			namer, err := ctx.ensureNamer()
			if err != nil {
				return err
			}
			logger, err := ctx.componentLogger("scan")
			if err != nil {
				return err
			}

			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			opts := cfg.ScanOptions()
			if cmd.Flags().Changed("files") {
				opts.IncludeFiles = includeFiles
			}
			opts.IncludeHidden = includeHidden

			if watch && strings.TrimSpace(updatePath) != "" {
				return errors.New("--watch cannot be combined with --update")
			}
			var watcher *scan.Watcher
			if watch {
				// Start before listing so nothing created in between is missed.
				watcher, err = scan.NewWatcher(dir, opts, namer, logger)
				if err != nil {
					return err
				}
				defer watcher.Close()
			}

			entries, err := scan.Dir(cmd.Context(), dir, opts, namer, logger)
			if err != nil {
				return err
			}

			if strings.TrimSpace(updatePath) != "" {
				return updateFixtures(cmd, updatePath, entries)
			}
			if watcher != nil {
				return watchEntries(cmd, watcher, entries, jsonOutput)
			}
			if jsonOutput {
				return corpus.WriteFixtures(cmd.OutOrStdout(), fixturesFromScan(entries))
			}

			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entries found")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{e.Name, string(e.Kind), displayTitle(e.Title, e.Found)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Name", "Kind", "Title"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print a corpus fixture template as JSON")
	cmd.Flags().StringVar(&updatePath, "update", "", "Merge the fixture template into this file")
	cmd.Flags().BoolVar(&includeFiles, "files", false, "Include regular files (overrides [scan].include_files)")
	cmd.Flags().BoolVar(&includeHidden, "hidden", false, "Include entries whose names start with a dot")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep running and report new entries as they appear")
	return cmd
}

func fixturesFromScan(entries []scan.Entry) map[string]corpus.Fixture {
	fixtures := make(map[string]corpus.Fixture, len(entries))
	for _, e := range entries {
		fixtures[e.Name] = corpus.NewFixture(e.Title)
	}
	return fixtures
}

func updateFixtures(cmd *cobra.Command, path string, entries []scan.Entry) error {
	target, err := config.ExpandPath(path)
	if err != nil {
		return fmt.Errorf("resolve fixture path: %w", err)
	}

	existing := map[string]corpus.Fixture{}
	file, err := os.Open(target)
	switch {
	case err == nil:
		existing, err = corpus.ReadFixtures(file)
		file.Close()
		if err != nil {
			return fmt.Errorf("read %s: %w", target, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return fmt.Errorf("open fixtures: %w", err)
	}

	before := len(existing)
	merged := corpus.Merge(existing, fixturesFromScan(entries))

	err = fileutil.WriteFileAtomic(target, 0o644, func(w io.Writer) error {
		return corpus.WriteFixtures(w, merged)
	})
	if err != nil {
		return fmt.Errorf("write fixtures: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %d entries (%d new)\n", target, len(merged), len(merged)-before)
	return nil
}

// watchEntries prints the current listing, then one line per new entry until
// the command context ends. JSON output is one object per line.
func watchEntries(cmd *cobra.Command, watcher *scan.Watcher, entries []scan.Entry, jsonOutput bool) error {
	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)

	emit := func(e scan.Entry) {
		if jsonOutput {
			if err := enc.Encode(e); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
			return
		}
		fmt.Fprintf(out, "%s\t%s\n", e.Name, displayTitle(e.Title, e.Found))
	}
	for _, e := range entries {
		emit(e)
	}
	return watcher.Run(cmd.Context(), emit)
}
