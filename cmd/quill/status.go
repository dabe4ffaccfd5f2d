package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"

	"github.com/gorewood/quill/internal/config"
	"github.com/gorewood/quill/internal/journal"
	"github.com/gorewood/quill/internal/output"
	"github.com/gorewood/quill/internal/streak"
)

// statusResult holds the data for status output.
type statusResult struct {
	Location      string              `json:"location"`
	SourceKind    string              `json:"source"`
	Exists        bool                `json:"exists"`
	ConfigDir     string              `json:"config_dir"`
	Today         civil.Date          `json:"today"`
	EntryCount    int                 `json:"entry_count"`
	FilesTotal    int                 `json:"files_total,omitempty"`
	FilesSkipped  int                 `json:"files_skipped,omitempty"`
	NotJournal    int                 `json:"not_journal,omitempty"`
	ParseErrors   int                 `json:"parse_errors,omitempty"`
	Moods         []journal.MoodCount `json:"mood_distribution"`
	OldestEntry   *civil.Date         `json:"oldest_entry,omitempty"`
	NewestEntry   *civil.Date         `json:"newest_entry,omitempty"`
	CurrentStreak int                 `json:"current_streak"`
	LongestStreak int                 `json:"longest_streak"`
}

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	var verboseFlag bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show journal location, statistics and streak",
		Long: `Show where quill reads entries from, how many it found, the primary mood
distribution and the current streak.

Examples:
  quill status            # Show human-readable status
  quill status --verbose  # Include skipped file statistics
  quill status --json     # Output status as JSON for scripting`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, verboseFlag)
		},
	}
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Show skipped file statistics")
	return cmd
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, verbose bool) error {
	printer := newPrinter(cmd)

	cfg, err := loadConfig(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	result, err := gatherStatus(cfg)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		if !verbose {
			result.FilesTotal, result.FilesSkipped = 0, 0
			result.NotJournal, result.ParseErrors = 0, 0
		}
		return printer.WriteJSON(result)
	}

	printHumanStatus(printer, result, verbose)
	return nil
}

// gatherStatus collects all status information. A missing source is
// reported, not treated as an error.
func gatherStatus(cfg *config.Config) (*statusResult, error) {
	today, err := resolveToday(cfg, "")
	if err != nil {
		return nil, err
	}

	source := newSource(cfg)
	result := &statusResult{
		Location:   source.Location(),
		SourceKind: sourceKind(cfg),
		Exists:     sourceExists(cfg),
		ConfigDir:  config.Dir(),
		Today:      today,
		Moods:      []journal.MoodCount{},
	}
	if !result.Exists {
		return result, nil
	}

	entries, stats, err := journal.New(source).ListEntriesWithStats()
	if err != nil {
		return nil, journalError(err)
	}

	summary := journal.ComputeStats(entries)
	result.EntryCount = summary.TotalEntries
	result.Moods = summary.MoodDistribution
	result.OldestEntry = summary.OldestEntry
	result.NewestEntry = summary.NewestEntry
	if stats != nil {
		result.FilesTotal = stats.Total
		result.FilesSkipped = stats.Skipped
		result.NotJournal = stats.NotJournal
		result.ParseErrors = stats.ParseErrors
	}

	streaks := streak.Compute(journal.DatesOf(entries), today)
	result.CurrentStreak = streaks.CurrentStreak
	result.LongestStreak = streaks.LongestStreak

	return result, nil
}

func sourceKind(cfg *config.Config) string {
	if cfg.Database != "" {
		return "sqlite"
	}
	return "files"
}

func sourceExists(cfg *config.Config) bool {
	if cfg.Database != "" {
		_, err := os.Stat(cfg.Database)
		return err == nil
	}
	return journal.NewFileStorage(cfg.JournalDir).DirExists()
}

// printHumanStatus outputs status in human-readable format.
func printHumanStatus(printer *output.Printer, status *statusResult, verbose bool) {
	printer.Section("Journal")
	printer.KeyValue("Location", status.Location)
	printer.KeyValue("Source", status.SourceKind)
	printer.KeyValue("Exists", formatBool(status.Exists))

	if !status.Exists {
		printer.Println()
		printer.Box("No journal found",
			"Set journal_dir or database in "+filepath.Join(status.ConfigDir, "config.yaml")+"\n"+
				"or pass --dir / --db.")
		return
	}

	if verbose {
		printer.KeyValue("Config", status.ConfigDir)
		printer.KeyValue("Files Total", strconv.Itoa(status.FilesTotal))
	}
	printer.KeyValue("Entries", strconv.Itoa(status.EntryCount))
	if verbose && status.FilesSkipped > 0 {
		printer.KeyValue("Skipped", fmt.Sprintf("%d (%d not journal, %d parse error)",
			status.FilesSkipped, status.NotJournal, status.ParseErrors))
	}
	if status.OldestEntry != nil && status.NewestEntry != nil {
		printer.KeyValue("Range", status.OldestEntry.String()+" to "+status.NewestEntry.String())
	}

	if len(status.Moods) > 0 {
		printer.Section("Moods")
		rows := make([][]string, 0, len(status.Moods))
		for _, mc := range status.Moods {
			rows = append(rows, []string{
				printer.MoodBadge(mc.Mood, journal.MoodColor(mc.Mood)),
				string(journal.MoodCategoryOf(mc.Mood)),
				strconv.Itoa(mc.Count),
			})
		}
		printer.Table([]string{"Mood", "Category", "Entries"}, rows)
	}

	printer.Section("Streak")
	printer.KeyValue("Today", status.Today.String())
	printer.KeyValue("Current", formatDays(status.CurrentStreak))
	printer.KeyValue("Longest", formatDays(status.LongestStreak))
}

// formatBool returns a human-readable boolean string.
func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
