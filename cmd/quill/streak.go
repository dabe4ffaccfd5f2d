package main

import (
	"fmt"
	"strconv"
	"time"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"

	"github.com/gorewood/quill/internal/output"
	"github.com/gorewood/quill/internal/streak"
)

// defaultMissedShown is how many missed days human output lists.
const defaultMissedShown = 7

// streakResult is the JSON shape of the streak command.
type streakResult struct {
	Today         civil.Date   `json:"today"`
	CurrentStreak int          `json:"current_streak"`
	LongestStreak int          `json:"longest_streak"`
	MissedCount   int          `json:"missed_count"`
	MissedDays    []civil.Date `json:"missed_days"`
}

// newStreakCmd creates the streak command.
func newStreakCmd() *cobra.Command {
	var todayFlag string
	var missedFlag int

	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Show the current and longest writing streak",
		Long: `Show how many consecutive days you have written, your longest run, and
the days you missed since your first entry.

The current streak ends today: if there is no entry for today it is 0.
JSON output always lists every missed day, newest first.

Examples:
  quill streak                      # Streak as of today
  quill streak --today 2026-01-31   # Streak as of another day
  quill streak --missed 30          # List up to 30 missed days
  quill streak --json               # Full result as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStreak(cmd, todayFlag, missedFlag)
		},
	}

	cmd.Flags().StringVar(&todayFlag, "today", "", "Compute the streak as of this date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&missedFlag, "missed", defaultMissedShown, "Number of missed days to list (0 hides the list)")

	return cmd
}

// runStreak executes the streak command.
func runStreak(cmd *cobra.Command, todayFlag string, missedShown int) error {
	printer := newPrinter(cmd)

	if missedShown < 0 {
		err := output.NewUserError("--missed must not be negative")
		printer.Error(err)
		return err
	}

	env, err := openJournal(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	today, err := resolveToday(env.cfg, todayFlag)
	if err != nil {
		printer.Error(err)
		return err
	}

	dates, err := env.journal.Dates()
	if err != nil {
		err = journalError(err)
		printer.Error(err)
		return err
	}

	result := streak.Compute(dates, today)

	if printer.IsJSON() {
		return printer.WriteJSON(streakResult{
			Today:         today,
			CurrentStreak: result.CurrentStreak,
			LongestStreak: result.LongestStreak,
			MissedCount:   len(result.MissedDays),
			MissedDays:    result.MissedDays,
		})
	}

	printHumanStreak(printer, today, result, missedShown)
	return nil
}

// printHumanStreak outputs the streak in human-readable format.
func printHumanStreak(printer *output.Printer, today civil.Date, result streak.Result, missedShown int) {
	printer.Section("Streak")
	printer.KeyValue("Today", today.String())
	printer.KeyValue("Current", formatDays(result.CurrentStreak))
	printer.KeyValue("Longest", formatDays(result.LongestStreak))
	printer.KeyValue("Missed", strconv.Itoa(len(result.MissedDays)))

	if missedShown == 0 || len(result.MissedDays) == 0 {
		return
	}

	printer.Section("Missed Days")
	shown := result.MissedDays[:min(missedShown, len(result.MissedDays))]
	for _, day := range shown {
		printer.Println("  " + day.In(time.UTC).Format("Mon 2006-01-02"))
	}
	if rest := len(result.MissedDays) - len(shown); rest > 0 {
		printer.Println(printer.Muted(fmt.Sprintf("  ... and %d more", rest)))
	}
}

// formatDays returns "1 day" or "N days".
func formatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return strconv.Itoa(n) + " days"
}
