package mcp

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/quill/internal/journal"
	"github.com/gorewood/quill/internal/streak"
)

// --- Streak tool ---

// StreakInput is the input for the streak tool.
type StreakInput struct {
	Today string `json:"today,omitempty" jsonschema:"override today's date (YYYY-MM-DD)"`
}

// StreakOutput is the output for the streak tool.
type StreakOutput struct {
	Today         string   `json:"today"          jsonschema:"the date the streak was computed for"`
	CurrentStreak int      `json:"current_streak" jsonschema:"consecutive days with entries ending today"`
	LongestStreak int      `json:"longest_streak" jsonschema:"longest run of consecutive days"`
	MissedDays    []string `json:"missed_days"    jsonschema:"days without entries between the first entry and today, newest first"`
}

func handleStreak(env *toolEnv) mcp.ToolHandlerFor[StreakInput, StreakOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input StreakInput) (*mcp.CallToolResult, StreakOutput, error) {
		today := env.today()
		if input.Today != "" {
			parsed, err := civil.ParseDate(input.Today)
			if err != nil {
				return nil, StreakOutput{}, fmt.Errorf("invalid today value %q: use YYYY-MM-DD", input.Today)
			}
			today = parsed
		}

		dates, err := env.journal.Dates()
		if err != nil {
			return nil, StreakOutput{}, fmt.Errorf("listing entries: %w", err)
		}

		result := streak.Compute(dates, today)
		return nil, StreakOutput{
			Today:         today.String(),
			CurrentStreak: result.CurrentStreak,
			LongestStreak: result.LongestStreak,
			MissedDays:    dateStrings(result.MissedDays),
		}, nil
	}
}

// --- Stats tool ---

// StatsInput is the input for the stats tool (no parameters needed).
type StatsInput struct{}

// MoodCountView is one row of the mood distribution.
type MoodCountView struct {
	Mood     string `json:"mood"     jsonschema:"primary mood"`
	Category string `json:"category" jsonschema:"mood category"`
	Count    int    `json:"count"    jsonschema:"number of entries"`
}

// StatsOutput is the output for the stats tool.
type StatsOutput struct {
	Location         string          `json:"location"               jsonschema:"journal directory or database path"`
	TotalEntries     int             `json:"total_entries"          jsonschema:"number of readable entries"`
	Skipped          int             `json:"skipped"                jsonschema:"files or rows that could not be read"`
	MoodDistribution []MoodCountView `json:"mood_distribution"      jsonschema:"entries per primary mood, most frequent first"`
	OldestEntry      string          `json:"oldest_entry,omitempty" jsonschema:"date of the oldest entry"`
	NewestEntry      string          `json:"newest_entry,omitempty" jsonschema:"date of the newest entry"`
}

func handleStats(env *toolEnv) mcp.ToolHandlerFor[StatsInput, StatsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ StatsInput) (*mcp.CallToolResult, StatsOutput, error) {
		entries, listStats, err := env.journal.ListEntriesWithStats()
		if err != nil {
			return nil, StatsOutput{}, fmt.Errorf("listing entries: %w", err)
		}

		stats := journal.ComputeStats(entries)
		distribution := make([]MoodCountView, 0, len(stats.MoodDistribution))
		for _, mc := range stats.MoodDistribution {
			distribution = append(distribution, MoodCountView{
				Mood:     mc.Mood,
				Category: string(journal.MoodCategoryOf(mc.Mood)),
				Count:    mc.Count,
			})
		}

		out := StatsOutput{
			Location:         env.journal.Location(),
			TotalEntries:     stats.TotalEntries,
			MoodDistribution: distribution,
			OldestEntry:      optionalDate(stats.OldestEntry),
			NewestEntry:      optionalDate(stats.NewestEntry),
		}
		if listStats != nil {
			out.Skipped = listStats.Skipped
		}
		return nil, out, nil
	}
}
