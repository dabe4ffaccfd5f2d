package journal

import (
	"cmp"
	"slices"

	"cloud.google.com/go/civil"
)

// MoodCount is the number of entries with a given primary mood.
type MoodCount struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

// Stats summarizes a set of entries.
type Stats struct {
	TotalEntries     int         `json:"total_entries"`
	MoodDistribution []MoodCount `json:"mood_distribution"`
	OldestEntry      *civil.Date `json:"oldest_entry,omitempty"`
	NewestEntry      *civil.Date `json:"newest_entry,omitempty"`
}

// ComputeStats counts entries, groups them by primary mood and finds the
// oldest and newest dates. Entries without a primary mood count as "Unknown".
// The distribution is sorted by count descending, then mood name.
func ComputeStats(entries []*Entry) *Stats {
	stats := &Stats{
		TotalEntries:     len(entries),
		MoodDistribution: []MoodCount{},
	}

	counts := make(map[string]int)
	for _, entry := range entries {
		mood := entry.PrimaryMood
		if mood == "" {
			mood = string(MoodUnknown)
		}
		counts[mood]++

		date := entry.Date
		if stats.OldestEntry == nil || date.Before(*stats.OldestEntry) {
			stats.OldestEntry = &date
		}
		if stats.NewestEntry == nil || date.After(*stats.NewestEntry) {
			stats.NewestEntry = &date
		}
	}

	for mood, count := range counts {
		stats.MoodDistribution = append(stats.MoodDistribution, MoodCount{Mood: mood, Count: count})
	}
	slices.SortFunc(stats.MoodDistribution, func(a, b MoodCount) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Mood, b.Mood)
	})

	return stats
}
