// Package streak derives journaling streaks and gaps from a set of entry dates.
//
// All functions are pure: they read their arguments, allocate their results
// and keep no package state, so they can be called from any goroutine.
package streak

import (
	"slices"

	"cloud.google.com/go/civil"
)

// Result holds the streak statistics for a set of entry dates.
type Result struct {
	CurrentStreak int          `json:"current_streak"`
	LongestStreak int          `json:"longest_streak"`
	MissedDays    []civil.Date `json:"missed_days"`
}

// Compute returns the current streak ending at today, the longest run of
// consecutive days, and every day without an entry between the earliest
// entry date and today inclusive (most recent first).
//
// Duplicate dates are ignored. An empty input yields a zero Result with an
// empty, non-nil MissedDays.
func Compute(dates []civil.Date, today civil.Date) Result {
	set := dateSet(dates)
	if len(set) == 0 {
		return Result{MissedDays: []civil.Date{}}
	}

	sorted := sortedDates(set)

	return Result{
		CurrentStreak: currentStreak(set, today),
		LongestStreak: longestStreak(sorted),
		MissedDays:    missedDays(set, sorted[0], today),
	}
}

// dateSet deduplicates dates.
func dateSet(dates []civil.Date) map[civil.Date]struct{} {
	set := make(map[civil.Date]struct{}, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

// sortedDates returns the distinct dates in ascending order.
func sortedDates(set map[civil.Date]struct{}) []civil.Date {
	sorted := make([]civil.Date, 0, len(set))
	for d := range set {
		sorted = append(sorted, d)
	}
	slices.SortFunc(sorted, compareDates)
	return sorted
}

// currentStreak walks backward from today while each day has an entry.
func currentStreak(set map[civil.Date]struct{}, today civil.Date) int {
	count := 0
	for day := today; ; day = day.AddDays(-1) {
		if _, ok := set[day]; !ok {
			return count
		}
		count++
	}
}

// longestStreak scans ascending distinct dates for the longest consecutive run.
func longestStreak(sorted []civil.Date) int {
	if len(sorted) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i].DaysSince(sorted[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return longest
}

// missedDays collects days in [earliest, today] without an entry, newest first.
func missedDays(set map[civil.Date]struct{}, earliest, today civil.Date) []civil.Date {
	missed := []civil.Date{}
	for day := today; !day.Before(earliest); day = day.AddDays(-1) {
		if _, ok := set[day]; !ok {
			missed = append(missed, day)
		}
	}
	return missed
}

// compareDates orders dates chronologically.
func compareDates(a, b civil.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
