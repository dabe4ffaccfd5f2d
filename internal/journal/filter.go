package journal

import (
	"sort"
	"strings"

	"cloud.google.com/go/civil"
)

// FilterSince filters entries to those dated on or after the cutoff.
func FilterSince(entries []*Entry, cutoff civil.Date) []*Entry {
	var result []*Entry
	for _, entry := range entries {
		if !entry.Date.Before(cutoff) {
			result = append(result, entry)
		}
	}
	return result
}

// FilterUntil filters entries to those dated on or before the cutoff.
func FilterUntil(entries []*Entry, cutoff civil.Date) []*Entry {
	var result []*Entry
	for _, entry := range entries {
		if !entry.Date.After(cutoff) {
			result = append(result, entry)
		}
	}
	return result
}

// FilterByMood filters entries to those carrying the mood in any mood slot.
// An empty mood returns entries unchanged.
func FilterByMood(entries []*Entry, mood string) []*Entry {
	if mood == "" {
		return entries
	}

	var result []*Entry
	for _, entry := range entries {
		if entry.HasMood(mood) {
			result = append(result, entry)
		}
	}
	return result
}

// FilterByTags filters entries to those that have at least one matching tag.
// Uses OR logic: entries matching ANY of the specified tags are included.
func FilterByTags(entries []*Entry, tags []string) []*Entry {
	if len(tags) == 0 {
		return entries
	}

	var result []*Entry
	for _, entry := range entries {
		if entry.HasAnyTag(tags) {
			result = append(result, entry)
		}
	}
	return result
}

// Search filters entries whose content or category contains term, ignoring case.
// A blank term returns entries unchanged.
func Search(entries []*Entry, term string) []*Entry {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return entries
	}

	var result []*Entry
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Content), term) ||
			strings.Contains(strings.ToLower(entry.Category), term) {
			result = append(result, entry)
		}
	}
	return result
}

// SortByDateDesc sorts entries by date descending (most recent first).
func SortByDateDesc(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}

// DatesOf returns the date of each entry, in entry order.
func DatesOf(entries []*Entry) []civil.Date {
	dates := make([]civil.Date, 0, len(entries))
	for _, entry := range entries {
		dates = append(dates, entry.Date)
	}
	return dates
}
