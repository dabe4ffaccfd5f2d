package journal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// relativeRegex matches relative bounds like "7d", "2w", "1m", "48h".
var relativeRegex = regexp.MustCompile(`^(\d+)([hdwm])$`)

// Query selects entries. Zero-valued fields do not filter.
type Query struct {
	// Last keeps only the N most recent matches.
	Last  int
	Since civil.Date
	Until civil.Date
	// Mood matches the primary or a secondary mood, ignoring case.
	Mood string
	// Tags match with OR logic.
	Tags []string
	// Search is a case-insensitive substring of content or category.
	Search string
}

// HasSelector reports whether the query bounds the result by count or date.
func (q Query) HasSelector() bool {
	return q.Last > 0 || !q.Since.IsZero() || !q.Until.IsZero()
}

// Apply filters entries and returns the matches newest first.
// The input slice is not modified.
func (q Query) Apply(entries []*Entry) []*Entry {
	result := make([]*Entry, 0, len(entries))
	for _, entry := range entries {
		if !q.Since.IsZero() && entry.Date.Before(q.Since) {
			continue
		}
		if !q.Until.IsZero() && entry.Date.After(q.Until) {
			continue
		}
		result = append(result, entry)
	}

	result = FilterByMood(result, q.Mood)
	result = FilterByTags(result, q.Tags)
	result = Search(result, q.Search)
	SortByDateDesc(result)

	if q.Last > 0 && len(result) > q.Last {
		result = result[:q.Last]
	}
	return result
}

// Query lists the journal and applies q.
func (j *Journal) Query(q Query) ([]*Entry, error) {
	entries, err := j.ListEntries()
	if err != nil {
		return nil, err
	}
	return q.Apply(entries), nil
}

// ParseDateBound parses a --since/--until value relative to today.
// Accepts:
//   - Dates: "2026-01-17"
//   - Keywords: "today", "yesterday"
//   - Relative: "48h", "7d", "2w", "1m" (hours round down to whole days)
func ParseDateBound(value string, today civil.Date) (civil.Date, error) {
	value = strings.TrimSpace(strings.ToLower(value))

	switch value {
	case "today":
		return today, nil
	case "yesterday":
		return today.AddDays(-1), nil
	}

	if matches := relativeRegex.FindStringSubmatch(value); len(matches) == 3 {
		num, err := strconv.Atoi(matches[1])
		if err != nil || num <= 0 {
			return civil.Date{}, fmt.Errorf("invalid relative date %q", value)
		}
		switch matches[2] {
		case "h":
			return today.AddDays(-num / 24), nil
		case "d":
			return today.AddDays(-num), nil
		case "w":
			return today.AddDays(-7 * num), nil
		default:
			return civil.DateOf(today.In(time.UTC).AddDate(0, -num, 0)), nil
		}
	}

	date, err := civil.ParseDate(value)
	if err != nil {
		return civil.Date{}, fmt.Errorf("invalid date %q; use YYYY-MM-DD, today, yesterday or a relative value (7d, 2w, 1m)", value)
	}
	return date, nil
}
