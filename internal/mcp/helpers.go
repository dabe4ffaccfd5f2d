package mcp

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"github.com/gorewood/quill/internal/journal"
	"github.com/gorewood/quill/internal/mdoc"
)

// timeNow is replaced in tests.
var timeNow = time.Now

// EntryView is a journal entry with dates as strings.
type EntryView struct {
	Date           string   `json:"date"                      jsonschema:"entry date (YYYY-MM-DD)"`
	PrimaryMood    string   `json:"primary_mood,omitempty"    jsonschema:"primary mood"`
	MoodCategory   string   `json:"mood_category,omitempty"   jsonschema:"Positive, Neutral, Negative or Unknown"`
	SecondaryMoods []string `json:"secondary_moods,omitempty" jsonschema:"up to two secondary moods"`
	Tags           []string `json:"tags,omitempty"            jsonschema:"entry tags"`
	Category       string   `json:"category,omitempty"        jsonschema:"entry category"`
	Content        string   `json:"content,omitempty"         jsonschema:"full markdown content"`
	Preview        string   `json:"preview,omitempty"         jsonschema:"plain-text preview of the content"`
	CreatedAt      string   `json:"created_at,omitempty"      jsonschema:"creation timestamp (RFC 3339)"`
	UpdatedAt      string   `json:"updated_at,omitempty"      jsonschema:"last update timestamp (RFC 3339)"`
}

// toEntryView converts an entry. Full views carry the content; others
// carry a preview of previewChars characters.
func toEntryView(entry *journal.Entry, full bool, previewChars int) EntryView {
	view := EntryView{
		Date:           entry.Date.String(),
		PrimaryMood:    entry.PrimaryMood,
		SecondaryMoods: entry.SecondaryMoods,
		Tags:           entry.Tags,
		Category:       entry.Category,
		CreatedAt:      formatTime(entry.CreatedAt),
		UpdatedAt:      formatTime(entry.UpdatedAt),
	}
	if entry.PrimaryMood != "" {
		view.MoodCategory = string(journal.MoodCategoryOf(entry.PrimaryMood))
	}
	if full {
		view.Content = entry.Content
	} else {
		view.Preview = mdoc.Preview(entry.Content, previewChars).PlainText()
	}
	return view
}

func toEntryViews(entries []*journal.Entry, full bool, previewChars int) []EntryView {
	views := make([]EntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, toEntryView(entry, full, previewChars))
	}
	return views
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// dateStrings formats dates as YYYY-MM-DD.
func dateStrings(dates []civil.Date) []string {
	result := make([]string, 0, len(dates))
	for _, date := range dates {
		result = append(result, date.String())
	}
	return result
}

// optionalDate formats a possibly nil date.
func optionalDate(date *civil.Date) string {
	if date == nil {
		return ""
	}
	return date.String()
}

// parseBound parses a since/until input, naming the field on error.
func parseBound(field, value string, today civil.Date) (civil.Date, error) {
	if value == "" {
		return civil.Date{}, nil
	}
	date, err := journal.ParseDateBound(value, today)
	if err != nil {
		return civil.Date{}, fmt.Errorf("invalid %s value: %w", field, err)
	}
	return date, nil
}
