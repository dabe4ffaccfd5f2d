package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cloud.google.com/go/civil"
)

// date builds a civil date for tests.
func date(year int, month time.Month, day int) civil.Date {
	return civil.Date{Year: year, Month: month, Day: day}
}

// makeTestEntry creates a valid entry for the given date.
func makeTestEntry(day civil.Date, mood string, content string) *Entry {
	created := day.In(time.UTC).Add(21 * time.Hour)
	return &Entry{
		Schema:      SchemaVersion,
		Date:        day,
		Content:     content,
		PrimaryMood: mood,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

// writeTestEntryFile writes an entry at its YYYY/MM/YYYY-MM-DD.json location.
func writeTestEntryFile(t *testing.T, dir string, entry *Entry) {
	t.Helper()
	data, err := entry.ToJSON()
	if err != nil {
		t.Fatalf("failed to serialize test entry: %v", err)
	}
	writeRawFile(t, filepath.Join(dir, EntryDateDir(entry.Date)), entry.FileName(".json"), data)
}

func writeRawFile(t *testing.T, dir, name string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create test dir %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), content, 0o600); err != nil {
		t.Fatalf("failed to write test file %s: %v", name, err)
	}
}

// entryDates returns the dates of entries for comparison.
func entryDates(entries []*Entry) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Date.String())
	}
	return out
}
