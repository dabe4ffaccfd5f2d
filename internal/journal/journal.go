package journal

import (
	"errors"

	"cloud.google.com/go/civil"

	"github.com/gorewood/quill/internal/output"
)

// ErrNoEntries is returned when the journal has no entries.
var ErrNoEntries = errors.New("no journal entries found")

// ListStats contains statistics about listing entries.
type ListStats struct {
	Total       int // Total files or rows found
	Parsed      int // Successfully read as journal entries
	Skipped     int // Skipped (not journal entries or parse errors)
	NotJournal  int // Specifically: valid JSON but wrong schema
	ParseErrors int // Unreadable files or rows
}

// Source is a read-only provider of journal entries.
type Source interface {
	// ListEntriesWithStats returns every readable entry plus listing statistics.
	ListEntriesWithStats() ([]*Entry, *ListStats, error)
	// Location describes where entries come from (directory or database path).
	Location() string
}

// Journal provides read access and queries over a Source.
type Journal struct {
	source Source
}

// New creates a Journal over the given source.
// A nil source behaves as an empty journal.
func New(source Source) *Journal {
	return &Journal{source: source}
}

// Location returns the source location, or "" for an empty journal.
func (j *Journal) Location() string {
	if j.source == nil {
		return ""
	}
	return j.source.Location()
}

// ListEntries returns all entries in the journal.
// Entries that cannot be read are skipped.
func (j *Journal) ListEntries() ([]*Entry, error) {
	entries, _, err := j.ListEntriesWithStats()
	return entries, err
}

// ListEntriesWithStats returns all entries plus statistics about skipped items.
func (j *Journal) ListEntriesWithStats() ([]*Entry, *ListStats, error) {
	if j.source == nil {
		return nil, &ListStats{}, nil
	}
	return j.source.ListEntriesWithStats()
}

// GetEntryByDate returns the entry for a date.
// Returns a user error (exit code 1) if there is none.
func (j *Journal) GetEntryByDate(date civil.Date) (*Entry, error) {
	if files, ok := j.source.(*FileStorage); ok {
		return files.ReadEntry(date)
	}

	entries, err := j.ListEntries()
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.Date == date {
			return entry, nil
		}
	}
	return nil, output.NewUserError("no entry for " + date.String())
}

// GetLatestEntry returns the entry with the most recent date.
// Returns ErrNoEntries if the journal is empty.
func (j *Journal) GetLatestEntry() (*Entry, error) {
	entries, err := j.ListEntries()
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	latest := entries[0]
	for _, entry := range entries[1:] {
		if entry.Date.After(latest.Date) {
			latest = entry
		}
	}

	return latest, nil
}

// GetLastNEntries returns the N most recent entries, newest first.
// If fewer than N exist, all entries are returned.
func (j *Journal) GetLastNEntries(count int) ([]*Entry, error) {
	entries, err := j.ListEntries()
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return []*Entry{}, nil
	}

	SortByDateDesc(entries)

	if count >= len(entries) {
		return entries, nil
	}
	return entries[:count], nil
}

// Dates returns the date of every entry in the journal.
func (j *Journal) Dates() ([]civil.Date, error) {
	entries, err := j.ListEntries()
	if err != nil {
		return nil, err
	}
	return DatesOf(entries), nil
}

// Stats returns summary statistics for the whole journal.
func (j *Journal) Stats() (*Stats, error) {
	entries, err := j.ListEntries()
	if err != nil {
		return nil, err
	}
	return ComputeStats(entries), nil
}
