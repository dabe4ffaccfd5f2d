// Package journal provides the entry schema, validation, sources, and queries for the quill journal.
package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// SchemaVersion is the current schema version for journal entries.
const SchemaVersion = "quill.entry/v1"

// schemaPrefix identifies any version of the quill entry schema.
const schemaPrefix = "quill.entry/"

// MaxSecondaryMoods is the number of secondary moods an entry may carry.
const MaxSecondaryMoods = 2

// ErrNotJournalEntry is returned when JSON data parses but is not a quill entry.
var ErrNotJournalEntry = errors.New("not a quill journal entry")

// Entry is one day's journal entry.
type Entry struct {
	Schema         string     `json:"schema"`
	Date           civil.Date `json:"date"`
	Content        string     `json:"content"`
	PrimaryMood    string     `json:"primary_mood"`
	SecondaryMoods []string   `json:"secondary_moods,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	Category       string     `json:"category,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ValidationError is returned when entry validation fails.
type ValidationError struct {
	Fields  []string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

// Validate checks that all required fields are present.
// Returns a ValidationError listing the offending fields.
func (e *Entry) Validate() error {
	var missing []string
	if e.Schema == "" {
		missing = append(missing, "schema")
	}
	if e.Date.IsZero() {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(e.Content) == "" {
		missing = append(missing, "content")
	}
	if strings.TrimSpace(e.PrimaryMood) == "" {
		missing = append(missing, "primary_mood")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing, Message: "missing required fields"}
	}

	if !e.Date.IsValid() {
		return &ValidationError{Fields: []string{"date"}, Message: "invalid calendar date"}
	}
	if len(e.SecondaryMoods) > MaxSecondaryMoods {
		return &ValidationError{
			Fields:  []string{"secondary_moods"},
			Message: fmt.Sprintf("at most %d secondary moods allowed", MaxSecondaryMoods),
		}
	}
	return nil
}

// Moods returns the primary mood followed by any non-empty secondary moods.
func (e *Entry) Moods() []string {
	moods := make([]string, 0, 1+len(e.SecondaryMoods))
	if e.PrimaryMood != "" {
		moods = append(moods, e.PrimaryMood)
	}
	for _, mood := range e.SecondaryMoods {
		if mood != "" {
			moods = append(moods, mood)
		}
	}
	return moods
}

// HasMood reports whether mood is the primary or a secondary mood (case-insensitive).
func (e *Entry) HasMood(mood string) bool {
	for _, m := range e.Moods() {
		if strings.EqualFold(m, mood) {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the entry has any of the given tags.
func (e *Entry) HasAnyTag(tags []string) bool {
	for _, tag := range e.Tags {
		if slices.Contains(tags, tag) {
			return true
		}
	}
	return false
}

// FileName returns the file name used for the entry: YYYY-MM-DD with the given extension.
func (e *Entry) FileName(ext string) string {
	return e.Date.String() + ext
}

// ToJSON serializes the entry in the on-disk file format (2-space indent).
func (e *Entry) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing entry to JSON: %w", err)
	}
	return data, nil
}

// FromJSON deserializes an entry from JSON.
// Returns ErrNotJournalEntry if the data lacks a quill entry schema.
func FromJSON(data []byte) (*Entry, error) {
	if len(data) == 0 {
		return nil, errors.New("empty JSON data")
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("parsing entry JSON: %w", err)
	}

	if !strings.HasPrefix(entry.Schema, schemaPrefix) {
		return nil, fmt.Errorf("%w: schema %q", ErrNotJournalEntry, entry.Schema)
	}

	return &entry, nil
}
