package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	_ "modernc.org/sqlite"

	"github.com/gorewood/quill/internal/output"
)

// entriesQuery reads the journal app's entry table.
const entriesQuery = `SELECT EntryDate, Content, PrimaryMood, SecondaryMood1, SecondaryMood2,
	Tags, Category, CreatedAt, UpdatedAt
	FROM JournalEntry
	ORDER BY EntryDate DESC`

// .NET DateTime ticks are 100ns intervals since 0001-01-01.
const (
	ticksAtUnixEpoch = 621355968000000000
	ticksPerSecond   = 10_000_000
)

// sqliteTimeLayouts are the text timestamp formats accepted from the database.
var sqliteTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// SQLiteSource reads entries from the journal app's SQLite database.
// The database is opened read-only for each listing.
type SQLiteSource struct {
	path string
}

// NewSQLiteSource creates a source for the database file at path.
func NewSQLiteSource(path string) *SQLiteSource {
	return &SQLiteSource{path: path}
}

// Location implements Source.
func (s *SQLiteSource) Location() string {
	return s.path
}

// ListEntriesWithStats implements Source.
// Rows that cannot be decoded or fail validation are counted as parse errors
// and skipped.
func (s *SQLiteSource) ListEntriesWithStats() ([]*Entry, *ListStats, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, output.NewUserError("journal database not found: " + s.path)
		}
		return nil, nil, output.NewSystemErrorWithCause("failed to stat journal database", err)
	}

	db, err := sql.Open("sqlite", s.dsn())
	if err != nil {
		return nil, nil, output.NewSystemErrorWithCause("failed to open journal database", err)
	}
	defer db.Close() //nolint:errcheck // read-only handle

	rows, err := db.Query(entriesQuery)
	if err != nil {
		return nil, nil, output.NewSystemErrorWithCause("failed to query journal entries", err)
	}
	defer rows.Close() //nolint:errcheck // read-only rows

	stats := &ListStats{}
	var entries []*Entry
	for rows.Next() {
		stats.Total++
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			stats.Skipped++
			stats.ParseErrors++
			continue
		}
		entries = append(entries, entry)
		stats.Parsed++
	}
	if err := rows.Err(); err != nil {
		return nil, nil, output.NewSystemErrorWithCause("failed to read journal entries", err)
	}

	return entries, stats, nil
}

// dsn returns a read-only SQLite URI for the database path.
// The driver honors query parameters only on file: URIs.
func (s *SQLiteSource) dsn() string {
	return "file:" + (&url.URL{Path: s.path}).EscapedPath() + "?mode=ro"
}

// scanEntry converts one JournalEntry row.
// Rows missing content or a primary mood fail validation.
func scanEntry(rows *sql.Rows) (*Entry, error) {
	var (
		entryDate, createdAt, updatedAt                         any
		content, primary, secondary1, secondary2, tags, category sql.NullString
	)
	if err := rows.Scan(&entryDate, &content, &primary, &secondary1, &secondary2,
		&tags, &category, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("scanning row: %w", err)
	}

	day, err := decodeTime(entryDate)
	if err != nil {
		return nil, fmt.Errorf("entry date: %w", err)
	}
	if day.IsZero() {
		return nil, errors.New("entry date is empty")
	}
	created, err := decodeTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("created at: %w", err)
	}
	updated, err := decodeTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("updated at: %w", err)
	}

	entry := &Entry{
		Schema:      SchemaVersion,
		Date:        civil.DateOf(day),
		Content:     content.String,
		PrimaryMood: primary.String,
		Tags:        splitTags(tags.String),
		Category:    category.String,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}
	for _, mood := range []sql.NullString{secondary1, secondary2} {
		if mood.Valid && mood.String != "" {
			entry.SecondaryMoods = append(entry.SecondaryMoods, mood.String)
		}
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return entry, nil
}

// decodeTime converts a stored timestamp: .NET ticks, text, or a driver time.
// The wall clock is kept as-is in UTC.
func decodeTime(value any) (time.Time, error) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, nil
	case int64:
		return ticksToTime(v), nil
	case time.Time:
		return time.Date(v.Year(), v.Month(), v.Day(), v.Hour(), v.Minute(), v.Second(), v.Nanosecond(), time.UTC), nil
	case string:
		return parseTimeText(v)
	case []byte:
		return parseTimeText(string(v))
	default:
		return time.Time{}, fmt.Errorf("unsupported timestamp type %T", value)
	}
}

// ticksToTime converts .NET DateTime ticks to a UTC time.
func ticksToTime(ticks int64) time.Time {
	since := ticks - ticksAtUnixEpoch
	return time.Unix(since/ticksPerSecond, (since%ticksPerSecond)*100).UTC()
}

func parseTimeText(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, nil
	}
	for _, layout := range sqliteTimeLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return decodeTime(t)
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", text)
}

// splitTags splits a comma-separated tag list, dropping blanks.
func splitTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
