package journal

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/gorewood/quill/internal/output"
)

func TestFileStorage_ReadEntry(t *testing.T) {
	dir := t.TempDir()
	storage := NewFileStorage(dir)
	entry := makeTestEntry(date(2026, 1, 15), "Happy", "# Good day\n\nWent **outside**.")
	writeTestEntryFile(t, dir, entry)

	got, err := storage.ReadEntry(date(2026, 1, 15))
	if err != nil {
		t.Fatalf("ReadEntry() error = %v", err)
	}
	if got.Content != entry.Content {
		t.Errorf("Content = %q, want %q", got.Content, entry.Content)
	}
	if got.PrimaryMood != "Happy" {
		t.Errorf("PrimaryMood = %q, want Happy", got.PrimaryMood)
	}
}

func TestFileStorage_ReadEntry_Missing(t *testing.T) {
	storage := NewFileStorage(t.TempDir())

	_, err := storage.ReadEntry(date(2026, 1, 15))
	if err == nil {
		t.Fatal("ReadEntry() expected error for missing entry")
	}

	var exitErr *output.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("ReadEntry() error type = %T, want *output.ExitError", err)
	}
	if exitErr.Code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", exitErr.Code, output.ExitUserError)
	}
}

func TestFileStorage_ReadEntry_ForeignSchema(t *testing.T) {
	dir := t.TempDir()
	writeRawFile(t, filepath.Join(dir, "2026", "01"), "2026-01-15.json",
		[]byte(`{"schema":"devlog.entry/v1","date":"2026-01-15"}`))

	_, err := NewFileStorage(dir).ReadEntry(date(2026, 1, 15))
	if !errors.Is(err, ErrNotJournalEntry) {
		t.Errorf("ReadEntry() error = %v, want ErrNotJournalEntry", err)
	}
}

func TestFileStorage_ListEntriesWithStats(t *testing.T) {
	dir := t.TempDir()
	writeTestEntryFile(t, dir, makeTestEntry(date(2025, 12, 31), "Calm", "last day of the year"))
	writeTestEntryFile(t, dir, makeTestEntry(date(2026, 1, 1), "Hopeful", "new year"))
	writeTestEntryFile(t, dir, makeTestEntry(date(2026, 1, 2), "Tired", "back to work"))

	month := filepath.Join(dir, "2026", "01")
	writeRawFile(t, month, "2026-01-03.json", []byte("{not json"))
	writeRawFile(t, month, "2026-01-04.json", []byte(`{"schema":"other/v1"}`))
	writeRawFile(t, month, ".2026-01-05.json", []byte(`{}`))
	writeRawFile(t, month, "notes.txt", []byte("ignored"))
	writeRawFile(t, dir, "README.md", []byte("ignored"))

	entries, stats, err := NewFileStorage(dir).ListEntriesWithStats()
	if err != nil {
		t.Fatalf("ListEntriesWithStats() error = %v", err)
	}

	got := entryDates(entries)
	slices.Sort(got)
	want := []string{"2025-12-31", "2026-01-01", "2026-01-02"}
	if !slices.Equal(got, want) {
		t.Errorf("entries = %v, want %v", got, want)
	}

	wantStats := ListStats{Total: 5, Parsed: 3, Skipped: 2, NotJournal: 1, ParseErrors: 1}
	if *stats != wantStats {
		t.Errorf("stats = %+v, want %+v", *stats, wantStats)
	}
}

func TestFileStorage_ListEntries_MissingDir(t *testing.T) {
	storage := NewFileStorage(filepath.Join(t.TempDir(), "does-not-exist"))
	if storage.DirExists() {
		t.Fatal("DirExists() = true for missing dir")
	}

	entries, stats, err := storage.ListEntriesWithStats()
	if err != nil {
		t.Fatalf("ListEntriesWithStats() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
	if stats.Total != 0 {
		t.Errorf("stats.Total = %d, want 0", stats.Total)
	}
}

func TestFileStorage_SkipsInvalidEntries(t *testing.T) {
	tests := []struct {
		name   string
		modify func(e *Entry)
	}{
		{"blank content", func(e *Entry) { e.Content = "  \n" }},
		{"blank mood", func(e *Entry) { e.PrimaryMood = "" }},
		{"impossible date", func(e *Entry) { e.Date = date(2026, 2, 30) }},
		{"three secondary moods", func(e *Entry) { e.SecondaryMoods = []string{"Calm", "Tired", "Sad"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeTestEntryFile(t, dir, makeTestEntry(date(2026, 3, 7), "Calm", "kept"))
			bad := makeTestEntry(date(2026, 3, 8), "Focused", "deep work")
			tt.modify(bad)
			data, err := bad.ToJSON()
			if err != nil {
				t.Fatalf("failed to serialize entry: %v", err)
			}
			writeRawFile(t, filepath.Join(dir, "2026", "03"), "2026-03-08.json", data)

			storage := NewFileStorage(dir)
			entries, stats, err := storage.ListEntriesWithStats()
			if err != nil {
				t.Fatalf("ListEntriesWithStats() error = %v", err)
			}
			if got := entryDates(entries); !slices.Equal(got, []string{"2026-03-07"}) {
				t.Errorf("entries = %v, want only the valid entry", got)
			}
			wantStats := ListStats{Total: 2, Parsed: 1, Skipped: 1, ParseErrors: 1}
			if *stats != wantStats {
				t.Errorf("stats = %+v, want %+v", *stats, wantStats)
			}

			if _, err := storage.ReadEntry(date(2026, 3, 8)); output.GetExitCode(err) != output.ExitUserError {
				t.Errorf("ReadEntry() error = %v, want user error", err)
			}
		})
	}
}

func TestEntryDateDir(t *testing.T) {
	got := EntryDateDir(date(987, 4, 1))
	want := filepath.Join("0987", "04")
	if got != want {
		t.Errorf("EntryDateDir() = %q, want %q", got, want)
	}
}
