package journal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/gorewood/quill/internal/output"
)

// FileStorage reads journal entries from a directory of JSON files.
// Each entry lives at YYYY/MM/YYYY-MM-DD.json under the root directory.
// FileStorage never writes; entries are produced by the journal app.
type FileStorage struct {
	dir string
}

// NewFileStorage creates a FileStorage for the given directory.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

// Location implements Source.
func (fs *FileStorage) Location() string {
	return fs.dir
}

// DirExists returns true if the storage directory exists.
func (fs *FileStorage) DirExists() bool {
	info, err := os.Stat(fs.dir)
	return err == nil && info.IsDir()
}

// EntryDateDir returns the YYYY/MM relative directory for a date.
func EntryDateDir(date civil.Date) string {
	return filepath.Join(fmt.Sprintf("%04d", date.Year), fmt.Sprintf("%02d", int(date.Month)))
}

// entryPath returns the file path for the entry on a date.
func (fs *FileStorage) entryPath(date civil.Date) string {
	return filepath.Join(fs.dir, EntryDateDir(date), date.String()+".json")
}

// ReadEntry reads the entry for the given date.
// Returns a user error if no entry file exists for that date or the entry
// fails validation.
// Returns ErrNotJournalEntry if the file is valid JSON but not a quill entry.
func (fs *FileStorage) ReadEntry(date civil.Date) (*Entry, error) {
	entry, err := readEntryFile(fs.entryPath(date))
	if errors.Is(err, os.ErrNotExist) {
		return nil, output.NewUserError("no entry for " + date.String())
	}
	return entry, err
}

// readEntryFile reads and parses one entry file.
// A missing file is reported with an error wrapping os.ErrNotExist.
func readEntryFile(path string) (*Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		return nil, output.NewSystemErrorWithCause("failed to read entry file: "+path, err)
	}

	entry, err := FromJSON(data)
	if err != nil {
		if errors.Is(err, ErrNotJournalEntry) {
			return nil, err
		}
		return nil, output.NewUserError("failed to parse entry " + filepath.Base(path) + ": " + err.Error())
	}
	if err := entry.Validate(); err != nil {
		return nil, output.NewUserError("invalid entry " + filepath.Base(path) + ": " + err.Error())
	}

	return entry, nil
}

// ListEntriesWithStats returns all entries plus statistics about skipped files.
// Only .json files are considered; directories, hidden files and other files
// are ignored. Returns empty results if the directory does not exist.
func (fs *FileStorage) ListEntriesWithStats() ([]*Entry, *ListStats, error) {
	stats := &ListStats{}
	var entries []*Entry

	err := filepath.WalkDir(fs.dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}

		stats.Total++
		entry, readErr := readEntryFile(path)
		if readErr != nil {
			stats.Skipped++
			if errors.Is(readErr, ErrNotJournalEntry) {
				stats.NotJournal++
			} else {
				stats.ParseErrors++
			}
			return nil
		}
		entries = append(entries, entry)
		stats.Parsed++
		return nil
	})
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ListStats{}, nil
		}
		return nil, nil, output.NewSystemErrorWithCause("failed to walk journal directory", err)
	}

	return entries, stats, nil
}
