package export

import (
	"github.com/gorewood/quill/internal/journal"
	"github.com/gorewood/quill/internal/output"
)

// FormatJSON outputs the entries as a JSON array. Nil prints [].
func FormatJSON(printer *output.Printer, entries []*journal.Entry) error {
	if entries == nil {
		entries = []*journal.Entry{}
	}
	return printer.WriteJSON(entries)
}

// WriteJSONFiles writes each entry to <dir>/<date>.json.
func WriteJSONFiles(entries []*journal.Entry, dir string, opts WriteOptions) ([]string, error) {
	return writeEntryFiles(entries, dir, ExtJSON, opts, (*journal.Entry).ToJSON)
}
