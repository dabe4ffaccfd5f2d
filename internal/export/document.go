package export

import (
	"encoding/json"
	"time"

	"cloud.google.com/go/civil"

	"github.com/gorewood/quill/internal/journal"
	"github.com/gorewood/quill/internal/mdoc"
	"github.com/gorewood/quill/internal/output"
)

// EntryDocument is an entry with its body rendered to blocks.
type EntryDocument struct {
	Date           civil.Date    `json:"date"`
	Title          string        `json:"title"`
	PrimaryMood    string        `json:"primary_mood,omitempty"`
	MoodCategory   string        `json:"mood_category,omitempty"`
	MoodColor      string        `json:"mood_color,omitempty"`
	SecondaryMoods []string      `json:"secondary_moods,omitempty"`
	Tags           []string      `json:"tags,omitempty"`
	Category       string        `json:"category,omitempty"`
	Body           mdoc.Document `json:"body"`
	CreatedAt      time.Time     `json:"created_at,omitzero"`
	UpdatedAt      time.Time     `json:"updated_at,omitzero"`
}

// BuildDocument renders the entry content and collects display metadata.
func BuildDocument(entry *journal.Entry) EntryDocument {
	doc := EntryDocument{
		Date:           entry.Date,
		Title:          Title(entry),
		PrimaryMood:    entry.PrimaryMood,
		SecondaryMoods: entry.SecondaryMoods,
		Tags:           entry.Tags,
		Category:       entry.Category,
		Body:           mdoc.Render(entry.Content),
		CreatedAt:      entry.CreatedAt,
		UpdatedAt:      entry.UpdatedAt,
	}
	if entry.PrimaryMood != "" {
		doc.MoodCategory = string(journal.MoodCategoryOf(entry.PrimaryMood))
		doc.MoodColor = journal.MoodColor(entry.PrimaryMood)
	}
	return doc
}

// BuildDocuments renders every entry, in order.
func BuildDocuments(entries []*journal.Entry) []EntryDocument {
	docs := make([]EntryDocument, 0, len(entries))
	for _, entry := range entries {
		docs = append(docs, BuildDocument(entry))
	}
	return docs
}

// FormatDocuments outputs the rendered entries as a JSON array.
func FormatDocuments(printer *output.Printer, entries []*journal.Entry) error {
	return printer.WriteJSON(BuildDocuments(entries))
}

// WriteDocumentFiles writes each rendered entry to <dir>/<date>.doc.json.
func WriteDocumentFiles(entries []*journal.Entry, dir string, opts WriteOptions) ([]string, error) {
	return writeEntryFiles(entries, dir, ExtDocument, opts, func(entry *journal.Entry) ([]byte, error) {
		return json.MarshalIndent(BuildDocument(entry), "", "  ")
	})
}
