package mdoc

import "strings"

// BlockKind identifies the type of a document block.
type BlockKind string

// Block kinds produced by Render.
const (
	KindHeading   BlockKind = "heading"
	KindRule      BlockKind = "rule"
	KindList      BlockKind = "list"
	KindParagraph BlockKind = "paragraph"
	KindBlank     BlockKind = "blank"
)

// Span is a run of text sharing one combination of styles.
type Span struct {
	Text   string `json:"text"`
	Bold   bool   `json:"bold"`
	Italic bool   `json:"italic"`
	Code   bool   `json:"code"`
}

// Block is a document-level unit.
//
// Level is set for headings, Spans for headings and paragraphs, Items for
// lists. Rules and blanks carry no content.
type Block struct {
	Kind  BlockKind `json:"kind"`
	Level int       `json:"level,omitempty"`
	Spans []Span    `json:"spans,omitempty"`
	Items [][]Span  `json:"items,omitempty"`
}

// Document is an ordered sequence of blocks.
type Document struct {
	Blocks []Block `json:"blocks"`
}

// IsEmpty reports whether the document has no blocks.
func (d Document) IsEmpty() bool {
	return len(d.Blocks) == 0
}

// PlainText returns the document text without styling.
// Each block becomes one line; list items become "- item" lines and rules "---".
func (d Document) PlainText() string {
	lines := make([]string, 0, len(d.Blocks))
	for _, block := range d.Blocks {
		switch block.Kind {
		case KindHeading, KindParagraph:
			lines = append(lines, SpanText(block.Spans))
		case KindList:
			for _, item := range block.Items {
				lines = append(lines, "- "+SpanText(item))
			}
		case KindRule:
			lines = append(lines, "---")
		case KindBlank:
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n")
}

// SpanText concatenates the text of spans.
func SpanText(spans []Span) string {
	var builder strings.Builder
	for _, span := range spans {
		builder.WriteString(span.Text)
	}
	return builder.String()
}
