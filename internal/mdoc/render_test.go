package mdoc

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func plain(text string) Span {
	return Span{Text: text}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     []Block
	}{
		{
			name:     "empty string",
			markdown: "",
			want:     []Block{},
		},
		{
			name:     "whitespace only",
			markdown: "  \n\t\n",
			want:     []Block{},
		},
		{
			name:     "heading level 1",
			markdown: "# Title",
			want: []Block{
				{Kind: KindHeading, Level: 1, Spans: []Span{plain("Title")}},
			},
		},
		{
			name:     "heading level 6 with trailing spaces",
			markdown: "###### Deep   ",
			want: []Block{
				{Kind: KindHeading, Level: 6, Spans: []Span{plain("Deep")}},
			},
		},
		{
			name:     "heading with inline styles",
			markdown: "## A **bold** day",
			want: []Block{
				{Kind: KindHeading, Level: 2, Spans: []Span{
					plain("A "),
					{Text: "bold", Bold: true},
					plain(" day"),
				}},
			},
		},
		{
			name:     "seven hashes is a paragraph",
			markdown: "####### Too deep",
			want: []Block{
				{Kind: KindParagraph, Spans: []Span{plain("####### Too deep")}},
			},
		},
		{
			name:     "hash without space is a paragraph",
			markdown: "#hashtag",
			want: []Block{
				{Kind: KindParagraph, Spans: []Span{plain("#hashtag")}},
			},
		},
		{
			name:     "horizontal rule",
			markdown: "---",
			want:     []Block{{Kind: KindRule}},
		},
		{
			name:     "long horizontal rule",
			markdown: "----------",
			want:     []Block{{Kind: KindRule}},
		},
		{
			name:     "two hyphens is a paragraph",
			markdown: "--",
			want: []Block{
				{Kind: KindParagraph, Spans: []Span{plain("--")}},
			},
		},
		{
			name:     "list followed by paragraph",
			markdown: "- a\n- b\nc",
			want: []Block{
				{Kind: KindList, Items: [][]Span{{plain("a")}, {plain("b")}}},
				{Kind: KindParagraph, Spans: []Span{plain("c")}},
			},
		},
		{
			name:     "mixed bullet markers form one list",
			markdown: "- one\n* two\n+ three",
			want: []Block{
				{Kind: KindList, Items: [][]Span{{plain("one")}, {plain("two")}, {plain("three")}}},
			},
		},
		{
			name:     "bullet marker and extra whitespace are stripped",
			markdown: "-    spaced\n*\ttabbed",
			want: []Block{
				{Kind: KindList, Items: [][]Span{{plain("spaced")}, {plain("tabbed")}}},
			},
		},
		{
			name:     "list items are inline parsed",
			markdown: "- **done** with `go test`",
			want: []Block{
				{Kind: KindList, Items: [][]Span{{
					{Text: "done", Bold: true},
					plain(" with "),
					{Text: "go test", Code: true},
				}}},
			},
		},
		{
			name:     "blank line separates two lists",
			markdown: "- a\n\n- b",
			want: []Block{
				{Kind: KindList, Items: [][]Span{{plain("a")}}},
				{Kind: KindBlank},
				{Kind: KindList, Items: [][]Span{{plain("b")}}},
			},
		},
		{
			name:     "list stops at heading",
			markdown: "- a\n# Next",
			want: []Block{
				{Kind: KindList, Items: [][]Span{{plain("a")}}},
				{Kind: KindHeading, Level: 1, Spans: []Span{plain("Next")}},
			},
		},
		{
			name:     "bullet without space is a paragraph",
			markdown: "-dash",
			want: []Block{
				{Kind: KindParagraph, Spans: []Span{plain("-dash")}},
			},
		},
		{
			name:     "paragraph keeps leading spaces",
			markdown: "  indented",
			want: []Block{
				{Kind: KindParagraph, Spans: []Span{plain("  indented")}},
			},
		},
		{
			name:     "windows line endings",
			markdown: "# Day\r\n\r\nWent outside.",
			want: []Block{
				{Kind: KindHeading, Level: 1, Spans: []Span{plain("Day")}},
				{Kind: KindBlank},
				{Kind: KindParagraph, Spans: []Span{plain("Went outside.")}},
			},
		},
		{
			name:     "old mac line endings",
			markdown: "one\rtwo",
			want: []Block{
				{Kind: KindParagraph, Spans: []Span{plain("one")}},
				{Kind: KindParagraph, Spans: []Span{plain("two")}},
			},
		},
		{
			name:     "trailing newline yields a blank block",
			markdown: "text\n",
			want: []Block{
				{Kind: KindParagraph, Spans: []Span{plain("text")}},
				{Kind: KindBlank},
			},
		},
		{
			name:     "full entry",
			markdown: "# Monday\n\nFelt *calm* today.\n---\n- walked\n- read\nThe end.",
			want: []Block{
				{Kind: KindHeading, Level: 1, Spans: []Span{plain("Monday")}},
				{Kind: KindBlank},
				{Kind: KindParagraph, Spans: []Span{
					plain("Felt "),
					{Text: "calm", Italic: true},
					plain(" today."),
				}},
				{Kind: KindRule},
				{Kind: KindList, Items: [][]Span{{plain("walked")}, {plain("read")}}},
				{Kind: KindParagraph, Spans: []Span{plain("The end.")}},
			},
		},
		{
			name:     "heading after a no-break space",
			markdown: "#\u00a0Title",
			want: []Block{
				{Kind: KindHeading, Level: 1, Spans: []Span{plain("Title")}},
			},
		},
		{
			name:     "bullet after a no-break space",
			markdown: "-\u00a0x\n*\u2003y",
			want: []Block{
				{Kind: KindList, Items: [][]Span{{plain("x")}, {plain("y")}}},
			},
		},
		{
			name:     "list item with no text",
			markdown: "- **\n- b",
			want: []Block{
				{Kind: KindList, Items: [][]Span{{}, {plain("b")}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.markdown)
			if !reflect.DeepEqual(got.Blocks, tt.want) {
				t.Errorf("Render(%q)\n got: %+v\nwant: %+v", tt.markdown, got.Blocks, tt.want)
			}
		})
	}
}

func TestRender_Idempotent(t *testing.T) {
	markdown := "# Notes\n- **a** _b_\n`c` d\n---\n\nplain"
	first := Render(markdown)
	second := Render(markdown)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Render is not deterministic:\n first: %+v\nsecond: %+v", first, second)
	}
}

func TestRender_EmptyDocumentHasNonNilBlocks(t *testing.T) {
	doc := Render("")
	if doc.Blocks == nil {
		t.Error("Blocks should be an empty slice, got nil")
	}
	if !doc.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		maxChars int
		want     string
	}{
		{name: "short text untouched", markdown: "hello", maxChars: 10, want: "hello"},
		{name: "exact length untouched", markdown: "hello", maxChars: 5, want: "hello"},
		{name: "long text truncated", markdown: "hello world", maxChars: 5, want: "hello..."},
		{name: "counts characters not bytes", markdown: "héllo wörld", maxChars: 4, want: "héll..."},
		{name: "default length", markdown: strings.Repeat("a", 301), maxChars: 0, want: strings.Repeat("a", 300) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Preview(tt.markdown, tt.maxChars).PlainText()
			if got != tt.want {
				t.Errorf("Preview(%q, %d) = %q, want %q", tt.markdown, tt.maxChars, got, tt.want)
			}
		})
	}
}

func TestDocument_PlainText(t *testing.T) {
	doc := Render("# Title\n\n**bold** text\n---\n- one\n- `two`")
	want := "Title\n\nbold text\n---\n- one\n- two"
	if got := doc.PlainText(); got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
}

func TestRender_EmptyListItemEncodesAsArray(t *testing.T) {
	data, err := json.Marshal(Render("- **"))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"items":[[]]`) {
		t.Errorf("encoded document = %s, want an empty item array", data)
	}
}
