package export

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/gorewood/quill/internal/mdoc"
)

func TestTextRenderer_Plain(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{"heading", "## Morning", "Morning"},
		{"heading with inline styles", "## **Big** `day` _out_", "Big day out"},
		{"paragraph markers removed", "a **b** *c* `d`", "a b c d"},
		{"list", "- one\n- **two**", "  • one\n  • two"},
		{"rule", "---", strings.Repeat("─", 10)},
		{"blank lines kept", "a\n\nb", "a\n\nb"},
		{"empty", "", ""},
	}

	renderer := NewTextRenderer(false).WithRuleWidth(10)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderer.RenderDocument(mdoc.Render(tt.markdown)); got != tt.want {
				t.Errorf("RenderDocument(%q) = %q, want %q", tt.markdown, got, tt.want)
			}
		})
	}
}

func TestTextRenderer_MoodBadges_Plain(t *testing.T) {
	got := NewTextRenderer(false).MoodBadges([]string{"Happy", "Tired"})
	if got != "[Happy] [Tired]" {
		t.Errorf("MoodBadges() = %q", got)
	}
}

func TestTextRenderer_RenderEntry_Plain(t *testing.T) {
	got := NewTextRenderer(false).RenderEntry(BuildDocument(testEntry()))

	wantPrefix := "Thursday, January 15, 2026\n" +
		"[Happy] [Calm] [Tired]\n" +
		"Personal  #family  #outdoors\n" +
		"\nHike\n"
	if !strings.HasPrefix(got, wantPrefix) {
		t.Errorf("RenderEntry() =\n%s\nwant prefix\n%s", got, wantPrefix)
	}
	if !strings.HasSuffix(got, "Tired but happy.\n") {
		t.Errorf("RenderEntry() should end with the last paragraph, got:\n%s", got)
	}
}

func TestTextRenderer_RenderEntry_MinimalHeader(t *testing.T) {
	entry := minimalEntry()
	entry.PrimaryMood = ""

	got := NewTextRenderer(false).RenderEntry(BuildDocument(entry))
	want := "Wednesday, January 14, 2026\n\nQuiet day.\n"
	if got != want {
		t.Errorf("RenderEntry() = %q, want %q", got, want)
	}
}

func TestTextRenderer_ColorKeepsText(t *testing.T) {
	got := NewTextRenderer(true).RenderSpans(mdoc.ParseInline("plain **bold** `code`"))
	for _, part := range []string{"plain ", "bold", "code"} {
		if !strings.Contains(got, part) {
			t.Errorf("RenderSpans() = %q, missing %q", got, part)
		}
	}
}

func TestTextRenderer_HeadingKeepsInlineStyles(t *testing.T) {
	r := NewTextRenderer(true)
	heading := r.styles.headings[0]

	style := r.spanStyle(heading, mdoc.Span{Text: "x", Italic: true, Code: true})
	if !style.GetBold() || !style.GetUnderline() {
		t.Error("span should keep the heading's bold underline")
	}
	if !style.GetItalic() {
		t.Error("span should add italic over the heading style")
	}
	if style.GetBackground() != r.styles.code.GetBackground() {
		t.Errorf("background = %v, want the code background", style.GetBackground())
	}
}

func TestTextRenderer_CodeCombinesWithEmphasis(t *testing.T) {
	r := NewTextRenderer(true)

	style := r.spanStyle(lipgloss.NewStyle(), mdoc.Span{Text: "x", Bold: true, Italic: true, Code: true})
	if !style.GetBold() || !style.GetItalic() {
		t.Error("code span should stay bold and italic")
	}
	if style.GetForeground() != r.styles.code.GetForeground() || style.GetBackground() != r.styles.code.GetBackground() {
		t.Error("code span should use the code colors")
	}

	plain := NewTextRenderer(false).spanStyle(lipgloss.NewStyle(), mdoc.Span{Text: "x", Bold: true, Code: true})
	if plain.GetBold() || plain.GetItalic() {
		t.Error("plain renderer should not style spans")
	}
}

func TestTextRenderer_RenderFooter(t *testing.T) {
	created := time.Date(2026, 1, 15, 21, 4, 5, 0, time.UTC)
	tests := []struct {
		name             string
		created, updated time.Time
		want             string
	}{
		{"unchanged", created, created, "Created 2026-01-15 21:04"},
		{"edited", created, created.Add(26 * time.Hour), "Created 2026-01-15 21:04\nUpdated 2026-01-16 23:04"},
		{"unknown", time.Time{}, time.Time{}, ""},
	}

	r := NewTextRenderer(false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.RenderFooter(EntryDocument{CreatedAt: tt.created, UpdatedAt: tt.updated})
			if got != tt.want {
				t.Errorf("RenderFooter() = %q, want %q", got, tt.want)
			}
		})
	}
}
