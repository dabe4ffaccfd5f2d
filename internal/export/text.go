package export

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gorewood/quill/internal/journal"
	"github.com/gorewood/quill/internal/mdoc"
)

// DefaultRuleWidth is the length of a rendered horizontal rule.
const DefaultRuleWidth = 40

// TextRenderer renders documents as terminal text.
type TextRenderer struct {
	color     bool
	ruleWidth int
	styles    textStyles
}

type textStyles struct {
	headings [6]lipgloss.Style
	bold     lipgloss.Style
	italic   lipgloss.Style
	code     lipgloss.Style
	rule     lipgloss.Style
	bullet   lipgloss.Style
	meta     lipgloss.Style
}

// NewTextRenderer creates a renderer. Without color every style is plain.
func NewTextRenderer(color bool) *TextRenderer {
	r := &TextRenderer{color: color, ruleWidth: DefaultRuleWidth}
	plain := lipgloss.NewStyle()
	if !color {
		r.styles = textStyles{
			headings: [6]lipgloss.Style{plain, plain, plain, plain, plain, plain},
			bold:     plain, italic: plain, code: plain, rule: plain, bullet: plain, meta: plain,
		}
		return r
	}

	accent := lipgloss.Color("#667eea")
	r.styles = textStyles{
		headings: [6]lipgloss.Style{
			plain.Bold(true).Underline(true).Foreground(accent),
			plain.Bold(true).Foreground(accent),
			plain.Bold(true),
			plain.Bold(true),
			plain.Bold(true).Faint(true),
			plain.Bold(true).Faint(true),
		},
		bold:   plain.Bold(true),
		italic: plain.Italic(true),
		code:   plain.Foreground(lipgloss.Color("#f8f8f2")).Background(lipgloss.Color("#3a3a3a")),
		rule:   plain.Foreground(lipgloss.Color("8")),
		bullet: plain.Foreground(accent),
		meta:   plain.Faint(true),
	}
	return r
}

// WithRuleWidth sets the rule length. Returns the renderer for chaining.
func (r *TextRenderer) WithRuleWidth(width int) *TextRenderer {
	if width > 0 {
		r.ruleWidth = width
	}
	return r
}

// RenderDocument renders blocks one per line. Consecutive blocks are
// separated by newlines; blank blocks become empty lines.
func (r *TextRenderer) RenderDocument(doc mdoc.Document) string {
	lines := make([]string, 0, len(doc.Blocks))
	for _, block := range doc.Blocks {
		lines = append(lines, r.renderBlock(block))
	}
	return strings.Join(lines, "\n")
}

func (r *TextRenderer) renderBlock(block mdoc.Block) string {
	switch block.Kind {
	case mdoc.KindHeading:
		level := min(max(block.Level, 1), 6)
		return r.renderSpans(r.styles.headings[level-1], block.Spans)
	case mdoc.KindRule:
		return r.styles.rule.Render(strings.Repeat("─", r.ruleWidth))
	case mdoc.KindList:
		items := make([]string, 0, len(block.Items))
		for _, item := range block.Items {
			items = append(items, "  "+r.styles.bullet.Render("•")+" "+r.RenderSpans(item))
		}
		return strings.Join(items, "\n")
	case mdoc.KindParagraph:
		return r.RenderSpans(block.Spans)
	default:
		return ""
	}
}

// RenderSpans styles each span by its flags and concatenates them.
func (r *TextRenderer) RenderSpans(spans []mdoc.Span) string {
	return r.renderSpans(lipgloss.NewStyle(), spans)
}

func (r *TextRenderer) renderSpans(base lipgloss.Style, spans []mdoc.Span) string {
	var builder strings.Builder
	for _, span := range spans {
		builder.WriteString(r.spanStyle(base, span).Render(span.Text))
	}
	return builder.String()
}

// spanStyle layers the span's flags over base. Code colors combine with
// bold and italic.
func (r *TextRenderer) spanStyle(base lipgloss.Style, span mdoc.Span) lipgloss.Style {
	if !r.color {
		return base
	}
	style := base
	if span.Bold {
		style = style.Inherit(r.styles.bold)
	}
	if span.Italic {
		style = style.Inherit(r.styles.italic)
	}
	if span.Code {
		style = style.
			Foreground(r.styles.code.GetForeground()).
			Background(r.styles.code.GetBackground())
	}
	return style
}

// MoodBadges renders the primary and secondary moods as badges colored by
// category. Without color moods are bracketed.
func (r *TextRenderer) MoodBadges(moods []string) string {
	badges := make([]string, 0, len(moods))
	for _, mood := range moods {
		if !r.color {
			badges = append(badges, "["+mood+"]")
			continue
		}
		badges = append(badges, lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(journal.MoodColor(mood))).
			Padding(0, 1).
			Render(mood))
	}
	return strings.Join(badges, " ")
}

// footerTimeLayout formats the creation and update times.
const footerTimeLayout = "2006-01-02 15:04"

// RenderFooter renders the creation time, and the update time when it
// differs. Returns "" when the creation time is unknown.
func (r *TextRenderer) RenderFooter(doc EntryDocument) string {
	if doc.CreatedAt.IsZero() {
		return ""
	}
	lines := []string{r.styles.meta.Render("Created " + doc.CreatedAt.Format(footerTimeLayout))}
	if !doc.UpdatedAt.IsZero() && !doc.UpdatedAt.Equal(doc.CreatedAt) {
		lines = append(lines, r.styles.meta.Render("Updated "+doc.UpdatedAt.Format(footerTimeLayout)))
	}
	return strings.Join(lines, "\n")
}

// RenderEntry renders a header (title, mood badges, tags) followed by the body.
func (r *TextRenderer) RenderEntry(doc EntryDocument) string {
	var builder strings.Builder
	builder.WriteString(r.styles.headings[0].Render(doc.Title))
	builder.WriteString("\n")

	moods := make([]string, 0, 1+len(doc.SecondaryMoods))
	if doc.PrimaryMood != "" {
		moods = append(moods, doc.PrimaryMood)
	}
	moods = append(moods, doc.SecondaryMoods...)
	if len(moods) > 0 {
		builder.WriteString(r.MoodBadges(moods))
		builder.WriteString("\n")
	}

	var meta []string
	if doc.Category != "" {
		meta = append(meta, doc.Category)
	}
	for _, tag := range doc.Tags {
		meta = append(meta, "#"+tag)
	}
	if len(meta) > 0 {
		builder.WriteString(r.styles.meta.Render(strings.Join(meta, "  ")))
		builder.WriteString("\n")
	}

	if body := r.RenderDocument(doc.Body); body != "" {
		builder.WriteString("\n")
		builder.WriteString(body)
		builder.WriteString("\n")
	}
	return builder.String()
}
