package export

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/quill/internal/journal"
)

// MarkdownSchema identifies the frontmatter layout of exported markdown.
const MarkdownSchema = "quill.export/v1"

// TitleLayout formats the dated title of an exported entry.
const TitleLayout = "Monday, January 2, 2006"

// frontmatter is the YAML header of an exported markdown file.
type frontmatter struct {
	Schema         string   `yaml:"schema"`
	Date           string   `yaml:"date"`
	Mood           string   `yaml:"mood,omitempty"`
	MoodCategory   string   `yaml:"mood_category,omitempty"`
	SecondaryMoods []string `yaml:"secondary_moods,omitempty,flow"`
	Tags           []string `yaml:"tags,omitempty,flow"`
	Category       string   `yaml:"category,omitempty"`
}

func newFrontmatter(entry *journal.Entry) frontmatter {
	fm := frontmatter{
		Schema:         MarkdownSchema,
		Date:           entry.Date.String(),
		Mood:           entry.PrimaryMood,
		SecondaryMoods: entry.SecondaryMoods,
		Tags:           entry.Tags,
		Category:       entry.Category,
	}
	if entry.PrimaryMood != "" {
		fm.MoodCategory = string(journal.MoodCategoryOf(entry.PrimaryMood))
	}
	return fm
}

// Title returns the dated title for an entry, e.g. "Thursday, January 15, 2026".
func Title(entry *journal.Entry) string {
	return entry.Date.In(time.UTC).Format(TitleLayout)
}

// FormatMarkdown formats an entry as a markdown document with YAML frontmatter.
func FormatMarkdown(entry *journal.Entry) (string, error) {
	header, err := yaml.Marshal(newFrontmatter(entry))
	if err != nil {
		return "", fmt.Errorf("encoding frontmatter for %s: %w", entry.Date, err)
	}

	var builder strings.Builder
	builder.WriteString("---\n")
	builder.Write(header)
	builder.WriteString("---\n\n")
	fmt.Fprintf(&builder, "# %s\n\n", Title(entry))

	if body := strings.TrimSpace(entry.Content); body != "" {
		builder.WriteString(body)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

// WriteMarkdownFiles writes each entry to <dir>/<date>.md.
func WriteMarkdownFiles(entries []*journal.Entry, dir string, opts WriteOptions) ([]string, error) {
	return writeEntryFiles(entries, dir, ExtMarkdown, opts, func(entry *journal.Entry) ([]byte, error) {
		content, err := FormatMarkdown(entry)
		return []byte(content), err
	})
}
