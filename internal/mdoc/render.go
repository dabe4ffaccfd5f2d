package mdoc

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultPreviewChars is the preview length used when none is given.
const DefaultPreviewChars = 300

var (
	// headingRegex matches "# Title" through "###### Title".
	// The separator may be any Unicode space, not only ASCII whitespace.
	headingRegex = regexp.MustCompile(`^(#{1,6})[\s\p{Z}\x{85}]+(.+)$`)

	// ruleRegex matches a line of three or more hyphens.
	ruleRegex = regexp.MustCompile(`^---+$`)

	// bulletRegex matches a bullet marker and the whitespace after it.
	bulletRegex = regexp.MustCompile(`^[-*+][\s\p{Z}\x{85}]+`)

	lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// Render converts markdown text into a Document.
// Empty or whitespace-only input yields a document with no blocks.
func Render(markdown string) Document {
	if strings.TrimSpace(markdown) == "" {
		return Document{Blocks: []Block{}}
	}

	lines := strings.Split(lineBreaks.Replace(markdown), "\n")
	blocks := make([]Block, 0, len(lines))

	i := 0
	for i < len(lines) {
		line := lines[i]

		if strings.TrimSpace(line) == "" {
			blocks = append(blocks, Block{Kind: KindBlank})
			i++
			continue
		}

		if m := headingRegex.FindStringSubmatch(line); m != nil {
			blocks = append(blocks, Block{
				Kind:  KindHeading,
				Level: len(m[1]),
				Spans: ParseInline(strings.TrimSpace(m[2])),
			})
			i++
			continue
		}

		if ruleRegex.MatchString(line) {
			blocks = append(blocks, Block{Kind: KindRule})
			i++
			continue
		}

		if bulletRegex.MatchString(line) {
			var block Block
			block, i = scanList(lines, i)
			blocks = append(blocks, block)
			continue
		}

		blocks = append(blocks, Block{Kind: KindParagraph, Spans: ParseInline(line)})
		i++
	}

	return Document{Blocks: blocks}
}

// scanList consumes consecutive bullet lines starting at start.
// It returns the list block and the index of the first line it did not consume.
func scanList(lines []string, start int) (Block, int) {
	block := Block{Kind: KindList}
	i := start
	for i < len(lines) && bulletRegex.MatchString(lines[i]) {
		spans := ParseInline(bulletRegex.ReplaceAllString(lines[i], ""))
		if spans == nil {
			spans = []Span{}
		}
		block.Items = append(block.Items, spans)
		i++
	}
	return block, i
}

// Preview renders at most maxChars characters of markdown, appending "..."
// when the text was cut. A non-positive maxChars uses DefaultPreviewChars.
func Preview(markdown string, maxChars int) Document {
	if maxChars <= 0 {
		maxChars = DefaultPreviewChars
	}
	if utf8.RuneCountInString(markdown) > maxChars {
		markdown = string([]rune(markdown)[:maxChars]) + "..."
	}
	return Render(markdown)
}
