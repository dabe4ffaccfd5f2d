package mdoc

import "strings"

// inlineState is the toggle state of the span tokenizer.
type inlineState struct {
	bold   bool
	italic bool
	code   bool
	text   strings.Builder
	spans  []Span
}

// flush emits the accumulated text as a span with the current styles.
// Empty runs are dropped.
func (s *inlineState) flush() {
	if s.text.Len() == 0 {
		return
	}
	s.spans = append(s.spans, Span{
		Text:   s.text.String(),
		Bold:   s.bold,
		Italic: s.italic,
		Code:   s.code,
	})
	s.text.Reset()
}

// ParseInline splits one line of text into styled spans.
//
// A backtick not preceded by a backslash toggles code, and everything inside
// code is literal. Outside code, "**" or "__" toggles bold and a single '*'
// or '_' toggles italic. Unclosed styles run to the end of the line.
func ParseInline(content string) []Span {
	runes := []rune(content)
	state := &inlineState{}

	for i := 0; i < len(runes); {
		char := runes[i]

		if char == '`' && (i == 0 || runes[i-1] != '\\') {
			state.flush()
			state.code = !state.code
			i++
			continue
		}

		if state.code {
			state.text.WriteRune(char)
			i++
			continue
		}

		if isMarker(char) && i+1 < len(runes) && runes[i+1] == char {
			state.flush()
			state.bold = !state.bold
			i += 2
			continue
		}

		if isMarker(char) {
			state.flush()
			state.italic = !state.italic
			i++
			continue
		}

		state.text.WriteRune(char)
		i++
	}

	state.flush()
	return state.spans
}

// isMarker reports whether char is an emphasis marker.
func isMarker(char rune) bool {
	return char == '*' || char == '_'
}
