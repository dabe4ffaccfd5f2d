// Package mdoc turns the lightweight markdown of a journal entry into a
// structured document of styled blocks and spans.
//
// The renderer produces data, not pixels: callers (the terminal renderer in
// internal/export, the MCP render tool, JSON export) decide how each block
// and span is laid out.
//
// # Blocks
//
// Input is scanned one line at a time:
//
//	# Heading            -> heading (level = number of '#', 1-6)
//	---                  -> rule
//	- item / * item      -> list (consecutive bullet lines form one list)
//	(blank line)         -> blank
//	anything else        -> paragraph
//
// # Spans
//
// Within a heading, list item or paragraph, three independent toggles mark
// text as bold (** or __), italic (* or _) or code (`). Toggles combine
// rather than nest, markers are literal inside code, and a marker that is
// never closed keeps its style to the end of the line:
//
//	doc := mdoc.Render("**bold** and *italic*")
//	// doc.Blocks[0].Spans:
//	//   {Text: "bold", Bold: true}
//	//   {Text: " and "}
//	//   {Text: "italic", Italic: true}
//
// Rendering never fails and keeps no state, so Render is safe to call from
// any goroutine.
package mdoc
