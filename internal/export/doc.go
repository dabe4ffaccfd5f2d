// Package export formats journal entries for output and writes them to files.
//
// # Formats
//
//   - JSON: the entry as stored, quill.entry/v1 schema
//   - Markdown: YAML frontmatter, a dated title, then the entry body
//   - Document: the entry body rendered to blocks and spans, for tools
//     that lay out rich text (PDF writers, web views)
//
// Terminal display goes through TextRenderer, which styles a rendered
// document with lipgloss.
//
// # Markdown Export
//
//	---
//	schema: quill.export/v1
//	date: "2026-01-15"
//	mood: Happy
//	mood_category: Positive
//	secondary_moods: [Calm]
//	tags: [family, outdoors]
//	---
//
//	# Thursday, January 15, 2026
//
//	Went hiking with the family.
//
// # File Naming
//
// Files are named by entry date: 2026-01-15.json, 2026-01-15.md and
// 2026-01-15.doc.json. Existing files are left alone unless the caller
// asks to overwrite them.
package export
