package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/quill/internal/export"
	"github.com/gorewood/quill/internal/journal"
	"github.com/gorewood/quill/internal/mdoc"
	"github.com/gorewood/quill/internal/output"
)

// onelinePreviewChars bounds the preview column of --oneline.
const onelinePreviewChars = 60

// newQueryCmd creates the query command.
func newQueryCmd() *cobra.Command {
	var filters entryFilterFlags
	var onelineFlag bool

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Retrieve journal entries with filters",
		Long: `Retrieve journal entries, newest first, with filters like --last N,
--since or --until. Human output shows a rendered preview of each entry.

Examples:
  quill query --last 5                           # Show last 5 entries
  quill query --since 7d                         # Show entries from the last 7 days
  quill query --since 2026-01-01 --until 2026-01-15  # Date range
  quill query --last 10 --mood happy             # Last 10 entries with a Happy mood
  quill query --since 1m --tag work,family       # Last month tagged work or family
  quill query --last 30 --search dinner          # Last 30 mentioning dinner
  quill query --last 3 --oneline                 # Compact table
  quill query --last 10 --json                   # Entries as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, &filters, onelineFlag)
		},
	}

	filters.register(cmd, "Retrieve")
	cmd.Flags().BoolVar(&onelineFlag, "oneline", false, "Show compact format: <date>  <mood>  <preview>")

	return cmd
}

// runQuery executes the query command.
func runQuery(cmd *cobra.Command, filters *entryFilterFlags, onelineFlag bool) error {
	printer := newPrinter(cmd)

	env, entries, err := selectEntries(cmd, filters,
		"specify --last N, --since <date|duration>, or --until <date|duration> to retrieve entries")
	if err != nil {
		printer.Error(err)
		return err
	}

	return outputQueryResults(cmd, printer, entries, env.cfg.PreviewChars, onelineFlag)
}

// outputQueryResults outputs entries based on the output mode.
func outputQueryResults(
	cmd *cobra.Command, printer *output.Printer,
	entries []*journal.Entry, previewChars int, onelineFlag bool,
) error {
	if printer.IsJSON() {
		return export.FormatJSON(printer, entries)
	}

	if onelineFlag {
		outputQueryOneline(printer, entries)
		return nil
	}

	outputQueryHuman(printer, export.NewTextRenderer(useColor(cmd)), entries, previewChars)
	return nil
}

// outputQueryOneline outputs entries in compact table format: Date | Mood | Preview
func outputQueryOneline(printer *output.Printer, entries []*journal.Entry) {
	headers := []string{"Date", "Mood", "Preview"}
	rows := make([][]string, 0, len(entries))

	for _, entry := range entries {
		preview := mdoc.Preview(entry.Content, onelinePreviewChars).PlainText()
		rows = append(rows, []string{
			entry.Date.String(),
			entry.PrimaryMood,
			strings.Join(strings.Fields(preview), " "),
		})
	}

	printer.Table(headers, rows)
}

// outputQueryHuman outputs each entry header with a rendered preview.
func outputQueryHuman(printer *output.Printer, renderer *export.TextRenderer, entries []*journal.Entry, previewChars int) {
	if len(entries) == 0 {
		printer.Println("No entries found")
		return
	}

	for i, entry := range entries {
		if i > 0 {
			printer.Println()
			printer.Println(printer.Muted(strings.Repeat("─", export.DefaultRuleWidth)))
		}
		doc := export.BuildDocument(entry)
		doc.Body = mdoc.Preview(entry.Content, previewChars)
		printer.Print("%s", renderer.RenderEntry(doc))
	}
}
