package main

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/gorewood/quill/internal/export"
	"github.com/gorewood/quill/internal/journal"
	"github.com/gorewood/quill/internal/logger"
	"github.com/gorewood/quill/internal/output"
)

// Export formats accepted by --format.
const (
	formatJSON     = "json"
	formatMarkdown = "md"
	formatDocument = "doc"
)

var exportFormats = []string{formatJSON, formatMarkdown, formatDocument}

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	var filters entryFilterFlags
	var formatFlag string
	var outFlag string
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export entries to structured formats",
		Long: `Export entries as JSON, markdown with YAML frontmatter, or rendered
documents (entry header plus markdown blocks as JSON).

Without --out entries go to stdout; with --out each entry becomes one file
named after its date. Existing files are kept unless --force is given.

Examples:
  quill export --last 5                            # Last 5 as a JSON array
  quill export --since 1m --out ./notes/           # Last month as markdown files
  quill export --last 10 --format doc              # Rendered documents to stdout
  quill export --since 2026-01-01 --format json --out ./backup/ --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, &filters, formatFlag, outFlag, forceFlag)
		},
	}

	filters.register(cmd, "Export")
	cmd.Flags().StringVar(&formatFlag, "format", "", "Output format: json, md or doc (default: json for stdout, md for --out)")
	cmd.Flags().StringVar(&outFlag, "out", "", "Output directory (if omitted, writes to stdout)")
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite existing files in --out")

	return cmd
}

// runExport executes the export command.
func runExport(cmd *cobra.Command, filters *entryFilterFlags, formatFlag, outFlag string, force bool) error {
	printer := newPrinter(cmd)

	format := determineFormat(formatFlag, outFlag)
	if !slices.Contains(exportFormats, format) {
		err := output.NewUserError("--format must be 'json', 'md' or 'doc'")
		printer.Error(err)
		return err
	}

	_, entries, err := selectEntries(cmd, filters,
		"specify --last N, --since <date|duration>, or --until <date|duration> to export entries")
	if err != nil {
		printer.Error(err)
		return err
	}

	if outFlag == "" {
		return writeToStdout(printer, entries, format)
	}
	return writeToDirectory(printer, entries, format, outFlag, force)
}

// determineFormat returns the format to use based on flags.
func determineFormat(formatFlag, outFlag string) string {
	if formatFlag != "" {
		return formatFlag
	}
	if outFlag == "" {
		return formatJSON
	}
	return formatMarkdown
}

// writeToStdout writes entries to stdout in the specified format.
func writeToStdout(printer *output.Printer, entries []*journal.Entry, format string) error {
	switch format {
	case formatJSON:
		return export.FormatJSON(printer, entries)
	case formatDocument:
		return export.FormatDocuments(printer, entries)
	}

	for i, entry := range entries {
		if i > 0 {
			printer.Println()
		}
		md, err := export.FormatMarkdown(entry)
		if err != nil {
			sysErr := output.NewSystemErrorWithCause(err.Error(), err)
			printer.Error(sysErr)
			return sysErr
		}
		printer.Print("%s", md)
	}
	return nil
}

// writeToDirectory writes entries to files in the specified directory.
func writeToDirectory(printer *output.Printer, entries []*journal.Entry, format, outDir string, force bool) error {
	opts := export.WriteOptions{Force: force}

	var paths []string
	var err error
	switch format {
	case formatJSON:
		paths, err = export.WriteJSONFiles(entries, outDir, opts)
	case formatDocument:
		paths, err = export.WriteDocumentFiles(entries, outDir, opts)
	default:
		paths, err = export.WriteMarkdownFiles(entries, outDir, opts)
	}
	if err != nil {
		logger.Warn("export stopped", "written", len(paths), "err", err)
		printer.Error(err)
		return err
	}

	logger.Info("export complete", "format", format, "dir", outDir, "count", len(paths))
	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"format": format,
			"dir":    outDir,
			"count":  len(paths),
			"files":  paths,
		})
	}
	printer.Print("Exported %d %s to %s\n", len(paths), pluralEntries(len(paths)), outDir)
	return nil
}

// pluralEntries returns "entry" or "entries".
func pluralEntries(n int) string {
	if n == 1 {
		return "entry"
	}
	return "entries"
}
