package main

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"

	"github.com/gorewood/quill/internal/export"
	"github.com/gorewood/quill/internal/journal"
	"github.com/gorewood/quill/internal/output"
)

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	var latestFlag bool

	cmd := &cobra.Command{
		Use:   "show [<date>]",
		Short: "Display a single journal entry",
		Long: `Display a single journal entry by date, or the most recent entry, with its
markdown rendered for the terminal.

Examples:
  quill show 2026-01-15        # Show a specific day
  quill show --latest          # Show the most recent entry
  quill show --latest --json   # Entry plus its rendered document as JSON`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args, latestFlag)
		},
	}

	cmd.Flags().BoolVar(&latestFlag, "latest", false, "Show the most recent entry")

	return cmd
}

// runShow executes the show command.
func runShow(cmd *cobra.Command, args []string, latestFlag bool) error {
	printer := newPrinter(cmd)

	if len(args) == 0 && !latestFlag {
		err := output.NewUserError("specify an entry date or use --latest")
		printer.Error(err)
		return err
	}
	if len(args) > 0 && latestFlag {
		err := output.NewUserError("cannot use both date argument and --latest flag")
		printer.Error(err)
		return err
	}

	env, err := openJournal(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	entry, err := getShowEntry(env.journal, args, latestFlag)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"entry":    entry,
			"document": export.BuildDocument(entry),
		})
	}

	outputShowHuman(cmd, printer, entry)
	return nil
}

// getShowEntry retrieves the entry based on arguments.
func getShowEntry(j *journal.Journal, args []string, latestFlag bool) (*journal.Entry, error) {
	if latestFlag {
		entry, err := j.GetLatestEntry()
		if err != nil {
			return nil, journalError(err)
		}
		return entry, nil
	}

	date, err := civil.ParseDate(args[0])
	if err != nil {
		return nil, output.NewUserError(fmt.Sprintf("invalid date %q: use YYYY-MM-DD", args[0]))
	}
	entry, err := j.GetEntryByDate(date)
	if err != nil {
		return nil, journalError(err)
	}
	return entry, nil
}

// outputShowHuman outputs the rendered entry followed by its timestamps.
func outputShowHuman(cmd *cobra.Command, printer *output.Printer, entry *journal.Entry) {
	renderer := export.NewTextRenderer(useColor(cmd))
	doc := export.BuildDocument(entry)
	printer.Print("%s", renderer.RenderEntry(doc))

	if footer := renderer.RenderFooter(doc); footer != "" {
		printer.Println()
		printer.Println(footer)
	}
}
