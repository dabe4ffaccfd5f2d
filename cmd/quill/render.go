package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gorewood/quill/internal/export"
	"github.com/gorewood/quill/internal/mdoc"
	"github.com/gorewood/quill/internal/output"
)

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	var previewFlag int

	cmd := &cobra.Command{
		Use:   "render [<file>|-]",
		Short: "Render journal markdown for the terminal",
		Long: `Render lightweight markdown (headings, rules, bullet lists, **bold**,
*italic* and ` + "`code`" + `) the way quill shows entries. Reads a file, or stdin
when the argument is "-" or omitted.

With --json the document model is printed: blocks in source order, each with
its spans, plus the plain text.

Examples:
  quill render notes.md              # Styled output
  echo '# Hi' | quill render --json  # Document model
  quill render notes.md --preview 80 # First 80 characters with an ellipsis`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, previewFlag)
		},
	}

	cmd.Flags().IntVar(&previewFlag, "preview", 0, "Truncate to N characters before rendering")

	return cmd
}

// runRender executes the render command.
func runRender(cmd *cobra.Command, args []string, preview int) error {
	printer := newPrinter(cmd)

	if preview < 0 {
		err := output.NewUserError("--preview must be a positive integer")
		printer.Error(err)
		return err
	}

	markdown, err := readMarkdown(cmd, args)
	if err != nil {
		printer.Error(err)
		return err
	}

	doc := mdoc.Render(markdown)
	if preview > 0 {
		doc = mdoc.Preview(markdown, preview)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"blocks":     doc.Blocks,
			"plain_text": doc.PlainText(),
		})
	}

	if rendered := export.NewTextRenderer(useColor(cmd)).RenderDocument(doc); rendered != "" {
		printer.Println(rendered)
	}
	return nil
}

// readMarkdown reads the named file, or stdin for "-" or no argument.
func readMarkdown(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", output.NewSystemErrorWithCause("failed to read stdin", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		if os.IsNotExist(err) {
			return "", output.NewUserError("file not found: " + args[0])
		}
		return "", output.NewSystemErrorWithCause("failed to read "+args[0], err)
	}
	return string(data), nil
}
