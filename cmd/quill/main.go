// Package main provides the entry point for the quill CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/quill/internal/config"
	"github.com/gorewood/quill/internal/logger"
	"github.com/gorewood/quill/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves the --color flag against the command's stdout.
func useColor(cmd *cobra.Command) bool {
	mode := output.ColorAuto
	flag := cmd.Flags().Lookup("color")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("color")
	}
	if flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// newPrinter creates the printer every command writes through.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(handleError),
	)
	return output.GetExitCode(err)
}

// handleError prints errors the printer has not already reported,
// such as unknown flags.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// newRootCmd creates the root command for the quill CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quill",
		Short: "Read, query and render a mood journal",
		Long: `Quill - read-only tools for a daily mood journal.

Quill reads the entries a journal app writes (one JSON file per day, or the
app's SQLite database) and:
  - Computes writing streaks and the days you missed
  - Queries entries by date, mood, tag or text
  - Renders entry markdown as styled terminal output or structured blocks
  - Exports entries as JSON, markdown with frontmatter, or documents
  - Serves all of it to agents over MCP

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'quill --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		setupEnvironment(cmd)
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Color output: auto, always, never")
	cmd.PersistentFlags().String("dir", "", "Journal directory (overrides config)")
	cmd.PersistentFlags().String("db", "", "Journal SQLite database (overrides config)")
	cmd.PersistentFlags().Bool("debug", false, "Log debug output to stderr")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// setupEnvironment loads env files and starts the file logger.
// Environment variables already set always take precedence over file values.
//
// Resolution order:
//  1. $CWD/.env.local
//  2. $CWD/.env
//  3. <config dir>/env
func setupEnvironment(cmd *cobra.Command) {
	dir := config.Dir()
	_ = config.LoadEnvFiles(config.EnvFiles(dir)...)

	debug, _ := cmd.Flags().GetBool("debug")
	level := ""
	if cfg, err := config.Load(dir); err == nil {
		level = cfg.LogLevel
	}
	err := logger.Init(logger.Config{
		Debug:     debug,
		ConfigDir: dir,
		Level:     level,
		Stderr:    cmd.ErrOrStderr(),
	})
	if err != nil && debug {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "logger disabled: %v\n", err)
	}
	logger.Debug("command start", "command", cmd.CommandPath(), "config_dir", dir)
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "query", Title: "Query Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newStreakCmd(), "core")
	addGroupedCommand(cmd, newStatusCmd(), "core")

	addGroupedCommand(cmd, newShowCmd(), "query")
	addGroupedCommand(cmd, newQueryCmd(), "query")
	addGroupedCommand(cmd, newRenderCmd(), "query")
	addGroupedCommand(cmd, newExportCmd(), "query")

	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
