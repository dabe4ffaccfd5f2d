// Package output renders command results for the quill CLI.
//
// Every command writes through a Printer, which switches between JSON for
// scripts and agents and styled text for people:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, output.IsTTY(cmd.OutOrStdout()))
//	printer.KeyValue("Current streak", "4 days")
//	printer.MoodBadge("Happy", "#28a745")
//
// # JSON Mode
//
// With --json, results are encoded as indented JSON and errors as
// {"error": "message", "code": N} on stdout.
//
// # Styling
//
// Human output uses lipgloss styles. Styles collapse to plain text when the
// writer is not a terminal or --color=never is set.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0
//	output.ExitUserError   // 1: bad arguments, unknown date, missing journal
//	output.ExitSystemError // 2: unreadable files, database failures
//	output.ExitConflict    // 3: export target already exists
package output
