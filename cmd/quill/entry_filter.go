package main

import (
	"strconv"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"

	"github.com/gorewood/quill/internal/journal"
	"github.com/gorewood/quill/internal/output"
)

// entryFilterFlags are the selection flags shared by query and export.
type entryFilterFlags struct {
	last   string
	since  string
	until  string
	mood   string
	tags   []string
	search string
}

// register adds the filter flags to cmd. verb completes the help text,
// as in "Retrieve last N entries".
func (f *entryFilterFlags) register(cmd *cobra.Command, verb string) {
	cmd.Flags().StringVar(&f.last, "last", "", verb+" last N entries")
	cmd.Flags().StringVar(&f.since, "since", "", verb+" entries on or after a date (2026-01-17, today, yesterday, 7d, 2w, 1m)")
	cmd.Flags().StringVar(&f.until, "until", "", verb+" entries on or before a date (same formats as --since)")
	cmd.Flags().StringVar(&f.mood, "mood", "", "Filter by primary or secondary mood")
	cmd.Flags().StringSliceVar(&f.tags, "tag", []string{}, "Filter by tag (can specify multiple times or comma-separated)")
	cmd.Flags().StringVar(&f.search, "search", "", "Filter by text in content or category (case-insensitive)")
}

// hasSelector reports whether --last, --since or --until was given.
func (f *entryFilterFlags) hasSelector() bool {
	return f.last != "" || f.since != "" || f.until != ""
}

// toQuery validates the flags and builds the journal query.
// Tags are already split by cobra's StringSliceVar, which handles both
// repeated flags (--tag foo --tag bar) and comma-separated values (--tag foo,bar).
func (f *entryFilterFlags) toQuery(today civil.Date) (journal.Query, error) {
	query := journal.Query{Mood: f.mood, Search: f.search}
	if len(f.tags) > 0 {
		query.Tags = f.tags
	}

	if f.last != "" {
		count, err := strconv.Atoi(f.last)
		if err != nil || count <= 0 {
			return journal.Query{}, output.NewUserError("--last must be a positive integer")
		}
		query.Last = count
	}

	var err error
	if query.Since, err = parseBoundFlag("since", f.since, today); err != nil {
		return journal.Query{}, err
	}
	if query.Until, err = parseBoundFlag("until", f.until, today); err != nil {
		return journal.Query{}, err
	}
	if !query.Since.IsZero() && !query.Until.IsZero() && query.Until.Before(query.Since) {
		return journal.Query{}, output.NewUserError("--until must not be before --since")
	}
	return query, nil
}

// parseBoundFlag parses a --since or --until value; empty means no bound.
func parseBoundFlag(name, value string, today civil.Date) (civil.Date, error) {
	if value == "" {
		return civil.Date{}, nil
	}
	date, err := journal.ParseDateBound(value, today)
	if err != nil {
		return civil.Date{}, output.NewUserError("--" + name + ": " + err.Error())
	}
	return date, nil
}

// selectEntries opens the journal and runs the filter flags against it.
// noSelector is the error message used when no selector flag was given.
func selectEntries(cmd *cobra.Command, flags *entryFilterFlags, noSelector string) (*journalEnv, []*journal.Entry, error) {
	if !flags.hasSelector() {
		return nil, nil, output.NewUserError(noSelector)
	}

	env, err := openJournal(cmd)
	if err != nil {
		return nil, nil, err
	}

	today, err := resolveToday(env.cfg, "")
	if err != nil {
		return nil, nil, err
	}

	query, err := flags.toQuery(today)
	if err != nil {
		return nil, nil, err
	}

	entries, err := env.journal.Query(query)
	if err != nil {
		return nil, nil, journalError(err)
	}
	return env, entries, nil
}
