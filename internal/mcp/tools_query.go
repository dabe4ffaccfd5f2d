package mcp

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/quill/internal/journal"
	"github.com/gorewood/quill/internal/mdoc"
)

// --- Query tool ---

// QueryInput is the input for the query tool.
type QueryInput struct {
	Last        int      `json:"last,omitempty"         jsonschema:"retrieve the last N entries"`
	Since       string   `json:"since,omitempty"        jsonschema:"entries on or after this date (YYYY-MM-DD, today, yesterday, 7d, 2w, 1m)"`
	Until       string   `json:"until,omitempty"        jsonschema:"entries on or before this date (same formats as since)"`
	Mood        string   `json:"mood,omitempty"         jsonschema:"filter by primary or secondary mood"`
	Tags        []string `json:"tags,omitempty"         jsonschema:"filter by tags (OR logic)"`
	Search      string   `json:"search,omitempty"       jsonschema:"case-insensitive text to find in content or category"`
	FullContent bool     `json:"full_content,omitempty" jsonschema:"return full content instead of previews"`
}

// QueryOutput is the output for the query tool.
type QueryOutput struct {
	Count   int         `json:"count"   jsonschema:"number of entries returned"`
	Entries []EntryView `json:"entries" jsonschema:"matching entries, newest first"`
}

func handleQuery(env *toolEnv) mcp.ToolHandlerFor[QueryInput, QueryOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input QueryInput) (*mcp.CallToolResult, QueryOutput, error) {
		query, err := buildQuery(input, env.today())
		if err != nil {
			return nil, QueryOutput{}, err
		}
		if !query.HasSelector() {
			return nil, QueryOutput{}, errors.New("specify last, since, or until to retrieve entries")
		}

		entries, err := env.journal.Query(query)
		if err != nil {
			return nil, QueryOutput{}, fmt.Errorf("listing entries: %w", err)
		}

		views := toEntryViews(entries, input.FullContent, env.previewChars)
		return nil, QueryOutput{Count: len(views), Entries: views}, nil
	}
}

func buildQuery(input QueryInput, today civil.Date) (journal.Query, error) {
	if input.Last < 0 {
		return journal.Query{}, errors.New("last must be positive")
	}
	since, err := parseBound("since", input.Since, today)
	if err != nil {
		return journal.Query{}, err
	}
	until, err := parseBound("until", input.Until, today)
	if err != nil {
		return journal.Query{}, err
	}
	return journal.Query{
		Last:   input.Last,
		Since:  since,
		Until:  until,
		Mood:   input.Mood,
		Tags:   input.Tags,
		Search: input.Search,
	}, nil
}

// --- Show tool ---

// ShowInput is the input for the show tool.
type ShowInput struct {
	Date   string `json:"date,omitempty"   jsonschema:"entry date (YYYY-MM-DD)"`
	Latest bool   `json:"latest,omitempty" jsonschema:"show the most recent entry"`
}

// ShowOutput is the output for the show tool.
type ShowOutput struct {
	Entry     EntryView    `json:"entry"      jsonschema:"the entry"`
	MoodColor string       `json:"mood_color" jsonschema:"badge color for the primary mood (hex)"`
	Blocks    []mdoc.Block `json:"blocks"     jsonschema:"content rendered to blocks"`
}

func handleShow(env *toolEnv) mcp.ToolHandlerFor[ShowInput, ShowOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ShowInput) (*mcp.CallToolResult, ShowOutput, error) {
		entry, err := findEntry(env.journal, input)
		if err != nil {
			return nil, ShowOutput{}, err
		}
		return nil, ShowOutput{
			Entry:     toEntryView(entry, true, env.previewChars),
			MoodColor: journal.MoodColor(entry.PrimaryMood),
			Blocks:    mdoc.Render(entry.Content).Blocks,
		}, nil
	}
}

func findEntry(j *journal.Journal, input ShowInput) (*journal.Entry, error) {
	switch {
	case input.Date != "" && input.Latest:
		return nil, errors.New("specify either date or latest, not both")
	case input.Latest:
		return j.GetLatestEntry()
	case input.Date != "":
		date, err := civil.ParseDate(input.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: use YYYY-MM-DD", input.Date)
		}
		return j.GetEntryByDate(date)
	default:
		return nil, errors.New("specify date or latest=true")
	}
}

// --- Render tool ---

// RenderInput is the input for the render tool.
type RenderInput struct {
	Markdown     string `json:"markdown"                jsonschema:"markdown text to render"`
	PreviewChars int    `json:"preview_chars,omitempty" jsonschema:"truncate to this many characters before rendering"`
}

// RenderOutput is the output for the render tool.
type RenderOutput struct {
	Blocks    []mdoc.Block `json:"blocks"     jsonschema:"rendered blocks in source order"`
	PlainText string       `json:"plain_text" jsonschema:"the document without formatting"`
}

func handleRender() mcp.ToolHandlerFor[RenderInput, RenderOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, RenderOutput, error) {
		if input.PreviewChars < 0 {
			return nil, RenderOutput{}, errors.New("preview_chars must be positive")
		}
		doc := mdoc.Render(input.Markdown)
		if input.PreviewChars > 0 {
			doc = mdoc.Preview(input.Markdown, input.PreviewChars)
		}
		return nil, RenderOutput{Blocks: doc.Blocks, PlainText: doc.PlainText()}, nil
	}
}
