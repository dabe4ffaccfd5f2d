// Package mcp provides a Model Context Protocol server for quill.
// It exposes read-only journal operations as tools for MCP-capable agents.
package mcp

import (
	"cloud.google.com/go/civil"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/quill/internal/journal"
	"github.com/gorewood/quill/internal/mdoc"
)

// Options configures the server.
type Options struct {
	// Today returns the current date; it decides streaks and relative bounds.
	Today func() civil.Date
	// PreviewChars bounds query previews; 0 uses mdoc.DefaultPreviewChars.
	PreviewChars int
}

// toolEnv is the state shared by every tool handler.
type toolEnv struct {
	journal      *journal.Journal
	today        func() civil.Date
	previewChars int
}

// NewServer creates an MCP server with all quill tools registered.
func NewServer(version string, j *journal.Journal, opts Options) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "quill",
		Version: version,
	}, nil)
	registerTools(server, newToolEnv(j, opts))
	return server
}

func newToolEnv(j *journal.Journal, opts Options) *toolEnv {
	env := &toolEnv{journal: j, today: opts.Today, previewChars: opts.PreviewChars}
	if env.today == nil {
		env.today = func() civil.Date { return civil.DateOf(timeNow()) }
	}
	if env.previewChars <= 0 {
		env.previewChars = mdoc.DefaultPreviewChars
	}
	return env
}

func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations marks a tool as a side-effect-free local read.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

func registerTools(server *mcp.Server, env *toolEnv) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "streak",
		Description: "Compute the journaling streak: consecutive days ending today, the longest run ever, and days missed since the first entry (newest first).",
		Annotations: readOnlyAnnotations(),
	}, handleStreak(env))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "stats",
		Description: "Summarize the journal: entry count, primary mood distribution, oldest and newest entry dates.",
		Annotations: readOnlyAnnotations(),
	}, handleStats(env))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "query",
		Description: "List journal entries newest first. Select with last N or since/until (YYYY-MM-DD, today, yesterday, 7d, 2w, 1m) and narrow by mood, tags (OR) or a search term.",
		Annotations: readOnlyAnnotations(),
	}, handleQuery(env))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "show",
		Description: "Show one journal entry by date (YYYY-MM-DD), or the most recent with latest=true, including its content rendered to blocks.",
		Annotations: readOnlyAnnotations(),
	}, handleShow(env))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render",
		Description: "Render journal markdown (headings, rules, bullet lists, **bold**, *italic*, `code`) into blocks of styled spans.",
		Annotations: readOnlyAnnotations(),
	}, handleRender())
}
