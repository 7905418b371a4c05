package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"brain-mcp-server",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register tools with their proper schemas using mcp-go builder pattern
	toolDefinitions := map[string]mcp.Tool{
		"save_to_brain": mcp.NewTool("save_to_brain",
			mcp.WithDescription("Save a thought to Brain with full metadata. Use this when you have specific type/domain information or want to provide a custom title. The thought will be auto-classified by the Brain service."),
			mcp.WithString("text",
				mcp.Required(),
				mcp.Description("The thought content to capture"),
			),
			mcp.WithString("title",
				mcp.Description("Optional custom title (auto-generated if not provided)"),
			),
			mcp.WithString("type",
				mcp.Description("Optional thought type (idea, task, question, observation, reflection, reference, problem)"),
			),
			mcp.WithString("domain",
				mcp.Description("Optional domain (aviation, aircraft-build, dev, homelab, personal, business)"),
			),
			mcp.WithString("source",
				mcp.Description("Optional source identifier (defaults to 'mcp-client')"),
			),
		),
		"quick_capture": mcp.NewTool("quick_capture",
			mcp.WithDescription("Quickly capture a thought with minimal input. Just provide the text - Brain will auto-classify type, domain, and generate a title."),
			mcp.WithString("text",
				mcp.Required(),
				mcp.Description("The thought to capture"),
			),
		),
		"search_brain": mcp.NewTool("search_brain",
			mcp.WithDescription("Search for thoughts in Brain by text query. Searches both raw_text and title fields."),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("Search query text"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum results to return (default: 20)"),
			),
		),
		"list_recent": mcp.NewTool("list_recent",
			mcp.WithDescription("List recent Brain entries with optional filters. Returns entries ordered by creation date (newest first)."),
			mcp.WithNumber("limit",
				mcp.Description("Maximum entries to return (default: 50)"),
			),
			mcp.WithString("status",
				mcp.Description("Filter by status (inbox, triaged, developing, graduated, archived)"),
			),
			mcp.WithString("domain",
				mcp.Description("Filter by domain"),
			),
			mcp.WithString("type",
				mcp.Description("Filter by type"),
			),
		),
		"get_entry": mcp.NewTool("get_entry",
			mcp.WithDescription("Fetch a specific Brain entry by ID. Returns full entry details including raw_text, metadata, and classification results."),
			mcp.WithString("entry_id",
				mcp.Required(),
				mcp.Description("UUID of the entry to fetch"),
			),
		),
	}

	for name, adapter := range cfg.ToolAdapters {
		tool := toolDefinitions[name]
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}
