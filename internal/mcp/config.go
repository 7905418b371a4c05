package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/greghughespdx/brain-mcp-server/internal/brain"
	"github.com/greghughespdx/brain-mcp-server/internal/config"
	"github.com/greghughespdx/brain-mcp-server/internal/logging"
	"github.com/greghughespdx/brain-mcp-server/internal/mcp/tools"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
}

func DefaultConfig() Config {
	baseLogger := logging.New(logging.DefaultLogger(config.LogLevel()))
	client := brain.NewClient(config.APIBase(), config.APITimeout(), baseLogger.WithName("brain"))

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"save_to_brain": &tools.SaveHandler{Service: client},
			"quick_capture": &tools.QuickCaptureHandler{Service: client},
			"search_brain":  &tools.SearchHandler{Service: client},
			"list_recent":   &tools.ListRecentHandler{Service: client},
			"get_entry":     &tools.GetEntryHandler{Service: client},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
	}
}
