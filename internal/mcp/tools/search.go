package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tidwall/gjson"

	"github.com/greghughespdx/brain-mcp-server/internal/brain"
)

type SearchService interface {
	Search(ctx context.Context, query string) (gjson.Result, error)
}

// SearchHandler implements the search_brain tool. The limit is advisory and
// applied while formatting; the search endpoint does not take one.
type SearchHandler struct{ Service SearchService }

func (h *SearchHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query, _ := args["query"].(string)
	if strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("query parameter is required"), nil
	}
	limit := 20
	if raw, ok := args["limit"].(float64); ok {
		if int(raw) > 0 {
			limit = int(raw)
		}
	}

	results, err := h.Service.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(brain.FormatSearchResults(results, limit)), nil
}
