package tools

import (
	"context"
	"net/url"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tidwall/gjson"

	"github.com/greghughespdx/brain-mcp-server/internal/brain"
)

type ListService interface {
	ListEntries(ctx context.Context, params url.Values) (gjson.Result, error)
}

// ListRecentHandler implements the list_recent tool. All filters are optional
// strings forwarded to the entries endpoint; limit defaults to 50.
type ListRecentHandler struct{ Service ListService }

func (h *ListRecentHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	limit := 50
	if raw, ok := args["limit"].(float64); ok {
		if int(raw) > 0 {
			limit = int(raw)
		}
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	for _, key := range []string{"status", "domain", "type"} {
		if v, ok := args[key].(string); ok && v != "" {
			params.Set(key, v)
		}
	}

	results, err := h.Service.ListEntries(ctx, params)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(brain.FormatEntryList(results)), nil
}
