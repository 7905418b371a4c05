package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tidwall/gjson"

	"github.com/greghughespdx/brain-mcp-server/internal/brain"
)

type EntryDetailService interface {
	GetEntry(ctx context.Context, id string) (gjson.Result, error)
}

// GetEntryHandler implements the get_entry tool.
type GetEntryHandler struct{ Service EntryDetailService }

func (h *GetEntryHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	entryID, _ := args["entry_id"].(string)
	if strings.TrimSpace(entryID) == "" {
		return mcp.NewToolResultError("entry_id parameter is required"), nil
	}

	entry, err := h.Service.GetEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(brain.FormatEntryDetail(entry, entryID)), nil
}
