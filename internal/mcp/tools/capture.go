package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/greghughespdx/brain-mcp-server/internal/brain"
)

type CaptureService interface {
	CreateEntry(ctx context.Context, payload map[string]any) (brain.CaptureResult, error)
}

// SaveHandler implements the save_to_brain tool: full capture with optional
// title/type/domain/source metadata.
type SaveHandler struct{ Service CaptureService }

func (h *SaveHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	text, _ := args["text"].(string)
	if strings.TrimSpace(text) == "" {
		return mcp.NewToolResultError("text parameter is required"), nil
	}
	title, _ := args["title"].(string)
	typ, _ := args["type"].(string)
	domain, _ := args["domain"].(string)
	source, _ := args["source"].(string)

	result, err := h.Service.CreateEntry(ctx, brain.EntryPayload(text, title, typ, domain, source))
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(brain.FormatCapture(result)), nil
}

// QuickCaptureHandler implements the quick_capture tool: text only, the Brain
// service fills in everything else.
type QuickCaptureHandler struct{ Service CaptureService }

func (h *QuickCaptureHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	text, _ := args["text"].(string)
	if strings.TrimSpace(text) == "" {
		return mcp.NewToolResultError("text parameter is required"), nil
	}

	result, err := h.Service.CreateEntry(ctx, brain.EntryPayload(text, "", "", "", ""))
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(brain.FormatQuickCapture(result)), nil
}
