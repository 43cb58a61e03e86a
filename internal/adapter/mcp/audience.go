package mcpadapter

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"meta-ads-mcp/internal/core/domain"
)

const toolCreateCustomAudience = "create_custom_audience"

func createCustomAudienceTool() mcp.Tool {
	return mcp.NewTool(toolCreateCustomAudience,
		mcp.WithDescription("Creates a custom audience from content containing pre-hashed phone numbers."),
		mcp.WithString("act_id", mcp.Required(),
			mcp.Description("The ad account ID (format: act_<id>); the act_ prefix is added when missing")),
		mcp.WithString("hashed_content", mcp.Required(),
			mcp.Description("CSV content whose second column holds SHA-256 hashed phone numbers")),
		mcp.WithString("audience_name", mcp.Required(),
			mcp.Description("Name for the custom audience")),
		mcp.WithString("description",
			mcp.Description("Description for the custom audience")),
	)
}

// handleCreateCustomAudience returns the users upload response, or an
// error result naming the step that failed.
func (h *Handler) handleCreateCustomAudience(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	started := time.Now()
	a := newArgs(request.GetArguments())
	req := domain.AudienceRequest{
		AccountID:     a.requiredString("act_id"),
		HashedContent: a.presentString("hashed_content"),
		Name:          a.requiredString("audience_name"),
		Description:   a.optionalString("description"),
	}
	if a.err != nil {
		h.finish(ctx, toolCreateCustomAudience, req.AccountID, started, a.err)
		return errorResult(a.err), nil
	}

	resp, err := h.audiences.CreateCustomAudience(ctx, req)
	h.finish(ctx, toolCreateCustomAudience, domain.NormalizeAccountID(req.AccountID), started, err)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(resp)
}
