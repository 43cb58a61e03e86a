package mcpadapter

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"meta-ads-mcp/internal/core/domain"
)

const toolCreateAdCampaign = "create_ad_campaign"

var stringItems = map[string]any{"type": "string"}

func createAdCampaignTool() mcp.Tool {
	return mcp.NewTool(toolCreateAdCampaign,
		mcp.WithDescription("Creates a complete ad campaign (campaign, ad set and ad) targeting a custom audience."),
		mcp.WithString("act_id", mcp.Required(),
			mcp.Description("The ad account ID (format: act_<id>)")),
		mcp.WithString("name", mcp.Required(),
			mcp.Description("Name for the campaign")),
		mcp.WithString("objective", mcp.Required(),
			mcp.Description("Campaign objective (e.g. REACH, LINK_CLICKS); also used as the ad set optimization goal")),
		mcp.WithString("custom_audience_id", mcp.Required(),
			mcp.Description("ID of the custom audience to target")),
		mcp.WithNumber("daily_budget", mcp.Required(),
			mcp.Description("Daily budget in account currency")),
		mcp.WithNumber("bid_amount",
			mcp.Description("Bid amount for the ad set in account currency")),
		mcp.WithString("start_time",
			mcp.Description("Start time in ISO format (YYYY-MM-DDThh:mm:ss+0000)")),
		mcp.WithString("end_time",
			mcp.Description("End time in ISO format (YYYY-MM-DDThh:mm:ss+0000)")),
		mcp.WithObject("targeting",
			mcp.Description("Additional targeting specifications merged over the custom audience")),
		mcp.WithString("status",
			mcp.Description("Initial status of the campaign, ad set and ad"),
			mcp.Enum("ACTIVE", "PAUSED"),
			mcp.DefaultString(domain.StatusPaused)),
		mcp.WithArray("campaign_fields",
			mcp.Description("Fields to return for the created campaign"), mcp.Items(stringItems)),
		mcp.WithArray("adset_fields",
			mcp.Description("Fields to return for the created ad set"), mcp.Items(stringItems)),
		mcp.WithArray("ad_fields",
			mcp.Description("Fields to return for the created ad"), mcp.Items(stringItems)),
		mcp.WithString("page_id",
			mcp.Description("The Facebook Page ID to use for the ad")),
		mcp.WithString("ad_link",
			mcp.Description("The URL where the ad will direct users")),
		mcp.WithString("ad_message",
			mcp.Description("The main message/body text of the ad")),
		mcp.WithString("ad_title",
			mcp.Description("The title of the ad; defaults to the campaign name")),
	)
}

// handleCreateAdCampaign returns {"campaign", "adset", "ad"} holding the
// platform responses, or an error result naming the step that failed.
func (h *Handler) handleCreateAdCampaign(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	started := time.Now()
	a := newArgs(request.GetArguments())
	req := domain.CampaignRequest{
		AccountID:        a.requiredString("act_id"),
		Name:             a.requiredString("name"),
		Objective:        a.requiredString("objective"),
		CustomAudienceID: a.requiredString("custom_audience_id"),
		DailyBudget:      a.requiredAmount("daily_budget"),
		BidAmount:        a.optionalAmount("bid_amount"),
		StartTime:        a.optionalString("start_time"),
		EndTime:          a.optionalString("end_time"),
		Targeting:        a.object("targeting"),
		Status:           a.optionalString("status"),
		CampaignFields:   a.stringSlice("campaign_fields"),
		AdSetFields:      a.stringSlice("adset_fields"),
		AdFields:         a.stringSlice("ad_fields"),
		PageID:           a.optionalString("page_id"),
		AdLink:           a.optionalString("ad_link"),
		AdMessage:        a.optionalString("ad_message"),
		AdTitle:          a.optionalString("ad_title"),
	}
	if a.err != nil {
		h.finish(ctx, toolCreateAdCampaign, req.AccountID, started, a.err)
		return errorResult(a.err), nil
	}

	res, err := h.campaigns.CreateAdCampaign(ctx, req)
	h.finish(ctx, toolCreateAdCampaign, domain.NormalizeAccountID(req.AccountID), started, err)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(res)
}
