package mcpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"meta-ads-mcp/internal/core/domain"
	"meta-ads-mcp/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (*Handler, *mocks.MockAudienceUseCase, *mocks.MockCampaignUseCase, *mocks.MockInvocationRepository) {
	audiences := mocks.NewMockAudienceUseCase(t)
	campaigns := mocks.NewMockCampaignUseCase(t)
	invocations := mocks.NewMockInvocationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(audiences, campaigns, logger, "test", WithInvocations(invocations))
	return h, audiences, campaigns, invocations
}

func callRequest(name string, arguments map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = arguments
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestCreateCustomAudienceTool(t *testing.T) {
	h, audiences, _, invocations := newTestHandler(t)

	audiences.EXPECT().
		CreateCustomAudience(mock.Anything, domain.AudienceRequest{
			AccountID:     "123",
			HashedContent: "1,h1",
			Name:          "VIP",
		}).
		Return(domain.Object{"audience_id": "aud1", "num_received": float64(1)}, nil)

	invocations.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(inv domain.Invocation) bool {
			return inv.Tool == "create_custom_audience" && inv.AccountID == "act_123" && inv.Outcome == domain.OutcomeOK
		})).
		Return(nil)

	res, err := h.handleCreateCustomAudience(context.Background(), callRequest("create_custom_audience", map[string]any{
		"act_id":         "123",
		"hashed_content": "1,h1",
		"audience_name":  "VIP",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.JSONEq(t, `{"audience_id":"aud1","num_received":1}`, resultText(t, res))
}

func TestCreateCustomAudienceToolMissingArgument(t *testing.T) {
	h, _, _, invocations := newTestHandler(t)

	invocations.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(inv domain.Invocation) bool {
			return inv.Outcome == domain.OutcomeError && inv.ErrorKind == domain.KindInvalidArguments
		})).
		Return(nil)

	res, err := h.handleCreateCustomAudience(context.Background(), callRequest("create_custom_audience", map[string]any{
		"act_id":        "123",
		"audience_name": "VIP",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &body))
	assert.Contains(t, body["error"], "hashed_content is required")
}

func TestCreateCustomAudienceToolEmptyContent(t *testing.T) {
	h, audiences, _, invocations := newTestHandler(t)

	audiences.EXPECT().
		CreateCustomAudience(mock.Anything, domain.AudienceRequest{
			AccountID:     "123",
			HashedContent: "",
			Name:          "VIP",
		}).
		Return(domain.Object{"audience_id": "aud1", "num_received": float64(0)}, nil)
	invocations.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	res, err := h.handleCreateCustomAudience(context.Background(), callRequest("create_custom_audience", map[string]any{
		"act_id":         "123",
		"hashed_content": "",
		"audience_name":  "VIP",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.JSONEq(t, `{"audience_id":"aud1","num_received":0}`, resultText(t, res))
}

func TestCreateCustomAudienceToolContentNotString(t *testing.T) {
	h, _, _, invocations := newTestHandler(t)
	invocations.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	res, err := h.handleCreateCustomAudience(context.Background(), callRequest("create_custom_audience", map[string]any{
		"act_id":         "123",
		"hashed_content": float64(1),
		"audience_name":  "VIP",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "hashed_content must be a string")
}

func TestCreateAdCampaignTool(t *testing.T) {
	h, _, campaigns, invocations := newTestHandler(t)

	campaigns.EXPECT().
		CreateAdCampaign(mock.Anything, mock.AnythingOfType("domain.CampaignRequest")).
		Run(func(ctx context.Context, req domain.CampaignRequest) {
			assert.Equal(t, "act_1", req.AccountID)
			assert.True(t, decimal.RequireFromString("19.99").Equal(req.DailyBudget))
			assert.True(t, decimal.RequireFromString("0.5").Equal(req.BidAmount))
			assert.Equal(t, []string{"id", "name"}, req.CampaignFields)
			assert.Equal(t, domain.Targeting{"age_min": float64(21)}, req.Targeting)
			assert.Equal(t, "", req.Status)
		}).
		Return(&domain.CampaignResult{
			Campaign: domain.Object{"id": "c1"},
			AdSet:    domain.Object{"id": "s1"},
			Ad:       domain.Object{"id": "a1"},
		}, nil)
	invocations.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	res, err := h.handleCreateAdCampaign(context.Background(), callRequest("create_ad_campaign", map[string]any{
		"act_id":             "act_1",
		"name":               "Spring",
		"objective":          "REACH",
		"custom_audience_id": "aud1",
		"daily_budget":       19.99,
		"bid_amount":         "0.5",
		"targeting":          map[string]any{"age_min": float64(21)},
		"campaign_fields":    []any{"id", "name"},
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.JSONEq(t, `{"campaign":{"id":"c1"},"adset":{"id":"s1"},"ad":{"id":"a1"}}`, resultText(t, res))
}

func TestCreateAdCampaignToolFailure(t *testing.T) {
	h, _, campaigns, invocations := newTestHandler(t)

	platformErr := &domain.PlatformError{Message: "Invalid parameter", StatusCode: 400}
	campaigns.EXPECT().
		CreateAdCampaign(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("failed to create campaign: %w", platformErr))
	invocations.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(inv domain.Invocation) bool {
			return inv.ErrorKind == domain.KindPlatform
		})).
		Return(errors.New("db down"))

	res, err := h.handleCreateAdCampaign(context.Background(), callRequest("create_ad_campaign", map[string]any{
		"act_id":             "1",
		"name":               "Spring",
		"objective":          "REACH",
		"custom_audience_id": "aud1",
		"daily_budget":       float64(10),
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "failed to create campaign: Invalid parameter")
}

func TestCreateAdCampaignToolInvalidBudget(t *testing.T) {
	h, _, _, invocations := newTestHandler(t)
	invocations.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	res, err := h.handleCreateAdCampaign(context.Background(), callRequest("create_ad_campaign", map[string]any{
		"act_id":             "1",
		"name":               "Spring",
		"objective":          "REACH",
		"custom_audience_id": "aud1",
		"daily_budget":       "ten",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "daily_budget must be a number")
}

func TestToolSchemas(t *testing.T) {
	audience := createCustomAudienceTool()
	assert.Equal(t, []string{"act_id", "hashed_content", "audience_name"}, audience.InputSchema.Required)

	campaign := createAdCampaignTool()
	assert.Equal(t, []string{"act_id", "name", "objective", "custom_audience_id", "daily_budget"},
		campaign.InputSchema.Required)
	assert.Contains(t, campaign.InputSchema.Properties, "targeting")
	assert.Contains(t, campaign.InputSchema.Properties, "ad_fields")
}
