package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		amount decimal.Decimal
		want   int64
	}{
		{decimal.NewFromFloat(19.99), 1999},
		{decimal.NewFromFloat(19.999), 1999},
		{decimal.NewFromFloat(0.0), 0},
		{decimal.NewFromFloat(0.29), 29},
		{decimal.NewFromInt(50), 5000},
		{decimal.RequireFromString("1.005"), 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MinorUnits(tt.amount), tt.amount.String())
	}
}

func TestAudienceTargeting(t *testing.T) {
	got := AudienceTargeting("aud1", Targeting{"age_min": 18})
	assert.Equal(t, Targeting{
		"custom_audiences": []map[string]string{{"id": "aud1"}},
		"age_min":          18,
	}, got)

	override := []map[string]string{{"id": "other"}}
	got = AudienceTargeting("aud1", Targeting{"custom_audiences": override})
	assert.Equal(t, override, got["custom_audiences"])

	assert.Len(t, AudienceTargeting("aud1", nil), 1)
}

func TestCampaignRequestBodies(t *testing.T) {
	req := CampaignRequest{
		Name:             "Spring",
		Objective:        "REACH",
		CustomAudienceID: "aud1",
		DailyBudget:      decimal.NewFromFloat(12.5),
		Status:           "ACTIVE",
		AdTitle:          "Title",
		PageID:           "p1",
		AdLink:           "https://example.com",
	}

	campaign := req.NewCampaign()
	assert.Equal(t, int64(1250), campaign.DailyBudget)
	assert.Equal(t, []string{"NONE"}, campaign.SpecialAdCategories)
	assert.Equal(t, "ACTIVE", campaign.Status)

	adSet := req.NewAdSet("c1")
	assert.Equal(t, "Spring Ad Set", adSet.Name)
	assert.Equal(t, "REACH", adSet.OptimizationGoal)
	assert.Nil(t, adSet.BidAmount)

	raw, err := json.Marshal(adSet)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "bid_amount")
	assert.NotContains(t, string(raw), "start_time")

	ad := req.NewAd("s1")
	assert.Equal(t, "Spring Ad", ad.Name)
	assert.Equal(t, "Title", ad.Creative.Title)
	assert.Equal(t, DefaultAdBody, ad.Creative.Body)
	assert.Equal(t, DefaultLinkMessage, ad.Creative.ObjectStorySpec.LinkData.Message)
	assert.Equal(t, "p1", ad.Creative.ObjectStorySpec.PageID)
}

func TestCampaignRequestDefaults(t *testing.T) {
	req := CampaignRequest{Name: "Spring", BidAmount: decimal.NewFromFloat(2.999)}

	assert.Equal(t, StatusPaused, req.NewCampaign().Status)

	adSet := req.NewAdSet("c1")
	require.NotNil(t, adSet.BidAmount)
	assert.Equal(t, int64(299), *adSet.BidAmount)
	assert.Equal(t, StatusPaused, adSet.Status)

	assert.Equal(t, "Spring", req.NewAd("s1").Creative.Title)
}
