package domain

import (
	"maps"

	"github.com/shopspring/decimal"
)

// Fixed values of the campaign workflow.
const (
	StatusPaused            = "PAUSED"
	SpecialAdCategoryNone   = "NONE"
	BillingEventImpressions = "IMPRESSIONS"
	DefaultAdBody           = "Ad created via MCP server"
	DefaultLinkMessage      = "Ad message"
)

var hundred = decimal.NewFromInt(100)

// MinorUnits converts an amount in account currency into integer minor
// units (e.g. cents). The fractional remainder is truncated, never rounded:
// 19.999 becomes 1999.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Truncate(0).IntPart()
}

// CampaignRequest is the input of the campaign workflow. Budgets are in
// account currency.
type CampaignRequest struct {
	AccountID        string
	Name             string
	Objective        string
	CustomAudienceID string
	DailyBudget      decimal.Decimal
	BidAmount        decimal.Decimal
	StartTime        string
	EndTime          string
	Targeting        Targeting
	Status           string
	CampaignFields   []string
	AdSetFields      []string
	AdFields         []string
	PageID           string
	AdLink           string
	AdMessage        string
	AdTitle          string
}

// Campaign is the body of the campaign creation call.
type Campaign struct {
	Name                string   `json:"name"`
	Objective           string   `json:"objective"`
	Status              string   `json:"status"`
	SpecialAdCategories []string `json:"special_ad_categories"`
	DailyBudget         int64    `json:"daily_budget"`
}

// AdSet is the body of the ad set creation call.
type AdSet struct {
	Name             string    `json:"name"`
	CampaignID       string    `json:"campaign_id"`
	DailyBudget      int64     `json:"daily_budget"`
	BillingEvent     string    `json:"billing_event"`
	OptimizationGoal string    `json:"optimization_goal"`
	BidAmount        *int64    `json:"bid_amount,omitempty"`
	Targeting        Targeting `json:"targeting"`
	Status           string    `json:"status"`
	StartTime        string    `json:"start_time,omitempty"`
	EndTime          string    `json:"end_time,omitempty"`
}

// Ad is the body of the ad creation call.
type Ad struct {
	Name     string   `json:"name"`
	AdSetID  string   `json:"adset_id"`
	Status   string   `json:"status"`
	Creative Creative `json:"creative"`
}

// Creative is the inline creative of an ad.
type Creative struct {
	Title           string          `json:"title"`
	Body            string          `json:"body"`
	ObjectStorySpec ObjectStorySpec `json:"object_story_spec"`
}

type ObjectStorySpec struct {
	PageID   string   `json:"page_id"`
	LinkData LinkData `json:"link_data"`
}

type LinkData struct {
	Link    string `json:"link"`
	Message string `json:"message"`
}

// Targeting is a free-form Graph targeting spec.
type Targeting map[string]any

// AudienceTargeting returns the targeting of an ad set limited to the
// custom audience audienceID, shallow-merged with overrides. Override keys
// replace base keys, including "custom_audiences".
func AudienceTargeting(audienceID string, overrides Targeting) Targeting {
	t := Targeting{
		"custom_audiences": []map[string]string{{"id": audienceID}},
	}
	maps.Copy(t, overrides)
	return t
}

// CampaignResult bundles the platform responses of the three created
// objects.
type CampaignResult struct {
	Campaign Object `json:"campaign"`
	AdSet    Object `json:"adset"`
	Ad       Object `json:"ad"`
}

// NewCampaign builds the campaign creation body of req.
func (req CampaignRequest) NewCampaign() Campaign {
	return Campaign{
		Name:                req.Name,
		Objective:           req.Objective,
		Status:              req.status(),
		SpecialAdCategories: []string{SpecialAdCategoryNone},
		DailyBudget:         MinorUnits(req.DailyBudget),
	}
}

// NewAdSet builds the ad set creation body of req under campaignID.
func (req CampaignRequest) NewAdSet(campaignID string) AdSet {
	adSet := AdSet{
		Name:             req.Name + " Ad Set",
		CampaignID:       campaignID,
		DailyBudget:      MinorUnits(req.DailyBudget),
		BillingEvent:     BillingEventImpressions,
		OptimizationGoal: req.Objective,
		Targeting:        AudienceTargeting(req.CustomAudienceID, req.Targeting),
		Status:           req.status(),
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
	}
	if !req.BidAmount.IsZero() {
		bid := MinorUnits(req.BidAmount)
		adSet.BidAmount = &bid
	}
	return adSet
}

// NewAd builds the ad creation body of req under adSetID.
func (req CampaignRequest) NewAd(adSetID string) Ad {
	title := req.AdTitle
	if title == "" {
		title = req.Name
	}
	body, message := req.AdMessage, req.AdMessage
	if body == "" {
		body = DefaultAdBody
		message = DefaultLinkMessage
	}
	return Ad{
		Name:    req.Name + " Ad",
		AdSetID: adSetID,
		Status:  req.status(),
		Creative: Creative{
			Title: title,
			Body:  body,
			ObjectStorySpec: ObjectStorySpec{
				PageID: req.PageID,
				LinkData: LinkData{
					Link:    req.AdLink,
					Message: message,
				},
			},
		},
	}
}

func (req CampaignRequest) status() string {
	if req.Status == "" {
		return StatusPaused
	}
	return req.Status
}
