package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"meta-ads-mcp/internal/core/domain"
	"meta-ads-mcp/internal/core/port"
)

// CampaignUseCase implements port.CampaignUseCase. It creates a campaign,
// an ad set targeting a custom audience and a single ad, each step feeding
// the id it obtained into the next.
type CampaignUseCase struct {
	graph  port.GraphAPI
	creds  port.CredentialProvider
	logger *slog.Logger
}

// NewCampaignUseCase creates a new usecase issuing calls through graph
// with the token of creds.
func NewCampaignUseCase(graph port.GraphAPI, creds port.CredentialProvider, logger *slog.Logger) *CampaignUseCase {
	return &CampaignUseCase{graph: graph, creds: creds, logger: logger}
}

// CreateAdCampaign runs the three creation calls in order and stops at the
// first failure. Nothing created before the failure is deleted; the ids
// left behind are logged.
func (u *CampaignUseCase) CreateAdCampaign(ctx context.Context, req domain.CampaignRequest) (*domain.CampaignResult, error) {
	token, err := u.creds.Resolve()
	if err != nil {
		return nil, err
	}
	account := domain.NormalizeAccountID(req.AccountID)

	campaign, err := u.create(ctx, account+"/campaigns", tokenQuery(token, req.CampaignFields), req.NewCampaign())
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	adSet, err := u.create(ctx, account+"/adsets", tokenQuery(token, req.AdSetFields), req.NewAdSet(campaign.ID()))
	if err != nil {
		u.logger.Warn("campaign left without ad set",
			slog.String("account_id", account),
			slog.String("campaign_id", campaign.ID()),
		)
		return nil, fmt.Errorf("failed to create ad set: %w", err)
	}

	ad, err := u.create(ctx, account+"/ads", tokenQuery(token, req.AdFields), req.NewAd(adSet.ID()))
	if err != nil {
		u.logger.Warn("campaign left without ad",
			slog.String("account_id", account),
			slog.String("campaign_id", campaign.ID()),
			slog.String("adset_id", adSet.ID()),
		)
		return nil, fmt.Errorf("failed to create ad: %w", err)
	}

	u.logger.Info("ad campaign created",
		slog.String("account_id", account),
		slog.String("campaign_id", campaign.ID()),
		slog.String("adset_id", adSet.ID()),
		slog.String("ad_id", ad.ID()),
	)
	return &domain.CampaignResult{Campaign: campaign, AdSet: adSet, Ad: ad}, nil
}

// create posts body to path and requires an id in the response.
func (u *CampaignUseCase) create(ctx context.Context, path string, query url.Values, body any) (domain.Object, error) {
	obj, err := u.graph.Call(ctx, http.MethodPost, path, query, body)
	if err != nil {
		return nil, err
	}
	if obj.ID() == "" {
		return nil, errMissingID
	}
	return obj, nil
}
