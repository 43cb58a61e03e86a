package port

import (
	"context"

	"meta-ads-mcp/internal/core/domain"
)

// CampaignUseCase creates a campaign, an ad set and an ad in that order.
type CampaignUseCase interface {
	// CreateAdCampaign runs the three creation calls. It stops at the first
	// failing step. Objects created before the failure are left in place.
	CreateAdCampaign(ctx context.Context, req domain.CampaignRequest) (*domain.CampaignResult, error)
}
