package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"meta-ads-mcp/internal/core/domain"
	"meta-ads-mcp/internal/core/port"
)

// AudienceUseCase implements port.AudienceUseCase on top of the Graph API.
type AudienceUseCase struct {
	graph  port.GraphAPI
	creds  port.CredentialProvider
	logger *slog.Logger
}

// NewAudienceUseCase creates a new usecase issuing calls through graph
// with the token of creds.
func NewAudienceUseCase(graph port.GraphAPI, creds port.CredentialProvider, logger *slog.Logger) *AudienceUseCase {
	return &AudienceUseCase{graph: graph, creds: creds, logger: logger}
}

// CreateCustomAudience creates a customer-file audience in the ad account
// and uploads the hashed phones of req.HashedContent to it. It returns the
// upload response.
func (u *AudienceUseCase) CreateCustomAudience(ctx context.Context, req domain.AudienceRequest) (domain.Object, error) {
	token, err := u.creds.Resolve()
	if err != nil {
		return nil, err
	}
	account := domain.NormalizeAccountID(req.AccountID)

	audience, err := u.graph.Call(ctx, http.MethodPost, account+"/customaudiences",
		tokenQuery(token, nil), domain.NewCustomAudience(req.Name, req.Description))
	if err != nil {
		return nil, fmt.Errorf("failed to create custom audience: %w", err)
	}
	audienceID := audience.ID()
	if audienceID == "" {
		return nil, fmt.Errorf("failed to create custom audience: %w", errMissingID)
	}

	hashes := domain.ParseHashedPhones(req.HashedContent)
	u.logger.Info("custom audience created",
		slog.String("account_id", account),
		slog.String("audience_id", audienceID),
		slog.Int("rows", len(hashes)),
	)

	resp, err := u.graph.Call(ctx, http.MethodPost, audienceID+"/users",
		tokenQuery(token, nil), domain.NewPhoneUpload(hashes))
	if err != nil {
		return nil, fmt.Errorf("failed to add users to custom audience: %w", err)
	}
	return resp, nil
}
