package port

import (
	"context"

	"meta-ads-mcp/internal/core/domain"
)

// AudienceUseCase creates custom audiences from hashed contact data.
type AudienceUseCase interface {
	// CreateCustomAudience creates the audience container and then uploads
	// the hashed phone identifiers parsed from req.HashedContent. It
	// returns the upload response. The upload is never attempted when
	// creating the container failed.
	CreateCustomAudience(ctx context.Context, req domain.AudienceRequest) (domain.Object, error)
}
