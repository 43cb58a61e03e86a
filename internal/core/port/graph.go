package port

import (
	"context"
	"net/url"

	"meta-ads-mcp/internal/core/domain"
)

// GraphAPI is the outbound port to the Graph API. Call issues a single
// request and returns the decoded response object.
//
// A request that could not complete, or whose answer carries no JSON,
// fails with *domain.TransportError. A response carrying an "error" object
// fails with *domain.PlatformError. Implementations do not retry.
type GraphAPI interface {
	Call(ctx context.Context, method, path string, query url.Values, body any) (domain.Object, error)
}
