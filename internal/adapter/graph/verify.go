package graph

import (
	"context"
	"net/http"
	"net/url"

	"meta-ads-mcp/internal/core/domain"
)

// Me returns the identity the access token belongs to. It is used at
// startup to fail early on a revoked or mistyped token.
func (c *Client) Me(ctx context.Context, token string) (domain.Object, error) {
	query := url.Values{
		"access_token": {token},
		"fields":       {"id,name"},
	}
	return c.Call(ctx, http.MethodGet, "me", query, nil)
}
