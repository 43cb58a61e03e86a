package port

import (
	"context"

	"meta-ads-mcp/internal/core/domain"
)

// InvocationRepository persists the audit trail of tool calls.
type InvocationRepository interface {
	Save(ctx context.Context, inv domain.Invocation) error
}
