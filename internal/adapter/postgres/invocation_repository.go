package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"meta-ads-mcp/internal/core/domain"
)

// InvocationRepository implements port.InvocationRepository using pgxpool
// for PostgreSQL.
type InvocationRepository struct {
	pool *pgxpool.Pool
}

// NewInvocationRepository returns a new repository instance.
func NewInvocationRepository(pool *pgxpool.Pool) *InvocationRepository {
	return &InvocationRepository{pool: pool}
}

// Save inserts inv. Empty error fields are stored as NULL.
func (r *InvocationRepository) Save(ctx context.Context, inv domain.Invocation) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO tool_invocations
            (id, tool, account_id, outcome, error_kind, error_message, duration_ms, created_at)
        VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8)`,
		inv.ID,
		inv.Tool,
		inv.AccountID,
		inv.Outcome,
		inv.ErrorKind,
		inv.ErrorMessage,
		inv.Duration.Milliseconds(),
		inv.CreatedAt,
	)
	return err
}
