package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"meta-ads-mcp/internal/config/configs"
)

const pingTimeout = 5 * time.Second

// NewPostgresPool creates the pool of the audit store. When
// cfg.RunMigrations is set the schema is migrated first. The function
// verifies that a connection can be established by pinging the database.
// If pinging fails, the pool is closed and an error is returned. The
// caller must close the returned pool when it is no longer needed.
func NewPostgresPool(ctx context.Context, cfg configs.Postgres, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.RunMigrations {
		from, err := Migrate(cfg.Addr.String())
		if err != nil {
			return nil, err
		}
		logger.Info("migrations applied", slog.Uint64("from", uint64(from)))
	}

	poolConf, err := pgxpool.ParseConfig(cfg.Addr.String())
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, err
	}

	ctxPing, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err = pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
