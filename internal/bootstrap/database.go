package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/UpgradeForge_Go/internal/config"
	"github.com/osse101/UpgradeForge_Go/internal/database"
)

// ConnectDatabase opens the connection pool and applies migrations when enabled
func ConnectDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, DBMaxConnIdleTime, DBMaxConnLifetime)
	if err != nil {
		return nil, err
	}

	if cfg.MigrateOnStart {
		slog.Info(LogMsgRunningMigrations)
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}

	return pool, nil
}
