package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/UpgradeForge_Go/internal/bootstrap"
	"github.com/osse101/UpgradeForge_Go/internal/config"
	"github.com/osse101/UpgradeForge_Go/internal/database/postgres"
	"github.com/osse101/UpgradeForge_Go/internal/roll"
	"github.com/osse101/UpgradeForge_Go/internal/server"
	"github.com/osse101/UpgradeForge_Go/internal/upgrade"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	l := bootstrap.SetupLogger(cfg)

	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		l.Warn("Environment validation failed", "error", err)
	} else {
		for _, w := range warnings {
			l.Warn(w)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := bootstrap.ConnectDatabase(ctx, cfg)
	if err != nil {
		l.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	upgradeSvc := upgrade.NewService(
		postgres.NewUpgradeRepository(pool),
		roll.NewRoller(nil),
		upgrade.Config{
			CatalogCacheSize: cfg.CatalogCacheSize,
			CatalogCacheTTL:  cfg.CatalogCacheTTL,
			SerializeWeapons: cfg.SerializeWeaponUpgrades,
		},
	)

	srv := server.NewServer(server.Options{
		Port:      cfg.Port,
		JWTSecret: cfg.JWTSecret,
		RateLimit: server.RateLimitOptions{
			RequestsPerSecond: cfg.RateLimitRPS,
			Burst:             cfg.RateLimitBurst,
			CacheSize:         cfg.RateLimitCacheSize,
			TTL:               cfg.RateLimitTTL,
		},
	}, pool, upgradeSvc)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			l.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: pool,
	})
}
