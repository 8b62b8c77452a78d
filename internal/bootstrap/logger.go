package bootstrap

import (
	"log/slog"

	"github.com/osse101/UpgradeForge_Go/internal/config"
	"github.com/osse101/UpgradeForge_Go/internal/logger"
)

// SetupLogger initializes the default logger from the application config and
// logs the startup banner
func SetupLogger(cfg *config.Config) *slog.Logger {
	l := logger.Init(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	))

	l.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	l.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"catalog_cache_size", cfg.CatalogCacheSize,
		"catalog_cache_ttl", cfg.CatalogCacheTTL,
		"serialize_weapon_upgrades", cfg.SerializeWeaponUpgrades)

	return l
}
