package config

// Environment variable names
const (
	EnvPort                    = "PORT"
	EnvLogLevel                = "LOG_LEVEL"
	EnvLogFormat               = "LOG_FORMAT"
	EnvEnvironment             = "ENVIRONMENT"
	EnvVersion                 = "VERSION"
	EnvDBUser                  = "DB_USER"
	EnvDBPassword              = "DB_PASSWORD"
	EnvDBHost                  = "DB_HOST"
	EnvDBPort                  = "DB_PORT"
	EnvDBName                  = "DB_NAME"
	EnvDBMaxConns              = "DB_MAX_CONNS"
	EnvJWTSecret               = "JWT_SECRET"
	EnvCatalogCacheSize        = "CATALOG_CACHE_SIZE"
	EnvCatalogCacheTTL         = "CATALOG_CACHE_TTL"
	EnvSerializeWeaponUpgrades = "SERIALIZE_WEAPON_UPGRADES"
	EnvRateLimitRPS            = "RATE_LIMIT_RPS"
	EnvRateLimitBurst          = "RATE_LIMIT_BURST"
	EnvRateLimitCacheSize      = "RATE_LIMIT_CACHE_SIZE"
	EnvRateLimitTTL            = "RATE_LIMIT_TTL"
	EnvMigrateOnStart          = "MIGRATE_ON_START"
	EnvEnvSchemaVersion        = "ENV_SCHEMA_VERSION"
)

// Defaults
const (
	DefaultPort             = 8080
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultVersion          = "dev"
	DefaultDBName           = "upgradeforge"
	DefaultDBMaxConns       = 10
	DefaultCatalogCacheSize = 256
	DefaultCatalogCacheTTL  = "30m"
	DefaultRateLimitRPS     = 5
	DefaultRateLimitBurst   = 50
	DefaultRateLimitCache   = 10000
	DefaultRateLimitTTL     = "10m"
	ServiceName             = "upgrade-forge"
)

// MinJWTSecretLength is the shortest HS256 secret accepted
const MinJWTSecretLength = 32
