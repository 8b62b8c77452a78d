package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string
	ServiceName string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBMaxConns int

	// JWTSecret verifies the HS256 bearer tokens that identify players
	JWTSecret string

	CatalogCacheSize int
	CatalogCacheTTL  time.Duration

	// Per-IP token buckets, held in a bounded expiring cache
	RateLimitRPS       int
	RateLimitBurst     int
	RateLimitCacheSize int
	RateLimitTTL       time.Duration

	// SerializeWeaponUpgrades holds an in-process lock per weapon during an upgrade
	SerializeWeaponUpgrades bool
	MigrateOnStart          bool
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		Version:     getEnv(EnvVersion, DefaultVersion),
		ServiceName: ServiceName,

		DBUser:     getEnv(EnvDBUser, "postgres"),
		DBPassword: getEnv(EnvDBPassword, "postgres"),
		DBHost:     getEnv(EnvDBHost, "localhost"),
		DBPort:     getEnv(EnvDBPort, "5432"),
		DBName:     getEnv(EnvDBName, DefaultDBName),
		DBMaxConns: getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),

		JWTSecret: getEnv(EnvJWTSecret, ""),

		CatalogCacheSize:        getEnvAsInt(EnvCatalogCacheSize, DefaultCatalogCacheSize),
		RateLimitRPS:            getEnvAsInt(EnvRateLimitRPS, DefaultRateLimitRPS),
		RateLimitBurst:          getEnvAsInt(EnvRateLimitBurst, DefaultRateLimitBurst),
		RateLimitCacheSize:      getEnvAsInt(EnvRateLimitCacheSize, DefaultRateLimitCache),
		SerializeWeaponUpgrades: getEnvAsBool(EnvSerializeWeaponUpgrades, false),
		MigrateOnStart:          getEnvAsBool(EnvMigrateOnStart, false),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvPort, err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid %s value: %d out of range", EnvPort, port)
	}
	cfg.Port = port

	ttl, err := time.ParseDuration(getEnv(EnvCatalogCacheTTL, DefaultCatalogCacheTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvCatalogCacheTTL, err)
	}
	cfg.CatalogCacheTTL = ttl

	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 || cfg.RateLimitCacheSize <= 0 {
		return nil, fmt.Errorf("%s, %s and %s must be positive", EnvRateLimitRPS, EnvRateLimitBurst, EnvRateLimitCacheSize)
	}
	limiterTTL, err := time.ParseDuration(getEnv(EnvRateLimitTTL, DefaultRateLimitTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvRateLimitTTL, err)
	}
	if limiterTTL <= 0 {
		return nil, fmt.Errorf("invalid %s value: %s must be positive", EnvRateLimitTTL, limiterTTL)
	}
	cfg.RateLimitTTL = limiterTTL

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%s environment variable must be set for security", EnvJWTSecret)
	}
	if len(cfg.JWTSecret) < MinJWTSecretLength {
		return nil, fmt.Errorf("%s must be at least %d characters", EnvJWTSecret, MinJWTSecretLength)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool parses a boolean variable, falling back to the default when unset or invalid
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// IsDevelopment reports whether the service runs in a development environment
func (c *Config) IsDevelopment() bool {
	switch strings.ToLower(c.Environment) {
	case "dev", "development", "local":
		return true
	}
	return false
}
