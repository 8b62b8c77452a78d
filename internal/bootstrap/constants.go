package bootstrap

import "time"

// Database pool tuning
const (
	DBMaxConnIdleTime = 5 * time.Minute
	DBMaxConnLifetime = 30 * time.Minute
)

// ShutdownTimeout bounds graceful shutdown
const ShutdownTimeout = 10 * time.Second

// Log messages for startup and shutdown
const (
	LogMsgStarting             = "Starting UpgradeForge"
	LogMsgConfigurationLoaded  = "Configuration loaded"
	LogMsgRunningMigrations    = "Running database migrations"
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabase      = "Closing database pool"
	LogMsgServerStopped        = "Server stopped"
)
