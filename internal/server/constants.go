package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Not Authorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

// HTTP header names
const (
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRequestID      = "X-Request-ID"
	HeaderRetryAfter     = "Retry-After"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Token settings
const (
	BearerPrefix     = "Bearer "
	SigningAlgorithm = "HS256"
)

// Limits
const (
	MaxRequestBodyBytes      = 1 << 20
	FailedAuthAlertCount     = 5
	ReadHeaderTimeout        = 5 * time.Second
	RateLimitLogFrequency    = 100
	RetryAfterSeconds        = "1"
	DefaultRequestsPerSecond = 5
	DefaultRequestBurst      = 50
	DefaultLimiterCacheSize  = 10000
	DefaultLimiterTTL        = 10 * time.Minute
)

// Paths that are never logged per request
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
	"/swagger/",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
