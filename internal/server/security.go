package server

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitOptions sizes the per-IP token buckets and the cache that holds them
type RateLimitOptions struct {
	RequestsPerSecond int
	Burst             int
	// CacheSize caps how many client IPs are tracked at once
	CacheSize         int
	// TTL drops a client's bucket and failed-auth count after this long
	TTL               time.Duration
}

// DefaultRateLimitOptions returns the limits used when none are configured
func DefaultRateLimitOptions() RateLimitOptions {
	return RateLimitOptions{
		RequestsPerSecond: DefaultRequestsPerSecond,
		Burst:             DefaultRequestBurst,
		CacheSize:         DefaultLimiterCacheSize,
		TTL:               DefaultLimiterTTL,
	}
}

// SuspiciousActivityDetector rate limits clients by IP and flags repeated
// failed logins. Both are kept in bounded expiring caches, so the least
// recently seen client is evicted once CacheSize is reached.
type SuspiciousActivityDetector struct {
	opts RateLimitOptions

	mu         sync.Mutex
	limiters   *expirable.LRU[string, *rate.Limiter]
	failedAuth *expirable.LRU[string, int]

	rejectAlerts rate.Sometimes
}

// NewSuspiciousActivityDetector creates a detector. Each one runs cache
// janitors for the life of the process, so build it once per router.
func NewSuspiciousActivityDetector(opts RateLimitOptions) *SuspiciousActivityDetector {
	defaults := DefaultRateLimitOptions()
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = defaults.RequestsPerSecond
	}
	if opts.Burst <= 0 {
		opts.Burst = defaults.Burst
	}
	// expirable treats a zero size as unbounded
	if opts.CacheSize <= 0 {
		opts.CacheSize = defaults.CacheSize
	}
	if opts.TTL <= 0 {
		opts.TTL = defaults.TTL
	}

	return &SuspiciousActivityDetector{
		opts:         opts,
		limiters:     expirable.NewLRU[string, *rate.Limiter](opts.CacheSize, nil, opts.TTL),
		failedAuth:   expirable.NewLRU[string, int](opts.CacheSize, nil, opts.TTL),
		rejectAlerts: rate.Sometimes{First: 1, Every: RateLimitLogFrequency},
	}
}

// RecordFailedAuth records a failed authentication attempt
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	count, _ := s.failedAuth.Get(ip)
	count++
	s.failedAuth.Add(ip, count)
	s.mu.Unlock()

	if count >= FailedAuthAlertCount {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
}

// Allow takes a token from the client's bucket and reports whether the
// request may proceed
func (s *SuspiciousActivityDetector) Allow(ip string) bool {
	if s.limiter(ip).Allow() {
		return true
	}
	s.rejectAlerts.Do(func() {
		slog.Warn(SecurityAlertHighRate, "ip", ip)
	})
	return false
}

// limiter returns the bucket for ip, creating a full one on first sight
func (s *SuspiciousActivityDetector) limiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if lim, ok := s.limiters.Get(ip); ok {
		return lim
	}
	lim := rate.NewLimiter(rate.Limit(s.opts.RequestsPerSecond), s.opts.Burst)
	s.limiters.Add(ip, lim)
	return lim
}

// failedAuthCount returns the failed logins remembered for ip
func (s *SuspiciousActivityDetector) failedAuthCount(ip string) int {
	count, _ := s.failedAuth.Peek(ip)
	return count
}

// tracked returns how many client buckets are cached
func (s *SuspiciousActivityDetector) tracked() int {
	return s.limiters.Len()
}

// SecurityLoggingMiddleware enforces the per-IP request rate
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)

			if !detector.Allow(ip) {
				w.Header().Set(HeaderRetryAfter, RetryAfterSeconds)
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	// Get remote IP (direct connection)
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	// Check if remote IP is a trusted proxy
	isTrusted := false
	for _, proxy := range trustedProxies {
		if proxy == remoteIP {
			isTrusted = true
			break
		}
	}

	// Only check X-Forwarded-For if trusted
	if isTrusted {
		forwarded := r.Header.Get(HeaderForwardedFor)
		if forwarded != "" {
			// Rightmost entry is the hop that reached the trusted proxy
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Prevent MIME sniffing
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			// Prevent clickjacking
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			// Enable XSS protection (for older browsers)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			// Control referrer information
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
