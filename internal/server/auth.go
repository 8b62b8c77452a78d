package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/osse101/UpgradeForge_Go/internal/handler"
	"github.com/osse101/UpgradeForge_Go/internal/logger"
)

var (
	errMissingToken = errors.New("missing bearer token")
	errNoSubject    = errors.New("token has no subject")
)

// PlayerAuthMiddleware authenticates the player from an HS256 bearer token.
// The token subject is the player's username.
func PlayerAuthMiddleware(secret string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	key := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{SigningAlgorithm}), jwt.WithExpirationRequired())

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			player, err := playerFromRequest(r, parser, key)
			if err != nil {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"ip", ip,
					"error", err)

				respondUnauthorized(w)
				return
			}

			ctx := handler.WithPlayer(r.Context(), player)
			ctx = logger.WithPlayer(ctx, player)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func playerFromRequest(r *http.Request, parser *jwt.Parser, key []byte) (string, error) {
	header := r.Header.Get(HeaderAuthorization)
	if !strings.HasPrefix(header, BearerPrefix) {
		return "", errMissingToken
	}

	claims := &jwt.RegisteredClaims{}
	_, err := parser.ParseWithClaims(strings.TrimPrefix(header, BearerPrefix), claims, func(*jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil {
		return "", err
	}

	if claims.Subject == "" {
		return "", errNoSubject
	}
	return claims.Subject, nil
}

func respondUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"status":401,"message":"` + ErrMsgUnauthorized + `"}` + "\n"))
}
