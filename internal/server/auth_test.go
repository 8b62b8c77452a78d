package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/UpgradeForge_Go/internal/handler"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func playerToken(t *testing.T, player string) string {
	t.Helper()
	return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.RegisteredClaims{
		Subject:   player,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
}

func TestPlayerAuthMiddleware(t *testing.T) {
	hour := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantPlayer string
	}{
		{
			name:       "valid token",
			header:     BearerPrefix + playerToken(t, "alice"),
			wantStatus: http.StatusOK,
			wantPlayer: "alice",
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "wrong secret",
			header: BearerPrefix + signToken(t, jwt.SigningMethodHS256, []byte("another-secret-another-secret-00"),
				jwt.RegisteredClaims{Subject: "alice", ExpiresAt: hour}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "expired",
			header: BearerPrefix + signToken(t, jwt.SigningMethodHS256, []byte(testSecret),
				jwt.RegisteredClaims{Subject: "alice", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "no expiry",
			header: BearerPrefix + signToken(t, jwt.SigningMethodHS256, []byte(testSecret),
				jwt.RegisteredClaims{Subject: "alice"}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "no subject",
			header: BearerPrefix + signToken(t, jwt.SigningMethodHS256, []byte(testSecret),
				jwt.RegisteredClaims{ExpiresAt: hour}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "other algorithm",
			header: BearerPrefix + signToken(t, jwt.SigningMethodHS512, []byte(testSecret),
				jwt.RegisteredClaims{Subject: "alice", ExpiresAt: hour}),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewSuspiciousActivityDetector(DefaultRateLimitOptions())
			var gotPlayer string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPlayer, _ = handler.PlayerFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("POST", "/api/v1/upgrade", nil)
			req.RemoteAddr = "10.0.0.1:5555"
			if tt.header != "" {
				req.Header.Set(HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			PlayerAuthMiddleware(testSecret, nil, detector)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantPlayer, gotPlayer)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"status":401,"message":"Not Authorized"}`, rec.Body.String())
				assert.Equal(t, 1, detector.failedAuthCount("10.0.0.1"))
			}
		})
	}
}
