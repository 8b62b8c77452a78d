package handler

import "context"

type contextKey string

const playerContextKey contextKey = "player"

// WithPlayer stores the authenticated player on the request context
func WithPlayer(ctx context.Context, player string) context.Context {
	return context.WithValue(ctx, playerContextKey, player)
}

// PlayerFromContext returns the authenticated player, if any
func PlayerFromContext(ctx context.Context) (string, bool) {
	player, ok := ctx.Value(playerContextKey).(string)
	return player, ok && player != ""
}
