package postgres

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/UpgradeForge_Go/internal/domain"
)

// parseID parses an opaque id into a uuid.UUID.
// A malformed id can never match a row, so it is reported as not found.
func parseID(id, msg string) (uuid.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s %q: %w", msg, id, domain.ErrNotFound)
	}
	return u, nil
}

// notFoundOr maps pgx.ErrNoRows to the domain sentinel and wraps anything else
func notFoundOr(err error, notFound error, msg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
