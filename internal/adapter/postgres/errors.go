package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/studybuddy/internal/domain"
)

// MapError converts pgx errors to domain errors, prefixed with the entity and
// its key (key may be empty). Context errors pass through unmapped.
func MapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}

	prefix := entity
	if key != "" {
		prefix = entity + " " + key
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", prefix, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", prefix, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s: %w", prefix, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s: %w", prefix, err)
}
