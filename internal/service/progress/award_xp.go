package progress

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/studybuddy/internal/domain"
	"github.com/heartmarshall/studybuddy/pkg/ctxutil"
)

// AwardXP applies an award once per idempotency key. A repeated key leaves
// the total unchanged and returns it with Applied=false.
func (s *Service) AwardXP(ctx context.Context, input AwardXPInput) (domain.XPBalance, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.XPBalance{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.XPBalance{}, err
	}

	now := s.clock.Now().UTC()
	var balance domain.XPBalance

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		inserted, err := s.ledger.InsertEvent(txCtx, domain.XPEvent{
			Key:       input.Key,
			UserID:    userID,
			Amount:    input.Amount,
			Reason:    strings.TrimSpace(input.Reason),
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("record xp event: %w", err)
		}

		if !inserted {
			total, err := s.ledger.GetXP(txCtx, userID)
			if err != nil {
				return fmt.Errorf("get xp: %w", err)
			}
			balance = domain.XPBalance{XP: total}
			return nil
		}

		total, err := s.ledger.AddXP(txCtx, userID, input.Amount, now)
		if err != nil {
			return fmt.Errorf("add xp: %w", err)
		}
		balance = domain.XPBalance{XP: total, Applied: true}
		return nil
	})
	if err != nil {
		return domain.XPBalance{}, err
	}

	s.metrics.ObserveXP(input.Amount, balance.Applied)

	if !balance.Applied {
		s.log.InfoContext(ctx, "duplicate xp award ignored",
			slog.String("idempotency_key", input.Key.String()),
		)
		return balance, nil
	}

	s.log.InfoContext(ctx, "xp awarded",
		slog.Int("amount", input.Amount),
		slog.String("reason", input.Reason),
		slog.Int("xp", balance.XP),
	)
	return balance, nil
}

// PurgeXPEvents drops idempotency records older than the retention window.
func (s *Service) PurgeXPEvents(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, domain.NewValidationError("retention_days", "must be positive")
	}

	cutoff := s.clock.Now().UTC().AddDate(0, 0, -retentionDays)
	n, err := s.ledger.PurgeEventsBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge xp events: %w", err)
	}

	s.log.InfoContext(ctx, "xp events purged",
		slog.Int64("deleted", n),
		slog.Time("cutoff", cutoff),
	)
	return n, nil
}
