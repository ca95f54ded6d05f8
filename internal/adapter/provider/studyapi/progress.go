package studyapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/heartmarshall/studybuddy/internal/domain"
)

// PushXP delivers an XP award. The award key travels as Idempotency-Key so
// repeated deliveries are applied once. Every failure wraps
// domain.ErrSyncFailure; rejected requests additionally wrap the sentinel
// matching the status (validation, unauthorized).
func (c *Client) PushXP(ctx context.Context, award domain.XPAward) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/v1/xp", awardXPRequest{
		Amount: award.Amount,
		Reason: award.Reason,
	})
	if err != nil {
		return fmt.Errorf("studyapi: %w: %w", domain.ErrSyncFailure, err)
	}
	req.Header.Set(headerIdempotencyKey, award.Key.String())

	if err := c.do(req, false, nil); err != nil {
		return fmt.Errorf("studyapi: push xp: %w: %w", domain.ErrSyncFailure, err)
	}
	return nil
}

// FetchStats returns the user's stats as recorded by the server.
func (c *Client) FetchStats(ctx context.Context) (domain.UserStats, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/v1/stats", nil)
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("studyapi: %w", err)
	}

	var body statsResponse
	if err := c.do(req, true, &body); err != nil {
		return domain.UserStats{}, fmt.Errorf("studyapi: fetch stats: %w", err)
	}

	return domain.UserStats{
		Level:      body.Level,
		XP:         body.XP,
		Streak:     body.Streak,
		TotalCards: body.TotalCards,
	}, nil
}

// LogSession records a finished session.
func (c *Client) LogSession(ctx context.Context, summary domain.SessionSummary) error {
	subject := domain.SubjectOther
	if summary.Subject != nil {
		subject = *summary.Subject
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/v1/sessions", logSessionRequest{
		Subject:         subject.String(),
		CardsStudied:    summary.CardsStudied,
		CorrectAnswers:  summary.CorrectAnswers,
		SessionXP:       summary.SessionXP,
		DurationSeconds: summary.ElapsedSeconds(),
	})
	if err != nil {
		return fmt.Errorf("studyapi: %w", err)
	}

	if err := c.do(req, false, nil); err != nil {
		return fmt.Errorf("studyapi: log session: %w", err)
	}
	return nil
}
