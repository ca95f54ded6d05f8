package cardbank

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studybuddy/internal/domain"
	"github.com/heartmarshall/studybuddy/pkg/ctxutil"
)

// List returns a page of the caller's cards, newest first.
func (s *Service) List(ctx context.Context, input ListCardsInput) (Page, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Page{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return Page{}, err
	}

	filter := domain.CardFilter{Limit: input.Limit, Offset: input.Offset}
	if filter.Limit == 0 {
		filter.Limit = DefaultPageSize
	}
	if input.Subject != "" {
		subject := domain.Subject(input.Subject)
		filter.Subject = &subject
	}

	cards, err := s.cards.List(ctx, userID, filter)
	if err != nil {
		return Page{}, fmt.Errorf("list cards: %w", err)
	}

	counts, err := s.cards.CountBySubject(ctx, userID)
	if err != nil {
		return Page{}, fmt.Errorf("count cards: %w", err)
	}

	page := Page{Cards: cards}
	for _, c := range counts {
		if filter.Subject == nil || c.Subject == *filter.Subject {
			page.Total += c.Count
		}
	}
	return page, nil
}

// Create stores a batch of cards under one subject. Missing difficulties
// default to medium.
func (s *Service) Create(ctx context.Context, input CreateCardsInput) ([]domain.BankCard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	cards := make([]domain.BankCard, len(input.Cards))
	for i, c := range input.Cards {
		difficulty := domain.DifficultyMedium
		if c.Difficulty != "" {
			difficulty = domain.Difficulty(c.Difficulty)
		}
		cards[i] = domain.BankCard{
			Card: domain.Card{
				ID:         uuid.New(),
				Question:   c.Question,
				Answer:     c.Answer,
				Subject:    domain.Subject(input.Subject),
				Difficulty: difficulty,
			},
			UserID:    userID,
			Notes:     input.Notes,
			CreatedAt: now,
		}
	}

	if err := s.cards.CreateBatch(ctx, cards); err != nil {
		return nil, fmt.Errorf("create cards: %w", err)
	}

	s.log.InfoContext(ctx, "cards saved",
		slog.String("subject", input.Subject),
		slog.Int("count", len(cards)),
	)
	return cards, nil
}

// MarkReviewed records a review of one card.
func (s *Service) MarkReviewed(ctx context.Context, cardID uuid.UUID) (domain.BankCard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.BankCard{}, domain.ErrUnauthorized
	}
	if cardID == uuid.Nil {
		return domain.BankCard{}, domain.NewValidationError("card_id", "required")
	}

	card, err := s.cards.MarkReviewed(ctx, userID, cardID, s.clock.Now().UTC())
	if err != nil {
		return domain.BankCard{}, fmt.Errorf("mark reviewed: %w", err)
	}
	return card, nil
}

// Delete removes one card.
func (s *Service) Delete(ctx context.Context, cardID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if cardID == uuid.Nil {
		return domain.NewValidationError("card_id", "required")
	}

	if err := s.cards.Delete(ctx, userID, cardID); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	s.log.InfoContext(ctx, "card deleted", slog.String("card_id", cardID.String()))
	return nil
}
