// Package cardbank manages a user's stored flashcards.
package cardbank

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studybuddy/internal/domain"
	"github.com/heartmarshall/studybuddy/pkg/clock"
)

type cardRepo interface {
	List(ctx context.Context, userID uuid.UUID, filter domain.CardFilter) ([]domain.BankCard, error)
	CountBySubject(ctx context.Context, userID uuid.UUID) ([]domain.SubjectCount, error)
	CreateBatch(ctx context.Context, cards []domain.BankCard) error
	MarkReviewed(ctx context.Context, userID, cardID uuid.UUID, at time.Time) (domain.BankCard, error)
	Delete(ctx context.Context, userID, cardID uuid.UUID) error
}

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
	MaxCardsPerSave = 50
)

// Service provides card bank operations.
type Service struct {
	log   *slog.Logger
	cards cardRepo
	clock clock.Clock
}

func NewService(log *slog.Logger, cards cardRepo, clk clock.Clock) *Service {
	return &Service{
		log:   log.With("service", "cardbank"),
		cards: cards,
		clock: clk,
	}
}

// Page is one page of a card listing.
type Page struct {
	Cards []domain.BankCard
	Total int
}
