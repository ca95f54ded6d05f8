// Package deck loads the card deck for a study session.
package deck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/heartmarshall/studybuddy/internal/domain"
)

// cardSource is the remote card deck provider.
type cardSource interface {
	FetchCards(ctx context.Context, subject *domain.Subject) ([]domain.Card, error)
}

// Options tune deck loading.
type Options struct {
	// Shuffle randomizes the order of the delivered deck.
	Shuffle bool
	// Rand is the shuffle source. Nil uses the global source.
	Rand *rand.Rand
}

// Deck is a loaded card sequence.
type Deck struct {
	Cards []domain.Card
	// Fallback is set when the cards came from the local sample deck.
	Fallback bool
}

// Service loads decks from a card source with a local fallback.
type Service struct {
	log    *slog.Logger
	source cardSource
	opts   Options
}

// NewService creates a deck Service. A nil source always serves the sample deck.
func NewService(log *slog.Logger, source cardSource, opts Options) *Service {
	return &Service{
		log:    log.With("service", "deck"),
		source: source,
		opts:   opts,
	}
}

// Load returns the deck for subject (nil means every subject). When the
// source is unavailable the sample deck is served instead. Cards failing
// validation are dropped. ErrEmptyDeck is returned when nothing is left.
func (s *Service) Load(ctx context.Context, subject *domain.Subject) (Deck, error) {
	if subject != nil && !subject.IsValid() {
		return Deck{}, domain.NewValidationError("subject", "unknown subject")
	}

	d, err := s.fetch(ctx, subject)
	if err != nil {
		return Deck{}, err
	}

	d.Cards = s.validCards(ctx, d.Cards)
	if len(d.Cards) == 0 {
		return Deck{}, fmt.Errorf("load deck: %w", domain.ErrEmptyDeck)
	}

	if s.opts.Shuffle {
		s.shuffle(d.Cards)
	}

	s.log.DebugContext(ctx, "deck loaded",
		slog.Int("cards", len(d.Cards)),
		slog.Bool("fallback", d.Fallback),
	)
	return d, nil
}

func (s *Service) fetch(ctx context.Context, subject *domain.Subject) (Deck, error) {
	if s.source == nil {
		return Deck{Cards: SampleDeck(subject), Fallback: true}, nil
	}

	cards, err := s.source.FetchCards(ctx, subject)
	if err == nil {
		return Deck{Cards: cards}, nil
	}
	if !errors.Is(err, domain.ErrSourceUnavailable) {
		return Deck{}, fmt.Errorf("fetch cards: %w", err)
	}

	s.log.WarnContext(ctx, "card source unavailable, using sample deck",
		slog.String("error", err.Error()),
	)
	return Deck{Cards: SampleDeck(subject), Fallback: true}, nil
}

func (s *Service) validCards(ctx context.Context, cards []domain.Card) []domain.Card {
	out := make([]domain.Card, 0, len(cards))
	for i, c := range cards {
		if err := c.Validate(); err != nil {
			s.log.WarnContext(ctx, "dropping invalid card",
				slog.Int("index", i),
				slog.String("error", err.Error()),
			)
			continue
		}
		out = append(out, c)
	}
	return out
}

func (s *Service) shuffle(cards []domain.Card) {
	swap := func(i, j int) { cards[i], cards[j] = cards[j], cards[i] }
	if s.opts.Rand != nil {
		s.opts.Rand.Shuffle(len(cards), swap)
		return
	}
	rand.Shuffle(len(cards), swap)
}
