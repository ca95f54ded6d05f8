package studyapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/heartmarshall/studybuddy/internal/domain"
)

// maxDeckSize is the largest page the server hands out.
const maxDeckSize = 100

// FetchCards returns the user's cards, optionally filtered by subject.
// Unreachable servers, 5xx responses and malformed bodies are reported as
// domain.ErrSourceUnavailable. Cards are returned as delivered; validation is
// left to the caller.
func (c *Client) FetchCards(ctx context.Context, subject *domain.Subject) ([]domain.Card, error) {
	q := url.Values{}
	q.Set("limit", fmt.Sprint(maxDeckSize))
	if subject != nil {
		q.Set("subject", subject.String())
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/api/v1/cards?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("studyapi: %w", err)
	}

	var body listCardsResponse
	if err := c.do(req, true, &body); err != nil {
		if isTransport(err) {
			return nil, fmt.Errorf("studyapi: fetch cards: %w: %w", domain.ErrSourceUnavailable, err)
		}
		return nil, fmt.Errorf("studyapi: fetch cards: %w", err)
	}

	cards := make([]domain.Card, 0, len(body.Cards))
	for _, cj := range body.Cards {
		cards = append(cards, cj.toDomain())
	}

	c.log.DebugContext(ctx, "studyapi cards fetched",
		slog.Int("cards", len(cards)),
		slog.Int("total", body.Total),
	)
	return cards, nil
}
