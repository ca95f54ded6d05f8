package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studybuddy/internal/domain"
	"github.com/heartmarshall/studybuddy/internal/service/cardbank"
)

type cardService interface {
	List(ctx context.Context, input cardbank.ListCardsInput) (cardbank.Page, error)
	Create(ctx context.Context, input cardbank.CreateCardsInput) ([]domain.BankCard, error)
	MarkReviewed(ctx context.Context, cardID uuid.UUID) (domain.BankCard, error)
	Delete(ctx context.Context, cardID uuid.UUID) error
}

// CardHandler serves the flashcard bank endpoints.
type CardHandler struct {
	svc cardService
	log *slog.Logger
}

func NewCardHandler(svc cardService, logger *slog.Logger) *CardHandler {
	return &CardHandler{svc: svc, log: logger.With("handler", "cards")}
}

type cardResponse struct {
	ID             string     `json:"id"`
	Question       string     `json:"question"`
	Answer         string     `json:"answer"`
	Subject        string     `json:"subject"`
	Difficulty     string     `json:"difficulty"`
	Notes          string     `json:"notes,omitempty"`
	TimesReviewed  int        `json:"times_reviewed"`
	LastReviewedAt *time.Time `json:"last_reviewed_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

type listCardsResponse struct {
	Cards []cardResponse `json:"cards"`
	Total int            `json:"total"`
}

// List handles GET /api/v1/cards?subject=&limit=&offset=.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.svc.List(r.Context(), cardbank.ListCardsInput{
		Subject: r.URL.Query().Get("subject"),
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listCardsResponse{
		Cards: toCardResponses(page.Cards),
		Total: page.Total,
	})
}

// Create handles POST /api/v1/cards.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req cardbank.CreateCardsInput
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	cards, err := h.svc.Create(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, listCardsResponse{
		Cards: toCardResponses(cards),
		Total: len(cards),
	})
}

// Review handles POST /api/v1/cards/{id}/review.
func (h *CardHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	card, err := h.svc.MarkReviewed(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(card))
}

// Delete handles DELETE /api/v1/cards/{id}.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toCardResponse(c domain.BankCard) cardResponse {
	return cardResponse{
		ID:             c.ID.String(),
		Question:       c.Question,
		Answer:         c.Answer,
		Subject:        c.Subject.String(),
		Difficulty:     c.Difficulty.String(),
		Notes:          c.Notes,
		TimesReviewed:  c.TimesReviewed,
		LastReviewedAt: c.LastReviewedAt,
		CreatedAt:      c.CreatedAt,
	}
}

func toCardResponses(cards []domain.BankCard) []cardResponse {
	out := make([]cardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, toCardResponse(c))
	}
	return out
}
