package studyapi

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/studybuddy/internal/domain"
)

type cardJSON struct {
	ID         uuid.UUID `json:"id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Subject    string    `json:"subject"`
	Difficulty string    `json:"difficulty"`
}

type listCardsResponse struct {
	Cards []cardJSON `json:"cards"`
	Total int        `json:"total"`
}

type awardXPRequest struct {
	Amount int    `json:"amount"`
	Reason string `json:"reason"`
}

type statsResponse struct {
	Level      int `json:"level"`
	XP         int `json:"xp"`
	Streak     int `json:"streak"`
	TotalCards int `json:"total_cards"`
}

type logSessionRequest struct {
	Subject         string `json:"subject"`
	CardsStudied    int    `json:"cards_studied"`
	CorrectAnswers  int    `json:"correct_answers"`
	SessionXP       int    `json:"session_xp"`
	DurationSeconds int    `json:"duration_seconds"`
}

func (c cardJSON) toDomain() domain.Card {
	return domain.Card{
		ID:         c.ID,
		Question:   c.Question,
		Answer:     c.Answer,
		Subject:    domain.Subject(c.Subject),
		Difficulty: domain.Difficulty(c.Difficulty),
	}
}
