package domain

import (
	"time"

	"github.com/google/uuid"
)

// Card is a single question/answer pair delivered to a study session.
// ID is zero for cards that never came from the card bank (the sample deck).
type Card struct {
	ID         uuid.UUID
	Question   string     `validate:"required,max=2000"`
	Answer     string     `validate:"required,max=2000"`
	Subject    Subject    `validate:"subject"`
	Difficulty Difficulty `validate:"difficulty"`
}

// XPValue returns the XP awarded for answering this card correctly.
func (c Card) XPValue() int {
	return c.Difficulty.XPValue()
}

// Validate checks the card fields delivered by a deck source.
func (c Card) Validate() error {
	return ValidateStruct(c)
}

// BankCard is a card stored in a user's flashcard bank.
type BankCard struct {
	Card
	UserID         uuid.UUID
	Notes          string
	TimesReviewed  int
	LastReviewedAt *time.Time
	CreatedAt      time.Time
}

// CardFilter narrows a card bank listing.
type CardFilter struct {
	Subject *Subject
	Limit   int
	Offset  int
}
