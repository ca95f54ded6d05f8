package cardbank

import (
	"strings"

	"github.com/heartmarshall/studybuddy/internal/domain"
)

// ListCardsInput filters a card listing. Limit 0 means DefaultPageSize.
type ListCardsInput struct {
	Subject string `json:"subject" validate:"omitempty,subject"`
	Limit   int    `json:"limit"   validate:"gte=0,lte=100"`
	Offset  int    `json:"offset"  validate:"gte=0"`
}

func (i ListCardsInput) Validate() error {
	return domain.ValidateStruct(i)
}

// NewCard is one question/answer pair to store.
type NewCard struct {
	Question   string `json:"question"   validate:"required,max=2000"`
	Answer     string `json:"answer"     validate:"required,max=2000"`
	Difficulty string `json:"difficulty" validate:"omitempty,difficulty"`
}

// CreateCardsInput saves a generated deck under one subject.
type CreateCardsInput struct {
	Subject string    `json:"subject" validate:"required,subject"`
	Notes   string    `json:"notes"   validate:"max=10000"`
	Cards   []NewCard `json:"cards"   validate:"required,min=1,max=50,dive"`
}

// Validate trims text fields in place and checks the struct tags.
func (i *CreateCardsInput) Validate() error {
	i.Subject = strings.ToLower(strings.TrimSpace(i.Subject))
	i.Notes = strings.TrimSpace(i.Notes)
	for n := range i.Cards {
		c := &i.Cards[n]
		c.Question = strings.TrimSpace(c.Question)
		c.Answer = strings.TrimSpace(c.Answer)
		c.Difficulty = strings.ToLower(strings.TrimSpace(c.Difficulty))
	}
	return domain.ValidateStruct(i)
}
