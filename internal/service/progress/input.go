package progress

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/studybuddy/internal/domain"
)

// AwardXPInput is a client XP award. Key makes retried deliveries idempotent.
type AwardXPInput struct {
	Key    uuid.UUID
	Amount int
	Reason string
}

// Validate checks all fields and collects all errors.
func (i AwardXPInput) Validate() error {
	var errs []domain.FieldError

	if i.Key == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "idempotency_key", Message: "required"})
	}
	if i.Amount < 0 {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must not be negative"})
	}
	if i.Amount > MaxAwardAmount {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "max 1000"})
	}
	reason := strings.TrimSpace(i.Reason)
	if reason == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
	}
	if len(reason) > 200 {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LogSessionInput is a finished study session reported by a client.
type LogSessionInput struct {
	Subject         string `json:"subject"          validate:"omitempty,subject"`
	CardsStudied    int    `json:"cards_studied"    validate:"gte=0,lte=10000"`
	CorrectAnswers  int    `json:"correct_answers"  validate:"gte=0,ltefield=CardsStudied"`
	SessionXP       int    `json:"session_xp"       validate:"gte=0"`
	DurationSeconds int    `json:"duration_seconds" validate:"gte=0,lte=86400"`
}

// Validate checks the struct tags.
func (i LogSessionInput) Validate() error {
	return domain.ValidateStruct(i)
}
