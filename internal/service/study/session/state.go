// Package session holds the study session state and its transitions.
//
// State is a value. Every transition takes the current State and returns the
// next one, leaving the receiver untouched, so a rejected operation can never
// leave a half-applied session behind.
package session

import (
	"fmt"
	"slices"
	"time"

	"github.com/heartmarshall/studybuddy/internal/domain"
	"github.com/heartmarshall/studybuddy/internal/service/study/xp"
)

// State is one study attempt over a fixed deck.
type State struct {
	Status  domain.SessionStatus
	Subject *domain.Subject
	Cards   []domain.Card

	// Cursor indexes the current card. It only moves forward and equals
	// len(Cards) once the deck is exhausted.
	Cursor   int
	Revealed bool

	CardsStudied   int
	CorrectAnswers int

	StartTime time.Time
	PausedAt  time.Time
	PausedFor time.Duration
}

// Outcome describes the effect of a single answer.
type Outcome struct {
	Card     domain.Card
	Correct  bool
	XP       int
	Finished bool
}

// Idle returns the initial state.
func Idle() State {
	return State{Status: domain.SessionStatusIdle}
}

// Start begins a session over cards at now. The deck is copied.
func Start(cards []domain.Card, subject *domain.Subject, now time.Time) (State, error) {
	if len(cards) == 0 {
		return State{}, domain.ErrEmptyDeck
	}
	return State{
		Status:    domain.SessionStatusActive,
		Subject:   subject,
		Cards:     slices.Clone(cards),
		StartTime: now,
	}, nil
}

// Current returns the card awaiting an answer, if any.
func (s State) Current() (domain.Card, bool) {
	if !s.Status.IsLive() || s.Cursor >= len(s.Cards) {
		return domain.Card{}, false
	}
	return s.Cards[s.Cursor], true
}

// Remaining returns how many cards are still unanswered.
func (s State) Remaining() int {
	if s.Cursor >= len(s.Cards) {
		return 0
	}
	return len(s.Cards) - s.Cursor
}

// Pause freezes an active session.
func (s State) Pause(now time.Time) (State, error) {
	if s.Status != domain.SessionStatusActive {
		return s, domain.NewStateError("pause", s.status())
	}
	s.Status = domain.SessionStatusPaused
	s.PausedAt = now
	return s, nil
}

// Resume continues a paused session. StartTime is left as is.
func (s State) Resume(now time.Time) (State, error) {
	if s.Status != domain.SessionStatusPaused {
		return s, domain.NewStateError("resume", s.status())
	}
	if now.After(s.PausedAt) {
		s.PausedFor += now.Sub(s.PausedAt)
	}
	s.Status = domain.SessionStatusActive
	s.PausedAt = time.Time{}
	return s, nil
}

// Reveal toggles the answer visibility of the current card.
func (s State) Reveal() (State, error) {
	if s.Status != domain.SessionStatusActive {
		return s, domain.NewStateError("reveal answer", s.status())
	}
	if _, ok := s.Current(); !ok {
		return s, &domain.StateError{Op: "reveal answer", Status: s.Status, Reason: "no card pending"}
	}
	s.Revealed = !s.Revealed
	return s, nil
}

// Answer scores the current card and moves the cursor forward. The answer
// must have been revealed first. Outcome.Finished is set when the deck is
// exhausted; the caller is expected to end the session then.
func (s State) Answer(correct bool) (State, Outcome, error) {
	if s.Status != domain.SessionStatusActive {
		return s, Outcome{}, domain.NewStateError("answer", s.status())
	}
	card, ok := s.Current()
	if !ok {
		return s, Outcome{}, &domain.StateError{Op: "answer", Status: s.Status, Reason: "no card pending"}
	}
	if !s.Revealed {
		return s, Outcome{}, &domain.StateError{Op: "answer", Status: s.Status, Reason: "answer not revealed"}
	}

	out := Outcome{Card: card, Correct: correct}

	s.CardsStudied++
	if correct {
		s.CorrectAnswers++
		out.XP = card.XPValue()
	}
	s.Cursor++
	s.Revealed = false
	out.Finished = s.Cursor >= len(s.Cards)

	return s, out, nil
}

// Elapsed returns the session duration at now. Paused time is counted unless
// excludePaused is set.
func (s State) Elapsed(now time.Time, excludePaused bool) time.Duration {
	if s.StartTime.IsZero() {
		return 0
	}

	d := now.Sub(s.StartTime)
	if excludePaused {
		d -= s.PausedFor
		if s.Status == domain.SessionStatusPaused && now.After(s.PausedAt) {
			d -= now.Sub(s.PausedAt)
		}
	}
	if d < 0 {
		return 0
	}
	return d
}

// End finishes a live session and computes its summary. The returned state
// is Ended with every session field reset.
func (s State) End(now time.Time, excludePaused bool) (State, domain.SessionSummary, error) {
	if !s.Status.IsLive() {
		return s, domain.SessionSummary{}, domain.NewStateError("end", s.status())
	}

	elapsed := s.Elapsed(now, excludePaused).Truncate(time.Second)
	accuracy := xp.Accuracy(s.CorrectAnswers, s.CardsStudied)

	summary := domain.SessionSummary{
		Subject:        s.Subject,
		CardsStudied:   s.CardsStudied,
		CorrectAnswers: s.CorrectAnswers,
		Accuracy:       accuracy,
		SessionXP:      xp.SessionBonus(s.CardsStudied, accuracy, elapsed),
		Elapsed:        elapsed,
	}

	return State{Status: domain.SessionStatusEnded}, summary, nil
}

// String implements fmt.Stringer for log output.
func (s State) String() string {
	return fmt.Sprintf("%s %d/%d studied=%d correct=%d", s.status(), s.Cursor, len(s.Cards), s.CardsStudied, s.CorrectAnswers)
}

func (s State) status() domain.SessionStatus {
	if s.Status == "" {
		return domain.SessionStatusIdle
	}
	return s.Status
}
