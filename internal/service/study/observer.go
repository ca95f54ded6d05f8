package study

import (
	"time"

	"github.com/heartmarshall/studybuddy/internal/domain"
)

// CardView is what a UI needs to render the current card.
type CardView struct {
	Card     domain.Card
	Position int // 1-based
	Total    int
	Revealed bool
}

// Observer receives render notifications from a Session. Calls are made
// after the session state is committed and never while the session lock is
// held, so an observer may query the session.
type Observer interface {
	CardShown(view CardView)
	AnswerRevealed(view CardView)
	Tick(elapsed time.Duration)
	XPAwarded(award domain.XPAward, stats domain.UserStats)
	LeveledUp(ev domain.LevelUpEvent)
	SessionEnded(summary domain.SessionSummary)
	SessionAbandoned(cardsStudied int)
}

// NopObserver ignores every notification. Embed it to implement a subset.
type NopObserver struct{}

func (NopObserver) CardShown(CardView) {}
func (NopObserver) AnswerRevealed(CardView) {}
func (NopObserver) Tick(time.Duration) {}
func (NopObserver) XPAwarded(domain.XPAward, domain.UserStats) {}
func (NopObserver) LeveledUp(domain.LevelUpEvent) {}
func (NopObserver) SessionEnded(domain.SessionSummary) {}
func (NopObserver) SessionAbandoned(int) {}
