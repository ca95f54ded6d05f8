package study

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studybuddy/internal/domain"
	"github.com/heartmarshall/studybuddy/internal/service/study/session"
	"github.com/heartmarshall/studybuddy/internal/service/study/xp"
	"github.com/heartmarshall/studybuddy/pkg/clock"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

// awardNotifier forwards local XP awards to the sync sink. Notify must not
// block on I/O.
type awardNotifier interface {
	Notify(ctx context.Context, award domain.XPAward)
}

// ---------------------------------------------------------------------------
// Session
// ---------------------------------------------------------------------------

// Options tune session behaviour.
type Options struct {
	// ExcludePausedTime subtracts paused intervals from elapsed time. Off by
	// default: paused time counts towards the session duration and the
	// long-session bonus.
	ExcludePausedTime bool
}

// Session is the per-user study context owned by the UI layer. It holds the
// live session state and the user's stats, and serializes every transition.
type Session struct {
	log      *slog.Logger
	clock    clock.Clock
	cadence  clock.Cadence
	notifier awardNotifier
	observer Observer
	opts     Options

	mu    sync.Mutex
	state session.State
	stats domain.UserStats
}

// NewSession creates an idle Session for a user with the given stats.
// A nil observer is replaced with NopObserver.
func NewSession(
	log *slog.Logger,
	stats domain.UserStats,
	clk clock.Clock,
	cadence clock.Cadence,
	notifier awardNotifier,
	observer Observer,
	opts Options,
) *Session {
	if observer == nil {
		observer = NopObserver{}
	}
	return &Session{
		log:      log.With("service", "study"),
		clock:    clk,
		cadence:  cadence,
		notifier: notifier,
		observer: observer,
		opts:     opts,
		state:    session.Idle(),
		stats:    xp.Normalize(stats),
	}
}

// awardEffect is an XP award already applied to local stats, waiting to be
// published to the observer and the sink.
type awardEffect struct {
	award   domain.XPAward
	stats   domain.UserStats
	levelUp *domain.LevelUpEvent
}

// AnswerResult reports the outcome of Answer.
type AnswerResult struct {
	Correct   bool
	XPAwarded int
	// Summary is set when the answer exhausted the deck and ended the session.
	Summary *domain.SessionSummary
}

// Start begins a session over cards. A live session is abandoned first
// without any XP. On ErrEmptyDeck nothing changes.
func (s *Session) Start(ctx context.Context, cards []domain.Card, subject *domain.Subject) error {
	s.mu.Lock()

	next, err := session.Start(cards, subject, s.clock.Now())
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("start session: %w", err)
	}

	prev := s.state
	s.state = next
	s.cadence.Start(s.onTick)
	view := cardView(next)

	s.mu.Unlock()

	if prev.Status.IsLive() {
		s.log.WarnContext(ctx, "session abandoned",
			slog.Int("cards_studied", prev.CardsStudied),
			slog.Int("correct_answers", prev.CorrectAnswers),
		)
		s.observer.SessionAbandoned(prev.CardsStudied)
	}

	s.log.InfoContext(ctx, "session started",
		slog.Int("cards", len(next.Cards)),
		slog.String("subject", subjectString(subject)),
	)
	s.observer.CardShown(view)
	return nil
}

// Pause freezes an active session and stops the timer.
func (s *Session) Pause(ctx context.Context) error {
	s.mu.Lock()
	next, err := s.state.Pause(s.clock.Now())
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("pause session: %w", err)
	}
	s.state = next
	s.cadence.Stop()
	s.mu.Unlock()

	s.log.DebugContext(ctx, "session paused", slog.String("state", next.String()))
	return nil
}

// Resume continues a paused session and restarts the timer.
func (s *Session) Resume(ctx context.Context) error {
	s.mu.Lock()
	now := s.clock.Now()
	next, err := s.state.Resume(now)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("resume session: %w", err)
	}
	s.state = next
	s.cadence.Start(s.onTick)
	elapsed := next.Elapsed(now, s.opts.ExcludePausedTime)
	s.mu.Unlock()

	s.log.DebugContext(ctx, "session resumed", slog.String("state", next.String()))
	s.observer.Tick(elapsed)
	return nil
}

// RevealAnswer toggles the answer of the current card.
func (s *Session) RevealAnswer(ctx context.Context) error {
	s.mu.Lock()
	next, err := s.state.Reveal()
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("reveal answer: %w", err)
	}
	s.state = next
	view := cardView(next)
	s.mu.Unlock()

	if view.Revealed {
		s.observer.AnswerRevealed(view)
	} else {
		s.observer.CardShown(view)
	}
	return nil
}

// Answer scores the current card. A correct answer awards the card's
// difficulty XP immediately. Answering the last card ends the session.
func (s *Session) Answer(ctx context.Context, correct bool) (AnswerResult, error) {
	s.mu.Lock()
	now := s.clock.Now()

	next, out, err := s.state.Answer(correct)
	if err != nil {
		s.mu.Unlock()
		return AnswerResult{}, fmt.Errorf("answer card: %w", err)
	}
	s.state = next

	res := AnswerResult{Correct: out.Correct, XPAwarded: out.XP}
	var effects []awardEffect
	if e, ok := s.applyLocked(out.XP, domain.ReasonCorrectAnswer, now); ok {
		effects = append(effects, e)
	}

	var view CardView
	if out.Finished {
		summary, e, ok, err := s.endLocked(now)
		if err != nil {
			// Unreachable: an active state can always be ended.
			s.mu.Unlock()
			return res, fmt.Errorf("end session: %w", err)
		}
		if ok {
			effects = append(effects, e)
		}
		res.Summary = &summary
	} else {
		view = cardView(next)
	}
	s.mu.Unlock()

	s.publish(ctx, effects)

	if res.Summary != nil {
		s.logEnded(ctx, *res.Summary)
		s.observer.SessionEnded(*res.Summary)
	} else {
		s.observer.CardShown(view)
	}
	return res, nil
}

// End finishes a live session, awards the session bonus and returns the
// summary.
func (s *Session) End(ctx context.Context) (domain.SessionSummary, error) {
	s.mu.Lock()
	summary, e, ok, err := s.endLocked(s.clock.Now())
	s.mu.Unlock()
	if err != nil {
		return domain.SessionSummary{}, fmt.Errorf("end session: %w", err)
	}

	if ok {
		s.publish(ctx, []awardEffect{e})
	}
	s.logEnded(ctx, summary)
	s.observer.SessionEnded(summary)
	return summary, nil
}

// Snapshot is a read-only view of the session.
type Snapshot struct {
	Status         domain.SessionStatus
	Current        *CardView
	CardsStudied   int
	CorrectAnswers int
	StartTime      time.Time
	Elapsed        time.Duration
}

// Snapshot returns the current session view.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Status:         s.state.Status,
		CardsStudied:   s.state.CardsStudied,
		CorrectAnswers: s.state.CorrectAnswers,
		StartTime:      s.state.StartTime,
		Elapsed:        s.state.Elapsed(s.clock.Now(), s.opts.ExcludePausedTime),
	}
	if _, ok := s.state.Current(); ok {
		view := cardView(s.state)
		snap.Current = &view
	}
	return snap
}

// Stats returns the user's stats as known locally.
func (s *Session) Stats() domain.UserStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Elapsed returns the elapsed time of the live session.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Elapsed(s.clock.Now(), s.opts.ExcludePausedTime)
}

// ---------------------------------------------------------------------------
// internals
// ---------------------------------------------------------------------------

func (s *Session) endLocked(now time.Time) (domain.SessionSummary, awardEffect, bool, error) {
	next, summary, err := s.state.End(now, s.opts.ExcludePausedTime)
	if err != nil {
		return domain.SessionSummary{}, awardEffect{}, false, err
	}
	s.state = next
	s.cadence.Stop()

	e, ok := s.applyLocked(summary.SessionXP, domain.ReasonSessionCompleted, now)
	return summary, e, ok, nil
}

// applyLocked applies amount to local stats. Zero awards change nothing and
// are not published.
func (s *Session) applyLocked(amount int, reason string, now time.Time) (awardEffect, bool) {
	if amount <= 0 {
		return awardEffect{}, false
	}
	stats, levelUp := xp.Award(s.stats, amount, reason)
	s.stats = stats
	return awardEffect{
		award: domain.XPAward{
			Key:       uuid.New(),
			Amount:    amount,
			Reason:    reason,
			AwardedAt: now,
		},
		stats:   stats,
		levelUp: levelUp,
	}, true
}

func (s *Session) publish(ctx context.Context, effects []awardEffect) {
	for _, e := range effects {
		s.observer.XPAwarded(e.award, e.stats)
		if e.levelUp != nil {
			s.log.InfoContext(ctx, "level up",
				slog.Int("level", e.levelUp.Level),
				slog.Int("xp", e.stats.XP),
			)
			s.observer.LeveledUp(*e.levelUp)
		}
		if s.notifier != nil {
			s.notifier.Notify(ctx, e.award)
		}
	}
}

func (s *Session) onTick(time.Time) {
	s.mu.Lock()
	if s.state.Status != domain.SessionStatusActive {
		s.mu.Unlock()
		return
	}
	elapsed := s.state.Elapsed(s.clock.Now(), s.opts.ExcludePausedTime)
	s.mu.Unlock()

	s.observer.Tick(elapsed)
}

func (s *Session) logEnded(ctx context.Context, summary domain.SessionSummary) {
	s.log.InfoContext(ctx, "session ended",
		slog.Int("cards_studied", summary.CardsStudied),
		slog.Int("correct_answers", summary.CorrectAnswers),
		slog.Float64("accuracy", summary.Accuracy),
		slog.Int("session_xp", summary.SessionXP),
		slog.Duration("elapsed", summary.Elapsed),
	)
}

func cardView(st session.State) CardView {
	card, _ := st.Current()
	return CardView{
		Card:     card,
		Position: st.Cursor + 1,
		Total:    len(st.Cards),
		Revealed: st.Revealed,
	}
}

func subjectString(s *domain.Subject) string {
	if s == nil {
		return "all"
	}
	return s.String()
}
