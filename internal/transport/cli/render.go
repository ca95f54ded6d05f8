package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/heartmarshall/studybuddy/internal/domain"
	"github.com/heartmarshall/studybuddy/internal/service/study"
	"github.com/heartmarshall/studybuddy/internal/service/study/xp"
)

// Renderer prints session notifications as plain text. It is safe for use
// from the timer goroutine.
type Renderer struct {
	mu        sync.Mutex
	w         io.Writer
	liveTimer bool
	lastTick  time.Duration
}

var _ study.Observer = (*Renderer)(nil)

// NewRenderer creates a Renderer writing to w. With liveTimer set every tick
// is printed; otherwise the timer is shown on demand by the status command.
func NewRenderer(w io.Writer, liveTimer bool) *Renderer {
	return &Renderer{w: w, liveTimer: liveTimer}
}

func (r *Renderer) printf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, format, args...)
}

func (r *Renderer) CardShown(v study.CardView) {
	r.printf("\nCard %d/%d  [%s, %s]\nQ: %s\n(reveal to see the answer)\n",
		v.Position, v.Total, v.Card.Subject, v.Card.Difficulty, v.Card.Question)
}

func (r *Renderer) AnswerRevealed(v study.CardView) {
	r.printf("A: %s\n(right or wrong?)\n", v.Card.Answer)
}

func (r *Renderer) Tick(elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastTick = elapsed
	if r.liveTimer {
		fmt.Fprintf(r.w, "\r[%s] ", study.FormatElapsed(elapsed))
	}
}

func (r *Renderer) XPAwarded(award domain.XPAward, stats domain.UserStats) {
	r.printf("+%d XP (%s)  level %d, %d/%d XP\n",
		award.Amount, award.Reason, stats.Level, xp.Progress(stats.XP), xp.PointsPerLevel)
}

func (r *Renderer) LeveledUp(ev domain.LevelUpEvent) {
	r.printf("*** Level up! %d -> %d ***\n", ev.PreviousLevel, ev.Level)
}

func (r *Renderer) SessionEnded(s domain.SessionSummary) {
	r.printf("\nSession complete: %d cards, %d correct (%.0f%%), +%d XP, time %s\n",
		s.CardsStudied, s.CorrectAnswers, s.Accuracy*100, s.SessionXP, study.FormatElapsed(s.Elapsed))
}

func (r *Renderer) SessionAbandoned(cardsStudied int) {
	r.printf("Previous session abandoned after %d cards.\n", cardsStudied)
}

// Stats prints a stats block with level progress.
func (r *Renderer) Stats(label string, s domain.UserStats) {
	r.printf("%s: level %d, %d XP (%d to next level), streak %d, %d cards\n",
		label, s.Level, s.XP, xp.ToNextLevel(s.XP), s.Streak, s.TotalCards)
}

// Status prints a snapshot of the session.
func (r *Renderer) Status(snap study.Snapshot) {
	if !snap.Status.IsLive() {
		r.printf("No session running.\n")
		return
	}
	pos := ""
	if snap.Current != nil {
		pos = fmt.Sprintf(", card %d/%d", snap.Current.Position, snap.Current.Total)
	}
	r.printf("Session %s%s, %d studied, %d correct, time %s\n",
		strings.ToLower(snap.Status.String()), pos, snap.CardsStudied, snap.CorrectAnswers, study.FormatElapsed(snap.Elapsed))
}

func (r *Renderer) Message(format string, args ...any) {
	r.printf(format+"\n", args...)
}
