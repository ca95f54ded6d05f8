// Package cli is the interactive terminal front end for study sessions.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/heartmarshall/studybuddy/internal/domain"
	"github.com/heartmarshall/studybuddy/internal/service/deck"
	"github.com/heartmarshall/studybuddy/internal/service/study"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type deckLoader interface {
	Load(ctx context.Context, subject *domain.Subject) (deck.Deck, error)
}

type studySession interface {
	Start(ctx context.Context, cards []domain.Card, subject *domain.Subject) error
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	RevealAnswer(ctx context.Context) error
	Answer(ctx context.Context, correct bool) (study.AnswerResult, error)
	End(ctx context.Context) (domain.SessionSummary, error)
	Snapshot() study.Snapshot
	Stats() domain.UserStats
}

// remote reports server-side stats.
type remote interface {
	FetchStats(ctx context.Context) (domain.UserStats, error)
}

// sessionLog queues finished sessions for the server. It must not block.
type sessionLog interface {
	LogSession(ctx context.Context, summary domain.SessionSummary)
}

// ---------------------------------------------------------------------------
// REPL
// ---------------------------------------------------------------------------

const helpText = `Commands:
  start [subject]  begin a session (math, english, spanish, german,
                   science, history, other; default all)
  reveal           show or hide the answer
  right | wrong    score the current card
  pause | resume   freeze or continue the timer
  status           show the current session
  end              finish the session
  stats            show your level and XP
  help             show this help
  quit             leave (ends a running session)`

// Options tune the command loop.
type Options struct {
	// DefaultSubject is used by a bare "start". Empty means every subject.
	DefaultSubject string
}

// REPL reads commands line by line and drives a study session.
type REPL struct {
	log     *slog.Logger
	in      io.Reader
	out     *Renderer
	session studySession
	decks   deckLoader
	remote  remote
	logs    sessionLog
	opts    Options
}

// NewREPL wires the command loop. remote and logs may be nil for offline use.
func NewREPL(log *slog.Logger, in io.Reader, out *Renderer, session studySession, decks deckLoader, remote remote, logs sessionLog, opts Options) *REPL {
	return &REPL{
		log:     log.With("handler", "cli"),
		in:      in,
		out:     out,
		session: session,
		decks:   decks,
		remote:  remote,
		logs:    logs,
		opts:    opts,
	}
}

// Run processes commands until quit, end of input or ctx cancellation. A
// live session is ended in every case.
func (r *REPL) Run(ctx context.Context) error {
	r.out.Message("StudyBuddy. Type 'help' for commands.")

	done := make(chan struct{})
	defer close(done)
	lines, readErr := r.readLines(done)

	for {
		r.out.printf("> ")
		select {
		case <-ctx.Done():
			r.out.printf("\n")
			r.shutdown(context.WithoutCancel(ctx))
			return nil
		case line, ok := <-lines:
			if !ok {
				r.out.printf("\n")
				r.shutdown(ctx)
				if err := <-readErr; err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				return nil
			}

			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			if quit := r.exec(ctx, strings.ToLower(fields[0]), fields[1:]); quit {
				r.shutdown(ctx)
				return nil
			}
		}
	}
}

// readLines scans input on its own goroutine so Run can react to
// cancellation while a read is pending. lines is closed at end of input,
// after the scan error (possibly nil) is sent on errs.
func (r *REPL) readLines(done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errs := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(r.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		errs <- sc.Err()
		close(lines)
	}()
	return lines, errs
}

// exec runs one command and reports whether the loop should stop.
func (r *REPL) exec(ctx context.Context, cmd string, args []string) bool {
	var err error
	switch cmd {
	case "start", "s":
		err = r.start(ctx, args)
	case "reveal", "r", "flip":
		err = r.session.RevealAnswer(ctx)
	case "right", "y", "yes":
		err = r.answer(ctx, true)
	case "wrong", "n", "no":
		err = r.answer(ctx, false)
	case "pause", "p":
		err = r.session.Pause(ctx)
		if err == nil {
			r.out.Message("Paused.")
		}
	case "resume":
		err = r.session.Resume(ctx)
		if err == nil {
			r.out.Message("Resumed.")
		}
	case "status":
		r.out.Status(r.session.Snapshot())
	case "end", "e":
		var summary domain.SessionSummary
		summary, err = r.session.End(ctx)
		if err == nil {
			r.logSession(ctx, summary)
		}
	case "stats":
		r.stats(ctx)
	case "help", "h", "?":
		r.out.Message(helpText)
	case "quit", "exit", "q":
		return true
	default:
		r.out.Message("Unknown command %q. Type 'help' for commands.", cmd)
	}

	if err != nil {
		r.report(ctx, err)
	}
	return false
}

func (r *REPL) start(ctx context.Context, args []string) error {
	name := r.opts.DefaultSubject
	if len(args) > 0 {
		name = args[0]
	}

	var subject *domain.Subject
	if name != "" && !strings.EqualFold(name, "all") {
		s := domain.Subject(strings.ToLower(name))
		subject = &s
	}

	d, err := r.decks.Load(ctx, subject)
	if err != nil {
		return err
	}
	if d.Fallback {
		r.out.Message("Server unavailable, studying the built-in sample deck.")
	}
	return r.session.Start(ctx, d.Cards, subject)
}

func (r *REPL) answer(ctx context.Context, correct bool) error {
	res, err := r.session.Answer(ctx, correct)
	if err != nil {
		return err
	}
	if res.Summary != nil {
		r.logSession(ctx, *res.Summary)
	}
	return nil
}

func (r *REPL) stats(ctx context.Context) {
	r.out.Stats("Local", r.session.Stats())
	if r.remote == nil {
		return
	}
	server, err := r.remote.FetchStats(ctx)
	if err != nil {
		r.log.WarnContext(ctx, "fetch stats failed", slog.String("error", err.Error()))
		r.out.Message("Server stats unavailable.")
		return
	}
	r.out.Stats("Server", server)
}

func (r *REPL) logSession(ctx context.Context, summary domain.SessionSummary) {
	if r.logs != nil {
		r.logs.LogSession(ctx, summary)
	}
}

// shutdown ends a live session so its completion bonus is not lost.
func (r *REPL) shutdown(ctx context.Context) {
	if !r.session.Snapshot().Status.IsLive() {
		return
	}
	summary, err := r.session.End(ctx)
	if err != nil {
		r.log.WarnContext(ctx, "end session on exit failed", slog.String("error", err.Error()))
		return
	}
	r.logSession(ctx, summary)
}

func (r *REPL) report(ctx context.Context, err error) {
	var (
		verr *domain.ValidationError
		serr *domain.StateError
	)
	switch {
	case errors.As(err, &verr):
		r.out.Message("Invalid input: %s", verr.Errors[0].Message)
	case errors.As(err, &serr):
		r.out.Message("Can't %s right now (%s).", serr.Op, stateHint(serr))
	case errors.Is(err, domain.ErrEmptyDeck):
		r.out.Message("No cards available for that subject.")
	default:
		r.log.ErrorContext(ctx, "command failed", slog.String("error", err.Error()))
		r.out.Message("Something went wrong: %v", err)
	}
}

func stateHint(e *domain.StateError) string {
	if e.Reason != "" {
		return e.Reason
	}
	if e.Status == domain.SessionStatusIdle || e.Status == domain.SessionStatusEnded {
		return "no session running, try 'start'"
	}
	return "session is " + strings.ToLower(e.Status.String())
}
