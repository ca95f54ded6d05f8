// Package xpsync delivers locally applied XP awards and finished session
// logs to the remote sink without blocking the caller.
package xpsync

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/heartmarshall/studybuddy/internal/domain"
)

// sink is the remote receiver. PushXP must deduplicate on award.Key.
type sink interface {
	PushXP(ctx context.Context, award domain.XPAward) error
	LogSession(ctx context.Context, summary domain.SessionSummary) error
}

// Config controls queueing and retries.
type Config struct {
	QueueSize       int
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	PushTimeout     time.Duration
}

// DefaultConfig returns the settings used when none are configured.
func DefaultConfig() Config {
	return Config{
		QueueSize:       64,
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		PushTimeout:     10 * time.Second,
	}
}

// Counters reports delivery outcomes. SessionsLogged counts session logs;
// the other counters cover both kinds of job.
type Counters struct {
	Delivered      int64
	Failed         int64
	Dropped        int64
	SessionsLogged int64
}

// job carries either an award or, when summary is set, a session log.
type job struct {
	ctx     context.Context
	award   domain.XPAward
	summary *domain.SessionSummary
}

// Dispatcher queues awards and pushes them to the sink from a single worker.
// Failures are logged and counted; they never reach the caller.
type Dispatcher struct {
	log  *slog.Logger
	sink sink
	cfg  Config

	mu     sync.Mutex
	closed bool
	queue  chan job

	stop context.Context
	halt context.CancelFunc
	done chan struct{}

	delivered atomic.Int64
	failed    atomic.Int64
	dropped   atomic.Int64
	sessions  atomic.Int64
}

// NewDispatcher creates a Dispatcher and starts its worker.
func NewDispatcher(log *slog.Logger, s sink, cfg Config) *Dispatcher {
	def := DefaultConfig()
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = def.QueueSize
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = def.InitialInterval
	}
	if cfg.MaxInterval < cfg.InitialInterval {
		cfg.MaxInterval = cfg.InitialInterval
	}
	if cfg.PushTimeout <= 0 {
		cfg.PushTimeout = def.PushTimeout
	}

	stop, halt := context.WithCancel(context.Background())
	d := &Dispatcher{
		log:   log.With("service", "xpsync"),
		sink:  s,
		cfg:   cfg,
		queue: make(chan job, cfg.QueueSize),
		stop:  stop,
		halt:  halt,
		done:  make(chan struct{}),
	}
	go d.run()
	return d
}

// Notify enqueues award for delivery. It never blocks: when the queue is
// full or the dispatcher is closed the award is dropped and logged.
func (d *Dispatcher) Notify(ctx context.Context, award domain.XPAward) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		d.drop(ctx, award, "dispatcher closed")
		return
	}

	select {
	case d.queue <- job{ctx: context.WithoutCancel(ctx), award: award}:
	default:
		d.drop(ctx, award, "queue full")
	}
}

// LogSession enqueues a finished session behind any pending awards. It never
// blocks. Session logs are not idempotent on the server, so they get a single
// attempt.
func (d *Dispatcher) LogSession(ctx context.Context, summary domain.SessionSummary) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		d.dropSession(ctx, "dispatcher closed")
		return
	}

	select {
	case d.queue <- job{ctx: context.WithoutCancel(ctx), summary: &summary}:
	default:
		d.dropSession(ctx, "queue full")
	}
}

// Close stops accepting awards and waits for queued ones to be delivered.
// When ctx expires first, pending retries are abandoned and ctx.Err() is
// returned.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		d.halt()
		return nil
	case <-ctx.Done():
		d.halt()
		return ctx.Err()
	}
}

// Counters returns delivery counters.
func (d *Dispatcher) Counters() Counters {
	return Counters{
		Delivered: d.delivered.Load(),
		Failed:    d.failed.Load(),
		Dropped:        d.dropped.Load(),
		SessionsLogged: d.sessions.Load(),
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for j := range d.queue {
		if j.summary != nil {
			d.logSession(j)
			continue
		}
		d.deliver(j)
	}
}

func (d *Dispatcher) deliver(j job) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = d.cfg.InitialInterval
	b.MaxInterval = d.cfg.MaxInterval
	b.MaxElapsedTime = 0

	hinted := &floorBackOff{BackOff: b}
	policy := backoff.WithContext(backoff.WithMaxRetries(hinted, uint64(d.cfg.MaxRetries)), d.stop)

	op := func() error {
		ctx, cancel := context.WithTimeout(j.ctx, d.cfg.PushTimeout)
		defer cancel()

		err := d.sink.PushXP(ctx, j.award)
		if err == nil {
			return nil
		}
		if isPermanent(err) {
			return backoff.Permanent(err)
		}
		hinted.floor = retryAfter(err)
		return err
	}

	notify := func(err error, wait time.Duration) {
		d.log.DebugContext(j.ctx, "xp sync retry",
			slog.String("award_key", j.award.Key.String()),
			slog.Duration("wait", wait),
			slog.String("error", err.Error()),
		)
	}

	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		d.failed.Add(1)
		d.log.WarnContext(j.ctx, "xp sync failed",
			slog.String("award_key", j.award.Key.String()),
			slog.Int("amount", j.award.Amount),
			slog.String("reason", j.award.Reason),
			slog.String("error", err.Error()),
		)
		return
	}

	d.delivered.Add(1)
	d.log.DebugContext(j.ctx, "xp synced",
		slog.String("award_key", j.award.Key.String()),
		slog.Int("amount", j.award.Amount),
	)
}

func (d *Dispatcher) logSession(j job) {
	if d.stop.Err() != nil {
		d.dropSession(j.ctx, "dispatcher halted")
		return
	}

	ctx, cancel := context.WithTimeout(j.ctx, d.cfg.PushTimeout)
	defer cancel()

	if err := d.sink.LogSession(ctx, *j.summary); err != nil {
		d.failed.Add(1)
		d.log.WarnContext(j.ctx, "session log failed",
			slog.Int("cards_studied", j.summary.CardsStudied),
			slog.Int("session_xp", j.summary.SessionXP),
			slog.String("error", err.Error()),
		)
		return
	}

	d.sessions.Add(1)
	d.log.DebugContext(j.ctx, "session logged",
		slog.Int("cards_studied", j.summary.CardsStudied),
	)
}

func (d *Dispatcher) dropSession(ctx context.Context, reason string) {
	d.dropped.Add(1)
	d.log.WarnContext(ctx, "session log dropped", slog.String("cause", reason))
}

func (d *Dispatcher) drop(ctx context.Context, award domain.XPAward, reason string) {
	d.dropped.Add(1)
	d.log.WarnContext(ctx, "xp sync dropped",
		slog.String("award_key", award.Key.String()),
		slog.Int("amount", award.Amount),
		slog.String("cause", reason),
		slog.String("error", domain.ErrSyncFailure.Error()),
	)
}

// isPermanent reports whether the receiver rejected the award outright.
func isPermanent(err error) bool {
	return errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrUnauthorized)
}

// retryHinter is implemented by errors carrying a server Retry-After hint.
type retryHinter interface {
	RetryAfter() time.Duration
}

func retryAfter(err error) time.Duration {
	var h retryHinter
	if errors.As(err, &h) {
		return h.RetryAfter()
	}
	return 0
}

// floorBackOff never waits less than the last server hint. The hint applies
// to the next wait only.
type floorBackOff struct {
	backoff.BackOff
	floor time.Duration
}

func (f *floorBackOff) NextBackOff() time.Duration {
	next := f.BackOff.NextBackOff()
	floor := f.floor
	f.floor = 0
	if next == backoff.Stop {
		return next
	}
	return max(next, floor)
}
