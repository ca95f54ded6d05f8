package clock

import (
	"sync"
	"time"
)

// Cadence is a periodic tick source that can be started and stopped.
// It carries no state beyond whether it is running.
type Cadence interface {
	// Start begins calling fn on every tick. Starting a running cadence
	// replaces the previous callback.
	Start(fn func(time.Time))
	// Stop halts ticking. A tick already in flight may still be delivered.
	Stop()
}

// Ticker is a Cadence backed by time.Ticker.
type Ticker struct {
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
}

// NewTicker returns a Ticker firing every interval.
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{interval: interval}
}

func (t *Ticker) Start(fn func(time.Time)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop != nil {
		close(t.stop)
	}
	stop := make(chan struct{})
	t.stop = stop

	tk := time.NewTicker(t.interval)
	go func() {
		defer tk.Stop()
		for {
			select {
			case <-stop:
				return
			case now := <-tk.C:
				fn(now)
			}
		}
	}()
}

func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

// Running reports whether the ticker is started.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

// Manual is a Cadence that only ticks when Fire is called.
type Manual struct {
	mu      sync.Mutex
	fn      func(time.Time)
	running bool
	starts  int
	stops   int
}

func (m *Manual) Start(fn func(time.Time)) {
	m.mu.Lock()
	m.fn = fn
	m.running = true
	m.starts++
	m.mu.Unlock()
}

func (m *Manual) Stop() {
	m.mu.Lock()
	m.running = false
	m.stops++
	m.mu.Unlock()
}

// Fire delivers one tick if the cadence is running and reports whether it did.
func (m *Manual) Fire(now time.Time) bool {
	m.mu.Lock()
	fn, running := m.fn, m.running
	m.mu.Unlock()

	if !running || fn == nil {
		return false
	}
	fn(now)
	return true
}

// Running reports whether the cadence is started.
func (m *Manual) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// Starts returns how many times Start was called.
func (m *Manual) Starts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.starts
}

// Stops returns how many times Stop was called.
func (m *Manual) Stops() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stops
}
