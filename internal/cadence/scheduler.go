package cadence

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/mrz1836/worldclock/internal/clock"
)

// TickerFunc starts a ticker firing every d and returns its channel and a stop function.
type TickerFunc func(d time.Duration) (<-chan time.Time, func())

// realTicker wraps time.NewTicker.
func realTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Scheduler publishes a fresh instant to its handler at the current cadence.
// It runs at most one schedule at a time: Set cancels the running schedule and
// waits for it to finish before starting the next, so handler calls never
// overlap. The handler must not call Set or Stop.
type Scheduler struct {
	parent  context.Context //nolint:containedctx // Scheduler owns the lifecycle of its ticking goroutine
	clock   clock.Clock
	handler func(time.Time)
	ticker  TickerFunc
	logger  zerolog.Logger

	mu      sync.Mutex
	current Cadence
	cancel  context.CancelFunc
	done    chan struct{}
	stopped bool

	ticks atomic.Int64
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithClock sets the clock instants are read from.
func WithClock(c clock.Clock) SchedulerOption {
	return func(s *Scheduler) {
		s.clock = c
	}
}

// WithTicker replaces time.NewTicker. Intended for tests.
func WithTicker(f TickerFunc) SchedulerOption {
	return func(s *Scheduler) {
		s.ticker = f
	}
}

// WithSchedulerLogger sets the logger used for cadence changes.
func WithSchedulerLogger(logger zerolog.Logger) SchedulerOption {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// NewScheduler creates a Scheduler that starts Disabled. Cancelling ctx ends
// any running schedule.
func NewScheduler(ctx context.Context, handler func(time.Time), opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		parent:  ctx,
		clock:   clock.RealClock{},
		handler: handler,
		ticker:  realTicker,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Set switches to cadence c. The previous schedule is cancelled first;
// Disabled leaves nothing running until the next Set.
func (s *Scheduler) Set(c Cadence) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	s.cancelLocked()
	s.current = c
	s.logger.Debug().Str("cadence", c.Label()).Msg("cadence changed")

	if !c.Enabled() {
		return
	}

	ctx, cancel := context.WithCancel(s.parent)
	ch, stop := s.ticker(c.Duration())
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	go s.run(ctx, ch, stop, done)
}

// Current returns the active cadence.
func (s *Scheduler) Current() Cadence {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Ticks returns the number of handler calls made so far.
func (s *Scheduler) Ticks() int64 {
	return s.ticks.Load()
}

// Stop ends the running schedule permanently. Later calls to Set are ignored.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()
	s.current = Disabled
	s.stopped = true
}

// cancelLocked cancels the running schedule and waits for its goroutine.
func (s *Scheduler) cancelLocked() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
	s.done = nil
}

func (s *Scheduler) run(ctx context.Context, ch <-chan time.Time, stop func(), done chan struct{}) {
	defer close(done)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ch:
			if ctx.Err() != nil {
				return
			}
			s.ticks.Add(1)
			s.handler(s.clock.Now())
		}
	}
}
