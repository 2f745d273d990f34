// Package scheduler runs the auto-archive sweep on a fixed interval.
package scheduler

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/arca/pkg/logging"
)

// Scheduler owns the recurring sweep timer. At most one timer is
// active at any time: Reschedule replaces the current one, Stop
// cancels it. Safe for concurrent use.
type Scheduler struct {
	mu     sync.Mutex
	ticker *time.Ticker
	done   chan struct{}
	sweep  func()
	logger zerolog.Logger
}

// New creates a scheduler invoking sweep on every tick.
func New(sweep func()) *Scheduler {
	return &Scheduler{
		sweep:  sweep,
		logger: logging.GetLogger("scheduler"),
	}
}

// Start arms the recurring timer. A non-positive interval leaves the
// scheduler stopped. Calling Start while running replaces the active
// timer, so exactly one remains.
func (s *Scheduler) Start(interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	if interval <= 0 {
		s.logger.Warn().Dur("interval", interval).Msg("non-positive interval, scheduler not started")
		return
	}

	s.ticker = time.NewTicker(interval)
	s.done = make(chan struct{})

	go s.run(s.ticker, s.done)

	s.logger.Info().Dur("interval", interval).Msg("sweep scheduled")
}

// Reschedule replaces the active timer with one firing at the new
// interval. Used when the frequency setting changes.
func (s *Scheduler) Reschedule(interval time.Duration) {
	s.Start(interval)
}

// Stop cancels the active timer. After Stop returns no further sweeps
// run until Start is called again.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// Running reports whether a timer is armed.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticker != nil
}

func (s *Scheduler) stopLocked() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	close(s.done)
	s.ticker = nil
	s.done = nil
	s.logger.Debug().Msg("sweep timer cancelled")
}

// run drains the ticker until its done channel closes. The ticker and
// channel are captured as arguments so a replaced timer's goroutine
// cannot observe the new one's state.
func (s *Scheduler) run(ticker *time.Ticker, done chan struct{}) {
	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-done:
			return
		}
	}
}
