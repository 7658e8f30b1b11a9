package highlight

import (
	"context"
	"time"
)

// DefaultFlushInterval is the stock scheduler period.
const DefaultFlushInterval = time.Second

// Scheduler periodically flushes a Highlighter and signals completed
// passes. Hosts with their own timer call Tick; Run drives a ticker for
// everyone else. A tick with nothing pending is a no-op.
type Scheduler struct {
	h        *Highlighter
	interval time.Duration
	notify   func()
}

// NewScheduler wires a scheduler to h. A non-positive interval selects
// DefaultFlushInterval; notify may be nil.
func NewScheduler(h *Highlighter, interval time.Duration, notify func()) *Scheduler {
	if interval <= 0 {
		interval = DefaultFlushInterval
	}
	return &Scheduler{h: h, interval: interval, notify: notify}
}

// Interval reports the effective tick period.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Tick drains the queue once and reports whether a pass completed, that
// is, whether anything was classified since the previous tick. Exactly
// one notification fires per completed pass.
func (s *Scheduler) Tick() bool {
	completed := s.h.Flush()
	if completed && s.notify != nil {
		s.notify()
	}
	return completed
}

// Run ticks at the configured interval until ctx is done.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}
