package watch

import (
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

// DefaultInterval approximates one display frame: edits arriving within
// the same frame coalesce into a single analysis run.
const DefaultInterval = 16 * time.Millisecond

// Scheduler coalesces bursts of source edits into at most one pending
// analysis run. Scheduling while a run is pending supersedes the pending
// text rather than queueing a second run, so the most recent text is
// always the one analyzed and never a stale intermediate version. Runs
// never overlap: text scheduled while a run is executing waits for the
// run to finish and is analyzed in a follow-up run. Each
// editor session owns its own Scheduler; there is no global state.
type Scheduler struct {
	interval time.Duration
	run      func(text string)

	mu       sync.Mutex
	timer    *time.Timer
	pending  bool
	running  bool
	latest   string
	lastHash uint64
	analyzed bool
	closed   bool
}

// NewScheduler creates a scheduler invoking run with the coalesced text.
// A non-positive interval falls back to DefaultInterval.
func NewScheduler(interval time.Duration, run func(text string)) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{interval: interval, run: run}
}

// Schedule queues an analysis run for text. If a run is already pending
// it is superseded, not duplicated. Scheduling text identical to the last
// analyzed text with nothing pending is a no-op.
func (s *Scheduler) Schedule(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	if s.pending {
		s.latest = text
		return
	}

	if s.analyzed && xxhash.Sum64String(text) == s.lastHash {
		return
	}

	s.latest = text
	s.pending = true
	if !s.running {
		s.timer = time.AfterFunc(s.interval, s.fire)
	}
}

// fire runs the callback with the latest scheduled text. The callback
// executes outside the lock; it may call Schedule again. At most one
// callback runs at a time: a fire landing while a run is in flight
// leaves the text pending, and the in-flight run re-arms the timer on
// completion.
func (s *Scheduler) fire() {
	s.mu.Lock()
	if s.closed || !s.pending {
		s.mu.Unlock()
		return
	}
	if s.running {
		s.mu.Unlock()
		return
	}
	text := s.latest
	s.pending = false
	s.running = true
	s.lastHash = xxhash.Sum64String(text)
	s.analyzed = true
	s.mu.Unlock()

	s.run(text)

	s.mu.Lock()
	s.running = false
	if s.pending && !s.closed {
		s.timer = time.AfterFunc(s.interval, s.fire)
	}
	s.mu.Unlock()
}

// Pending reports whether a run is queued but not yet started.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Close cancels any pending run and rejects further scheduling.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.pending = false
	if s.timer != nil {
		s.timer.Stop()
	}
}
