package watch

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects scheduler callback invocations.
type recorder struct {
	mu    sync.Mutex
	texts []string
}

func (r *recorder) run(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, text)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.texts))
	copy(out, r.texts)
	return out
}

func (r *recorder) waitFor(t *testing.T, n int) []string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if got := r.snapshot(); len(got) >= n {
			return got
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d runs, have %d", n, len(r.snapshot()))
	return nil
}

func TestSchedulerCoalescesBurst(t *testing.T) {
	rec := &recorder{}
	s := NewScheduler(20*time.Millisecond, rec.run)
	defer s.Close()

	// A burst inside one interval runs once, with the final text.
	s.Schedule("graph TD\nA")
	s.Schedule("graph TD\nA-->")
	s.Schedule("graph TD\nA-->B")

	got := rec.waitFor(t, 1)
	time.Sleep(50 * time.Millisecond)

	require.Equal(t, got, rec.snapshot(), "burst must produce exactly one run")
	assert.Equal(t, []string{"graph TD\nA-->B"}, got)
}

func TestSchedulerSkipsUnchangedText(t *testing.T) {
	rec := &recorder{}
	s := NewScheduler(5*time.Millisecond, rec.run)
	defer s.Close()

	s.Schedule("graph TD")
	rec.waitFor(t, 1)

	s.Schedule("graph TD")
	time.Sleep(30 * time.Millisecond)
	assert.Len(t, rec.snapshot(), 1, "identical text should not re-run")

	s.Schedule("graph LR")
	got := rec.waitFor(t, 2)
	assert.Equal(t, "graph LR", got[1])
}

func TestSchedulerPending(t *testing.T) {
	rec := &recorder{}
	s := NewScheduler(30*time.Millisecond, rec.run)
	defer s.Close()

	assert.False(t, s.Pending())
	s.Schedule("graph TD")
	assert.True(t, s.Pending())

	rec.waitFor(t, 1)
	assert.False(t, s.Pending())
}

func TestSchedulerClose(t *testing.T) {
	rec := &recorder{}
	s := NewScheduler(10*time.Millisecond, rec.run)

	s.Schedule("graph TD")
	s.Close()

	time.Sleep(40 * time.Millisecond)
	assert.Empty(t, rec.snapshot(), "closed scheduler must not fire")

	s.Schedule("graph LR")
	assert.False(t, s.Pending())
}

func TestSchedulerDefaultInterval(t *testing.T) {
	s := NewScheduler(0, func(string) {})
	defer s.Close()
	assert.Equal(t, DefaultInterval, s.interval)
}

func TestSchedulerSerializesRuns(t *testing.T) {
	var mu sync.Mutex
	var events []string
	record := func(e string) {
		mu.Lock()
		events = append(events, e)
		mu.Unlock()
	}

	s := NewScheduler(5*time.Millisecond, func(text string) {
		record("start:" + text)
		time.Sleep(60 * time.Millisecond)
		record("end:" + text)
	})
	defer s.Close()

	// The second edit arrives while the first run is still executing; it
	// must wait for the run to finish rather than start a concurrent one.
	s.Schedule("a")
	time.Sleep(25 * time.Millisecond)
	s.Schedule("b")

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		mu.Lock()
		n := len(events)
		mu.Unlock()
		if n >= 4 {
			break
		}
		time.Sleep(time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"start:a", "end:a", "start:b", "end:b"}, events)
}

func TestSchedulerRescheduleFromCallback(t *testing.T) {
	rec := &recorder{}
	var s *Scheduler
	s = NewScheduler(5*time.Millisecond, func(text string) {
		rec.run(text)
		if text == "first" {
			s.Schedule("second")
		}
	})
	defer s.Close()

	s.Schedule("first")
	got := rec.waitFor(t, 2)
	assert.Equal(t, []string{"first", "second"}, got[:2])
}
