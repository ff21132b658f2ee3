package schedule

import "time"

// DefaultFrameInterval approximates one display frame at 60fps.
const DefaultFrameInterval = 16 * time.Millisecond

// FrameThrottle rate-limits a stream of updates to one per frame
// interval. An update arriving inside the current frame is held as the
// latest pending value rather than dropped, so the final position of a
// drag is never lost: a later submit supersedes it, and the owner
// flushes on its frame boundary or at the end of the stream.
//
// FrameThrottle is driven from a single event loop and keeps no
// internal timers; its clock is injectable for tests.
type FrameThrottle struct {
	interval time.Duration
	now      func() time.Time

	last    time.Time
	pending func()
}

// NewFrameThrottle creates a throttle at the given interval. A
// non-positive interval falls back to [DefaultFrameInterval]; a nil
// clock falls back to time.Now.
func NewFrameThrottle(interval time.Duration, now func() time.Time) *FrameThrottle {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	if now == nil {
		now = time.Now
	}
	return &FrameThrottle{interval: interval, now: now}
}

// Submit runs fn immediately if a full frame has elapsed since the last
// run, and otherwise holds it as the pending latest update. It reports
// whether fn ran now.
func (t *FrameThrottle) Submit(fn func()) bool {
	n := t.now()
	if t.last.IsZero() || n.Sub(t.last) >= t.interval {
		t.last = n
		t.pending = nil
		fn()
		return true
	}
	t.pending = fn
	return false
}

// Flush runs the held update, if any. Called on a frame boundary or at
// the end of the stream so the held value lands.
func (t *FrameThrottle) Flush() {
	if t.pending == nil {
		return
	}
	fn := t.pending
	t.pending = nil
	t.last = t.now()
	fn()
}

// Reset clears both the held update and the frame clock.
func (t *FrameThrottle) Reset() {
	t.pending = nil
	t.last = time.Time{}
}
