package core

import "time"

// FrameLimiter caps a loop at a fixed number of frames per second by sleeping
// away whatever is left of the frame budget.
type FrameLimiter struct {
	frame time.Duration
	last  time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFrameLimiter constructs a FrameLimiter targeting the given FPS.
func NewFrameLimiter(fps int) *FrameLimiter {
	f := &FrameLimiter{now: time.Now, sleep: time.Sleep}
	f.SetFPS(fps)
	return f
}

// SetFPS changes the target rate. Non-positive values fall back to 60.
func (f *FrameLimiter) SetFPS(fps int) {
	if fps <= 0 {
		fps = 60
	}
	f.frame = time.Second / time.Duration(fps)
}

// Frame returns the per-frame budget.
func (f *FrameLimiter) Frame() time.Duration { return f.frame }

// SetSleeper replaces the blocking delay, e.g. with a platform delay call.
func (f *FrameLimiter) SetSleeper(sleep func(time.Duration)) {
	if sleep != nil {
		f.sleep = sleep
	}
}

// Wait blocks until the current frame budget has elapsed. A frame that
// already overran its budget returns immediately.
func (f *FrameLimiter) Wait() {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	if remaining := f.frame - now.Sub(f.last); remaining > 0 {
		f.sleep(remaining)
		now = now.Add(remaining)
	}
	f.last = now
}
