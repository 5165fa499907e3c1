package frame

import (
	"math"
	"time"
)

// Timer measures frame durations and sleeps to hold a target rate.
type Timer struct {
	target time.Duration
	start  time.Time
	last   time.Time
	frame  time.Duration
	frames uint64

	now   func() time.Time
	sleep func(time.Duration)
}

// NewTimer creates an unlimited timer starting now.
func NewTimer() *Timer {
	return newTimer(time.Now, time.Sleep)
}

func newTimer(now func() time.Time, sleep func(time.Duration)) *Timer {
	t := &Timer{now: now, sleep: sleep}
	t.start = now()
	t.last = t.start
	return t
}

// SetTargetFPS caps the frame rate. Zero or negative removes the cap.
func (t *Timer) SetTargetFPS(fps int) {
	if fps <= 0 {
		t.target = 0
		return
	}
	t.target = time.Second / time.Duration(fps)
}

// Target returns the minimum frame duration, 0 when unlimited.
func (t *Timer) Target() time.Duration {
	return t.target
}

// EndFrame waits out the remainder of the target frame time and records the
// duration of the frame that just finished.
func (t *Timer) EndFrame() {
	elapsed := t.now().Sub(t.last)
	if t.target > 0 && elapsed < t.target {
		t.sleep(t.target - elapsed)
	}

	now := t.now()
	t.frame = now.Sub(t.last)
	t.last = now
	t.frames++
}

// FrameTime returns the last frame duration in seconds.
func (t *Timer) FrameTime() float32 {
	return float32(t.frame.Seconds())
}

// FPS returns the rate implied by the last frame, 0 before the first one.
func (t *Timer) FPS() int {
	if t.frame <= 0 {
		return 0
	}
	return int(math.Round(1 / t.frame.Seconds()))
}

// Frames returns the number of completed frames.
func (t *Timer) Frames() uint64 {
	return t.frames
}

// Elapsed returns the time since the timer was created.
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.start)
}
