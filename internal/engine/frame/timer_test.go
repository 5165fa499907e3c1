package frame

import (
	"testing"
	"time"
)

type fakeClock struct {
	t     time.Time
	slept []time.Duration
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.t = c.t.Add(d)
}

func (c *fakeClock) work(d time.Duration) { c.t = c.t.Add(d) }

func TestTimerUnlimited(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	timer := newTimer(clock.now, clock.sleep)

	if timer.FPS() != 0 || timer.FrameTime() != 0 {
		t.Error("no frame has finished yet")
	}

	clock.work(5 * time.Millisecond)
	timer.EndFrame()

	if len(clock.slept) != 0 {
		t.Errorf("unlimited timer slept %v", clock.slept)
	}
	if got := timer.FrameTime(); got != 0.005 {
		t.Errorf("FrameTime = %v, want 0.005", got)
	}
	if got := timer.FPS(); got != 200 {
		t.Errorf("FPS = %d, want 200", got)
	}
}

func TestTimerHoldsTarget(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	timer := newTimer(clock.now, clock.sleep)
	timer.SetTargetFPS(50) // 20ms

	clock.work(5 * time.Millisecond)
	timer.EndFrame()

	if len(clock.slept) != 1 || clock.slept[0] != 15*time.Millisecond {
		t.Fatalf("slept %v, want [15ms]", clock.slept)
	}
	if got := timer.FPS(); got != 50 {
		t.Errorf("FPS = %d, want 50", got)
	}

	// A slow frame is not padded.
	clock.work(30 * time.Millisecond)
	timer.EndFrame()
	if len(clock.slept) != 1 {
		t.Errorf("slow frame should not sleep, slept %v", clock.slept)
	}
	if got := timer.FrameTime(); got < 0.0299 || got > 0.0301 {
		t.Errorf("FrameTime = %v, want 0.03", got)
	}

	if timer.Frames() != 2 {
		t.Errorf("Frames = %d, want 2", timer.Frames())
	}
	if got := timer.Elapsed(); got != 50*time.Millisecond {
		t.Errorf("Elapsed = %v, want 50ms", got)
	}
}

func TestSetTargetFPS(t *testing.T) {
	timer := NewTimer()
	tests := []struct {
		fps  int
		want time.Duration
	}{
		{60, time.Second / 60},
		{0, 0},
		{-5, 0},
		{1, time.Second},
	}
	for _, tt := range tests {
		timer.SetTargetFPS(tt.fps)
		if got := timer.Target(); got != tt.want {
			t.Errorf("SetTargetFPS(%d): Target = %v, want %v", tt.fps, got, tt.want)
		}
	}
}
