package perf

import (
	"math"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestFPS(size int) (*FPSMonitor, *fakeClock) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	m := NewFPSMonitor(size)
	m.now = clk.now
	m.last = clk.t
	return m, clk
}

func near(t *testing.T, got, want, tol float64, what string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v", what, got, want)
	}
}

// TestFrameComputesFPS verifies steady 10ms frames read as 100 FPS.
func TestFrameComputesFPS(t *testing.T) {
	m, clk := newTestFPS(60)
	var fps float64
	for i := 0; i < 10; i++ {
		clk.advance(10 * time.Millisecond)
		fps = m.Frame()
	}
	near(t, fps, 100, 1e-6, "Frame")
	near(t, m.FPS(), 100, 1e-6, "FPS")
	if m.Frames() != 10 {
		t.Errorf("Frames = %d, want 10", m.Frames())
	}
}

// TestFrameIgnoresZeroElapsed verifies frames with no measurable
// elapsed time are not recorded.
func TestFrameIgnoresZeroElapsed(t *testing.T) {
	m, clk := newTestFPS(60)
	clk.advance(10 * time.Millisecond)
	m.Frame()
	before := m.FPS()

	m.Frame()
	if m.Frames() != 1 {
		t.Errorf("Frames = %d after zero-elapsed frame, want 1", m.Frames())
	}
	near(t, m.FPS(), before, 1e-12, "FPS after zero-elapsed frame")
}

// TestWindowEvictsOldest verifies the rolling window only keeps the
// most recent sampleSize frames.
func TestWindowEvictsOldest(t *testing.T) {
	m, clk := newTestFPS(3)
	durations := []time.Duration{
		10 * time.Millisecond,
		10 * time.Millisecond,
		10 * time.Millisecond,
		20 * time.Millisecond,
		20 * time.Millisecond,
	}
	for _, d := range durations {
		clk.advance(d)
		m.Frame()
	}
	// Window holds 20ms, 20ms, 10ms: 3 frames in 50ms.
	near(t, m.FPS(), 60, 1e-6, "FPS")
}

// TestFrameTime verifies the average frame duration in milliseconds.
func TestFrameTime(t *testing.T) {
	m, clk := newTestFPS(60)
	for i := 0; i < 4; i++ {
		clk.advance(16 * time.Millisecond)
		m.Frame()
	}
	near(t, m.FrameTime(), 16, 1e-6, "FrameTime")
}

// TestStats verifies min, max, and average over mixed frame times.
func TestStats(t *testing.T) {
	m, clk := newTestFPS(60)
	clk.advance(10 * time.Millisecond)
	m.Frame()
	clk.advance(20 * time.Millisecond)
	m.Frame()

	st := m.Stats()
	near(t, st.Min, 50, 1e-6, "Stats.Min")
	near(t, st.Max, 100, 1e-6, "Stats.Max")
	near(t, st.Avg, 75, 1e-6, "Stats.Avg")
	near(t, st.FrameMS, 15, 1e-6, "Stats.FrameMS")
}

// TestStatsEmpty verifies a fresh monitor reports zeroed stats.
func TestStatsEmpty(t *testing.T) {
	m, _ := newTestFPS(60)
	if st := m.Stats(); st != (FPSStats{}) {
		t.Errorf("Stats on empty monitor = %+v, want zero", st)
	}
}

// TestReset verifies Reset clears the window and counters.
func TestReset(t *testing.T) {
	m, clk := newTestFPS(60)
	for i := 0; i < 5; i++ {
		clk.advance(10 * time.Millisecond)
		m.Frame()
	}
	m.Reset()
	if m.FPS() != 0 || m.Frames() != 0 {
		t.Errorf("after Reset: FPS = %v Frames = %d, want 0 and 0", m.FPS(), m.Frames())
	}

	// The clock restarts too: the next frame measures from Reset.
	clk.advance(20 * time.Millisecond)
	near(t, m.Frame(), 50, 1e-6, "first Frame after Reset")
}
