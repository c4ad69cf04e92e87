package perf

import "time"

// FPSMonitor tracks frame pacing over a rolling window of frame
// durations. Call Frame once per rendered frame.
type FPSMonitor struct {
	samples []float64
	idx     int
	n       int
	last    time.Time
	fps     float64
	frames  uint64

	now func() time.Time
}

func NewFPSMonitor(sampleSize int) *FPSMonitor {
	if sampleSize <= 0 {
		sampleSize = 60
	}
	m := &FPSMonitor{
		samples: make([]float64, sampleSize),
		now:     time.Now,
	}
	m.last = m.now()
	return m
}

// Frame records a frame boundary and returns the smoothed FPS. Frames
// with no measurable elapsed time are ignored.
func (m *FPSMonitor) Frame() float64 {
	t := m.now()
	dt := t.Sub(m.last).Seconds()
	m.last = t

	if dt > 0 {
		m.samples[m.idx] = dt
		m.idx = (m.idx + 1) % len(m.samples)
		if m.n < len(m.samples) {
			m.n++
		}
		m.frames++
	}

	if avg := m.avgFrameTime(); avg > 0 {
		m.fps = 1 / avg
	} else {
		m.fps = 0
	}
	return m.fps
}

func (m *FPSMonitor) avgFrameTime() float64 {
	if m.n == 0 {
		return 0
	}
	sum := 0.0
	for _, dt := range m.samples[:m.n] {
		sum += dt
	}
	return sum / float64(m.n)
}

// FPS returns the last smoothed value without recording a frame.
func (m *FPSMonitor) FPS() float64 { return m.fps }

// FrameTime returns the average frame duration in milliseconds.
func (m *FPSMonitor) FrameTime() float64 {
	return m.avgFrameTime() * 1000
}

// Frames returns the total number of recorded frames.
func (m *FPSMonitor) Frames() uint64 { return m.frames }

// FPSStats summarizes the current window.
type FPSStats struct {
	FPS     float64
	FrameMS float64
	Min     float64
	Max     float64
	Avg     float64
}

func (m *FPSMonitor) Stats() FPSStats {
	if m.n == 0 {
		return FPSStats{}
	}
	st := FPSStats{FPS: m.fps, FrameMS: m.FrameTime()}
	sum := 0.0
	for i, dt := range m.samples[:m.n] {
		f := 0.0
		if dt > 0 {
			f = 1 / dt
		}
		if i == 0 || f < st.Min {
			st.Min = f
		}
		if f > st.Max {
			st.Max = f
		}
		sum += f
	}
	st.Avg = sum / float64(m.n)
	return st
}

// Reset clears the window and restarts the clock.
func (m *FPSMonitor) Reset() {
	m.idx, m.n = 0, 0
	m.fps = 0
	m.frames = 0
	m.last = m.now()
}
