package perf

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

const (
	defaultInterval = time.Second
	maxHistory      = 300
)

// Sample is one point of combined frame and host metrics.
type Sample struct {
	FPS         float64
	FrameMS     float64
	CPUPercent  float64
	MemPercent  float64
	MemAvailGiB float64
	When        time.Time
}

// Thresholds are the levels above (or below, for FPS) which the
// monitor raises alerts.
type Thresholds struct {
	MinFPS    float64
	MaxCPU    float64
	MaxMemory float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{MinFPS: 30, MaxCPU: 80, MaxMemory: 85}
}

// Alerts reports which thresholds the latest sample crossed.
type Alerts struct {
	LowFPS     bool
	HighCPU    bool
	HighMemory bool
}

func (a Alerts) Any() bool { return a.LowFPS || a.HighCPU || a.HighMemory }

func evalAlerts(s Sample, th Thresholds) (Alerts, []string) {
	var a Alerts
	var msgs []string
	if s.FPS > 0 && s.FPS < th.MinFPS {
		a.LowFPS = true
		msgs = append(msgs, fmt.Sprintf("low FPS %.1f", s.FPS))
	}
	if s.CPUPercent > th.MaxCPU {
		a.HighCPU = true
		msgs = append(msgs, fmt.Sprintf("high CPU %.1f%%", s.CPUPercent))
	}
	if s.MemPercent > th.MaxMemory {
		a.HighMemory = true
		msgs = append(msgs, fmt.Sprintf("high memory %.1f%%", s.MemPercent))
	}
	return a, msgs
}

// Monitor samples host CPU and memory usage on a background goroutine
// and merges them with frame timings. The game loop calls Frame each
// frame; everything else is safe to read from any goroutine.
type Monitor struct {
	Thresholds Thresholds

	mu      sync.Mutex
	fps     *FPSMonitor
	history []Sample
	alerts  Alerts
	running bool
	stop    chan struct{}
	done    chan struct{}

	interval time.Duration
}

func NewMonitor(interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Monitor{
		Thresholds: DefaultThresholds(),
		fps:        NewFPSMonitor(60),
		interval:   interval,
	}
}

// Start launches the sampling goroutine. Calling Start on a running
// monitor is a no-op.
func (m *Monitor) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return
	}
	m.running = true
	m.stop = make(chan struct{})
	m.done = make(chan struct{})
	go m.loop(m.stop, m.done)
	log.Printf("perf: monitor started (interval %s)", m.interval)
}

// Stop halts sampling and waits for the goroutine to exit.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	stop, done := m.stop, m.done
	m.mu.Unlock()

	close(stop)
	<-done
	log.Print("perf: monitor stopped")
}

func (m *Monitor) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			m.sample()
		}
	}
}

func (m *Monitor) sample() {
	s := Sample{When: time.Now()}

	if pcts, err := cpu.Percent(100*time.Millisecond, false); err != nil {
		log.Printf("perf: cpu probe failed: %v", err)
	} else if len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vm, err := mem.VirtualMemory(); err != nil {
		log.Printf("perf: memory probe failed: %v", err)
	} else {
		s.MemPercent = vm.UsedPercent
		s.MemAvailGiB = float64(vm.Available) / (1 << 30)
	}

	m.mu.Lock()
	s.FPS = m.fps.FPS()
	s.FrameMS = m.fps.FrameTime()
	m.appendLocked(s)
	alerts, msgs := evalAlerts(s, m.Thresholds)
	m.alerts = alerts
	m.mu.Unlock()

	for _, msg := range msgs {
		log.Printf("perf: alert: %s", msg)
	}
}

func (m *Monitor) appendLocked(s Sample) {
	m.history = append(m.history, s)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

// Frame records a frame boundary and returns the smoothed FPS.
func (m *Monitor) Frame() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fps.Frame()
}

// FrameStats returns the frame-timing summary for the current window.
func (m *Monitor) FrameStats() FPSStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fps.Stats()
}

// Current returns the most recent sample, or a zero Sample when
// nothing has been collected yet.
func (m *Monitor) Current() Sample {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.history) == 0 {
		return Sample{}
	}
	return m.history[len(m.history)-1]
}

// Average returns the mean of all samples newer than window. A zero
// window averages the whole history.
func (m *Monitor) Average(window time.Duration) Sample {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.history) == 0 {
		return Sample{}
	}

	var cutoff time.Time
	if window > 0 {
		cutoff = m.history[len(m.history)-1].When.Add(-window)
	}

	var avg Sample
	n := 0
	for _, s := range m.history {
		if window > 0 && s.When.Before(cutoff) {
			continue
		}
		avg.FPS += s.FPS
		avg.FrameMS += s.FrameMS
		avg.CPUPercent += s.CPUPercent
		avg.MemPercent += s.MemPercent
		avg.MemAvailGiB += s.MemAvailGiB
		n++
	}
	if n == 0 {
		return m.history[len(m.history)-1]
	}
	avg.FPS /= float64(n)
	avg.FrameMS /= float64(n)
	avg.CPUPercent /= float64(n)
	avg.MemPercent /= float64(n)
	avg.MemAvailGiB /= float64(n)
	avg.When = m.history[len(m.history)-1].When
	return avg
}

// Alerts returns the threshold flags from the latest sample.
func (m *Monitor) Alerts() Alerts {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alerts
}

// History returns a copy of the collected samples, oldest first.
func (m *Monitor) History() []Sample {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Sample, len(m.history))
	copy(out, m.history)
	return out
}
