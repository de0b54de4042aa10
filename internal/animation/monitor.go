package animation

import "time"

// LowFPS is the trailing-mean frame rate below which animations degrade.
const LowFPS = 50

// measureInterval is how much wall time one FPS reading covers.
const measureInterval = time.Second

// Monitor counts rendered frames and turns them into one FPS reading per
// second, keeping the last WindowSize readings.
type Monitor struct {
	running  bool
	frames   int
	lastTime time.Time
	window   sampleWindow
}

// Start begins a fresh measurement at now, discarding readings from any
// earlier run. Starting a running monitor is a no-op.
func (m *Monitor) Start(now time.Time) {
	if m.running {
		return
	}
	m.running = true
	m.frames = 0
	m.lastTime = now
	m.window.reset()
}

// Stop halts measurement; frames reported afterwards are ignored.
func (m *Monitor) Stop() {
	m.running = false
	m.frames = 0
}

// Running reports whether the monitor is sampling frames.
func (m *Monitor) Running() bool { return m.running }

// Frame records one rendered frame. Once at least a second has passed since
// the previous reading it pushes a new FPS value and returns it with true.
func (m *Monitor) Frame(now time.Time) (float64, bool) {
	if !m.running {
		return 0, false
	}
	m.frames++
	elapsed := now.Sub(m.lastTime)
	if elapsed < measureInterval {
		return 0, false
	}
	ms := float64(elapsed) / float64(time.Millisecond)
	fps := float64(m.frames) * 1000 / ms
	m.window.push(fps)
	m.frames = 0
	m.lastTime = now
	return fps, true
}

// Average returns the mean of the readings in the window.
func (m *Monitor) Average() float64 { return m.window.mean() }

// Samples returns the readings in the window, oldest first.
func (m *Monitor) Samples() []float64 { return m.window.snapshot() }
