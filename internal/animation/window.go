package animation

// WindowSize is how many one-second FPS readings the monitor keeps.
const WindowSize = 10

// sampleWindow is a fixed ring of the most recent FPS readings; pushing into a
// full ring overwrites the oldest entry.
type sampleWindow struct {
	buffer    [WindowSize]float64
	nextIndex int
	count     int
}

func (w *sampleWindow) push(v float64) {
	w.buffer[w.nextIndex] = v
	w.nextIndex++
	if w.nextIndex >= len(w.buffer) {
		w.nextIndex = 0
	}
	if w.count < len(w.buffer) {
		w.count++
	}
}

func (w *sampleWindow) len() int { return w.count }

func (w *sampleWindow) mean() float64 {
	if w.count == 0 {
		return 0
	}
	var sum float64
	for _, v := range w.snapshot() {
		sum += v
	}
	return sum / float64(w.count)
}

// snapshot returns the readings oldest first.
func (w *sampleWindow) snapshot() []float64 {
	out := make([]float64, 0, w.count)
	idx := w.nextIndex - w.count
	if idx < 0 {
		idx += len(w.buffer)
	}
	for i := 0; i < w.count; i++ {
		out = append(out, w.buffer[idx])
		idx++
		if idx >= len(w.buffer) {
			idx = 0
		}
	}
	return out
}

func (w *sampleWindow) reset() {
	*w = sampleWindow{}
}
