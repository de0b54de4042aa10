package thunder

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
)

// levelRing keeps the last samples written by any playing thunder clip so the
// renderer can brighten the sky with the rumble.
type levelRing struct {
	mu        sync.RWMutex
	buffer    [][2]float64
	nextIndex int
	written   time.Time
}

func newLevelRing(size int) *levelRing {
	return &levelRing{buffer: make([][2]float64, size)}
}

func (r *levelRing) record(samples [][2]float64) {
	r.mu.Lock()
	for _, s := range samples {
		r.buffer[r.nextIndex] = s
		r.nextIndex++
		if r.nextIndex >= len(r.buffer) {
			r.nextIndex = 0
		}
	}
	r.written = time.Now()
	r.mu.Unlock()
}

// level returns the RMS of the ring, or 0 when nothing was written within
// stale.
func (r *levelRing) level(stale time.Duration) float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.written.IsZero() || time.Since(r.written) > stale {
		return 0
	}
	var sumSquares float64
	for _, s := range r.buffer {
		mono := (s[0] + s[1]) * 0.5
		sumSquares += mono * mono
	}
	return math.Sqrt(sumSquares / float64(len(r.buffer)))
}

// tap wraps one playing clip and copies what it streams into the ring.
type tap struct {
	Source beep.Streamer
	ring   *levelRing
}

func (t *tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.ring.record(samples[:n])
	}
	return n, ok
}

func (t *tap) Err() error { return t.Source.Err() }
