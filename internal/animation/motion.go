package animation

// MotionSource is the accessibility "prefers reduced motion" setting: readable
// on demand and observable for changes. Subscribers are notified on the
// goroutine that changed the setting; the returned func unsubscribes.
type MotionSource interface {
	ReducedMotion() bool
	Subscribe(fn func()) (cancel func())
}

// MotionFlag is a minimal in-memory MotionSource.
type MotionFlag struct {
	reduced   bool
	nextID    int
	listeners map[int]func()
}

// NewMotionFlag creates a flag with the given initial value.
func NewMotionFlag(reduced bool) *MotionFlag {
	return &MotionFlag{reduced: reduced, listeners: make(map[int]func())}
}

func (m *MotionFlag) ReducedMotion() bool { return m.reduced }

func (m *MotionFlag) Subscribe(fn func()) func() {
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	return func() { delete(m.listeners, id) }
}

// Set changes the flag and notifies subscribers when the value changed.
func (m *MotionFlag) Set(reduced bool) {
	if m.reduced == reduced {
		return
	}
	m.reduced = reduced
	for _, fn := range m.listeners {
		fn()
	}
}
