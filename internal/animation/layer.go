package animation

const (
	// OpacityNormal is the layer opacity while motion is allowed.
	OpacityNormal = 0.6
	// OpacityReduced dims the layer when the user prefers reduced motion.
	OpacityReduced = 0.2
)

// Surface is the container the controller populates. The surrounding UI owns
// the container; the controller owns what is inside it.
type Surface interface {
	Add(e *Element)
	Remove(e *Element)
	Clear()
	SetOpacity(v float64)
}

// Layer is the in-memory Surface shared by the renderers. It is not safe for
// concurrent use: the controller mutates it and the renderer reads it from the
// same loop goroutine.
type Layer struct {
	elements []*Element
	opacity  float64
}

// NewLayer creates an empty layer at normal opacity.
func NewLayer() *Layer {
	return &Layer{opacity: OpacityNormal}
}

func (l *Layer) Add(e *Element) {
	l.elements = append(l.elements, e)
}

func (l *Layer) Remove(e *Element) {
	for i, el := range l.elements {
		if el == e {
			last := len(l.elements) - 1
			l.elements[i] = l.elements[last]
			l.elements[last] = nil
			l.elements = l.elements[:last]
			return
		}
	}
}

func (l *Layer) Clear() {
	clear(l.elements)
	l.elements = l.elements[:0]
}

func (l *Layer) SetOpacity(v float64) {
	l.opacity = clamp01(v)
}

// Opacity returns the current layer opacity.
func (l *Layer) Opacity() float64 { return l.opacity }

// Len returns the number of elements on the layer.
func (l *Layer) Len() int { return len(l.elements) }

// Elements returns the live element slice; callers must not retain it across
// controller calls.
func (l *Layer) Elements() []*Element { return l.elements }

// Count returns how many elements of kind k are on the layer.
func (l *Layer) Count(k Kind) int {
	n := 0
	for _, e := range l.elements {
		if e.Kind == k {
			n++
		}
	}
	return n
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
