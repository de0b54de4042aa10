package animation

import "fmt"

// Element-count floors: degradation never drives a target below these.
const (
	MinRain         = 30
	MinSnow         = 20
	MinThunderstorm = 40

	// CloudCount is fixed; clouds are never degraded.
	CloudCount = 5

	// DegradePercent scales every degradable target on each degradation event.
	DegradePercent = 70
)

// Counts is the element-count policy: how many particles each condition gets.
// Targets only ever go down within a session.
type Counts struct {
	Rain         int
	Snow         int
	Thunderstorm int
}

// DefaultCounts returns the starting targets.
func DefaultCounts() Counts {
	return Counts{
		Rain:         80,
		Snow:         50,
		Thunderstorm: 100,
	}
}

// Validate checks that every target starts at or above its floor.
func (c Counts) Validate() error {
	switch {
	case c.Rain < MinRain:
		return fmt.Errorf("rain count %d below floor %d", c.Rain, MinRain)
	case c.Snow < MinSnow:
		return fmt.Errorf("snow count %d below floor %d", c.Snow, MinSnow)
	case c.Thunderstorm < MinThunderstorm:
		return fmt.Errorf("thunderstorm count %d below floor %d", c.Thunderstorm, MinThunderstorm)
	}
	return nil
}

// Degraded returns the targets after one degradation event.
func (c Counts) Degraded() Counts {
	return Counts{
		Rain:         degrade(c.Rain, MinRain),
		Snow:         degrade(c.Snow, MinSnow),
		Thunderstorm: degrade(c.Thunderstorm, MinThunderstorm),
	}
}

// For returns the particle target of a condition, 0 when it has none.
func (c Counts) For(cond Condition) int {
	switch cond {
	case ConditionRain:
		return c.Rain
	case ConditionSnow:
		return c.Snow
	case ConditionThunderstorm:
		return c.Thunderstorm
	case ConditionClouds:
		return CloudCount
	}
	return 0
}

func degrade(n, floor int) int {
	// Integer math: 0.7 has no exact float form and 50*0.7 would floor to 34.
	d := n * DegradePercent / 100
	if d < floor {
		return floor
	}
	return d
}
