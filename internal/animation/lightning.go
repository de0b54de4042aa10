package animation

import (
	"math/rand"
	"time"
)

const (
	firstFlashMin = 2 * time.Second
	firstFlashMax = 5 * time.Second
	nextFlashMin  = 3 * time.Second
	nextFlashMax  = 8 * time.Second
)

// LightningState is the phase of the thunderstorm flash cycle.
//
//	idle ──Start──► armed ──timer──► flashing ──reschedule──► armed
//	  ▲                                                          │
//	  └──────────────────────────Stop────────────────────────────┘
type LightningState int

const (
	LightningIdle LightningState = iota
	LightningArmed
	LightningFlashing
)

func (s LightningState) String() string {
	switch s {
	case LightningIdle:
		return "idle"
	case LightningArmed:
		return "armed"
	case LightningFlashing:
		return "flashing"
	default:
		return "unknown"
	}
}

// lightning owns the singleton flash element and the one pending trigger.
type lightning struct {
	sched   *Scheduler
	clock   Clock
	rng     *rand.Rand
	surface Surface
	onFlash func()

	state   LightningState
	element *Element
	timer   *Task
}

func (l *lightning) start() {
	if l.state != LightningIdle {
		return
	}
	l.element = &Element{Kind: KindLightning, Born: l.clock.Now()}
	l.surface.Add(l.element)
	l.arm(between(l.rng, firstFlashMin, firstFlashMax))
}

func (l *lightning) arm(d time.Duration) {
	l.timer.Cancel()
	l.state = LightningArmed
	l.timer = l.sched.After(d, l.flash)
}

func (l *lightning) flash() {
	if l.state != LightningArmed || l.element == nil {
		return
	}
	l.state = LightningFlashing
	// Moving FlashedAt restarts the fade instead of extending one in flight.
	l.element.FlashedAt = l.clock.Now()
	l.element.Flashes++
	if l.onFlash != nil {
		l.onFlash()
	}
	if l.state != LightningFlashing {
		return
	}
	l.arm(between(l.rng, nextFlashMin, nextFlashMax))
}

// stop cancels the pending flash and removes the flash element.
func (l *lightning) stop() {
	l.timer.Cancel()
	l.timer = nil
	if l.element != nil {
		l.surface.Remove(l.element)
		l.element = nil
	}
	l.state = LightningIdle
}
