// Package animation drives the weather effects layer: it seeds randomized
// rain, snow, cloud and lightning elements for the current condition, honours
// the reduced-motion accessibility setting, and watches its own frame rate to
// shed particles when rendering falls behind.
package animation

import (
	"errors"
	"log"
	"math/rand"
	"time"
)

// ErrNoLayer is reported when the controller is initialized without a layer.
var ErrNoLayer = errors.New("animation: no layer to attach to")

// Config wires a Controller to its collaborators. Zero fields get defaults.
type Config struct {
	Clock  Clock
	Rand   *rand.Rand
	Motion MotionSource
	Counts Counts

	// OnFlash runs once per lightning flash, after the flash element restarts.
	OnFlash func()
}

// Controller owns the contents of the animation layer. It is driven entirely
// from the host's loop goroutine: UpdateAnimation on each weather refresh,
// Frame once per rendered frame, and motion notifications from the same loop.
type Controller struct {
	clock   Clock
	rng     *rand.Rand
	motion  MotionSource
	sched   *Scheduler
	monitor Monitor
	counts  Counts
	onFlash func()

	surface     Surface
	initialized bool
	inert       bool
	reduced     bool
	unsubscribe func()

	current  Condition
	tracked  []*Element
	flash    *lightning
	degrades int
}

// NewController creates an uninitialized controller.
func NewController(cfg Config) *Controller {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Motion == nil {
		cfg.Motion = NewMotionFlag(false)
	}
	if cfg.Counts == (Counts{}) {
		cfg.Counts = DefaultCounts()
	}
	return &Controller{
		clock:   cfg.Clock,
		rng:     cfg.Rand,
		motion:  cfg.Motion,
		sched:   NewScheduler(cfg.Clock),
		counts:  cfg.Counts,
		onFlash: cfg.OnFlash,
	}
}

// Initialize binds the controller to layer, reads the motion preference,
// subscribes to its changes and starts frame-rate monitoring unless motion is
// reduced. Only the first call has any effect. A nil layer leaves the
// controller permanently inert and returns ErrNoLayer.
func (c *Controller) Initialize(layer Surface) error {
	if c.initialized {
		return nil
	}
	c.initialized = true

	if layer == nil {
		c.inert = true
		log.Printf("[Controller] %v; animations disabled", ErrNoLayer)
		return ErrNoLayer
	}
	c.surface = layer
	c.flash = &lightning{
		sched:   c.sched,
		clock:   c.clock,
		rng:     c.rng,
		surface: layer,
		onFlash: c.onFlash,
	}

	c.reduced = c.motion.ReducedMotion()
	c.unsubscribe = c.motion.Subscribe(c.motionChanged)
	if c.reduced {
		layer.SetOpacity(OpacityReduced)
	} else {
		layer.SetOpacity(OpacityNormal)
		c.monitor.Start(c.clock.Now())
	}
	return nil
}

// UpdateAnimation replaces whatever is animating with cond. The layer is
// always emptied first; unknown conditions and reduced motion leave it empty.
func (c *Controller) UpdateAnimation(cond Condition) {
	c.ClearAnimations()
	if c.surface == nil || c.reduced {
		return
	}

	now := c.clock.Now()
	switch cond {
	case ConditionRain:
		c.place(rainDrops(c.rng, c.counts.Rain, now))
	case ConditionSnow:
		c.place(snowFlakes(c.rng, c.counts.Snow, now))
	case ConditionClouds:
		c.place(clouds(c.rng, now))
	case ConditionThunderstorm:
		c.place(rainDrops(c.rng, c.counts.Thunderstorm, now))
		c.flash.start()
	default:
		log.Printf("[Controller] no animation for condition %q", string(cond))
		return
	}
	c.current = cond
}

func (c *Controller) place(elements []*Element) {
	for _, e := range elements {
		c.surface.Add(e)
	}
	c.tracked = append(c.tracked, elements...)
}

// ClearAnimations removes every element this controller placed, empties the
// layer, cancels any pending lightning flash and forgets the current
// condition. Calling it with nothing animating is a no-op.
func (c *Controller) ClearAnimations() {
	if c.surface == nil {
		return
	}
	c.flash.stop()
	for _, e := range c.tracked {
		c.surface.Remove(e)
	}
	clear(c.tracked)
	c.tracked = c.tracked[:0]
	c.surface.Clear()
	c.current = ConditionNone
}

// Frame is the per-frame callback. It runs due timers, then feeds the frame
// to the monitor and degrades the current animation when the trailing mean
// frame rate drops below LowFPS.
func (c *Controller) Frame() {
	if c.surface == nil {
		return
	}
	c.sched.RunDue()

	if _, measured := c.monitor.Frame(c.clock.Now()); !measured {
		return
	}
	if avg := c.monitor.Average(); avg < LowFPS && c.current != ConditionNone {
		c.degrade(avg)
	}
}

// degrade lowers the element-count policy and rebuilds the current animation
// with it. Targets never recover within a session.
func (c *Controller) degrade(avg float64) {
	before := c.counts
	c.counts = c.counts.Degraded()
	c.degrades++
	log.Printf("[Controller] average %.1f fps below %d: rain %d->%d, snow %d->%d, thunderstorm %d->%d",
		avg, LowFPS,
		before.Rain, c.counts.Rain,
		before.Snow, c.counts.Snow,
		before.Thunderstorm, c.counts.Thunderstorm)
	c.UpdateAnimation(c.current)
}

func (c *Controller) motionChanged() {
	reduced := c.motion.ReducedMotion()
	c.reduced = reduced
	if reduced {
		c.surface.SetOpacity(OpacityReduced)
		c.ClearAnimations()
		c.monitor.Stop()
		return
	}
	c.surface.SetOpacity(OpacityNormal)
	if !c.monitor.Running() {
		c.monitor.Start(c.clock.Now())
	}
}

// Close tears the controller down: it stops listening for motion changes,
// clears the layer and stops the monitor. The controller is inert afterwards.
func (c *Controller) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.ClearAnimations()
	c.monitor.Stop()
	c.surface = nil
	c.inert = true
}

// Current returns the condition being animated, ConditionNone if nothing is.
func (c *Controller) Current() Condition { return c.current }

// Counts returns the current element-count policy.
func (c *Controller) Counts() Counts { return c.counts }

// Degradations returns how many times the policy has been lowered.
func (c *Controller) Degradations() int { return c.degrades }

// Reduced reports whether reduced motion is in effect.
func (c *Controller) Reduced() bool { return c.reduced }

// Monitoring reports whether frame-rate sampling is running.
func (c *Controller) Monitoring() bool { return c.monitor.Running() }

// AverageFPS returns the trailing mean of the sampled frame rates.
func (c *Controller) AverageFPS() float64 { return c.monitor.Average() }

// FPSSamples returns the sampled frame rates, oldest first.
func (c *Controller) FPSSamples() []float64 { return c.monitor.Samples() }

// Lightning returns the state of the thunderstorm flash cycle.
func (c *Controller) Lightning() LightningState {
	if c.flash == nil {
		return LightningIdle
	}
	return c.flash.state
}

// Inert reports whether the controller will never animate anything.
func (c *Controller) Inert() bool { return c.inert }
