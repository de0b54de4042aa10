package animation

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

var testStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type testRig struct {
	ctrl    *Controller
	layer   *Layer
	clock   *MockClock
	motion  *MotionFlag
	flashes int
}

func newTestRig(t *testing.T, reduced bool) *testRig {
	t.Helper()
	rig := &testRig{
		layer:  NewLayer(),
		clock:  NewMockClock(testStart),
		motion: NewMotionFlag(reduced),
	}
	rig.ctrl = NewController(Config{
		Clock:   rig.clock,
		Rand:    rand.New(rand.NewSource(1)),
		Motion:  rig.motion,
		OnFlash: func() { rig.flashes++ },
	})
	if err := rig.ctrl.Initialize(rig.layer); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	return rig
}

// run advances the clock in steps, calling Frame after each one.
func (r *testRig) run(total, step time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += step {
		r.clock.Advance(step)
		r.ctrl.Frame()
	}
}

func expectedKinds(c Condition, counts Counts) map[Kind]int {
	switch c {
	case ConditionRain:
		return map[Kind]int{KindRain: counts.Rain}
	case ConditionSnow:
		return map[Kind]int{KindSnow: counts.Snow}
	case ConditionClouds:
		return map[Kind]int{KindCloud: CloudCount}
	case ConditionThunderstorm:
		return map[Kind]int{KindRain: counts.Thunderstorm, KindLightning: 1}
	}
	return nil
}

func assertLayerHolds(t *testing.T, layer *Layer, want map[Kind]int) {
	t.Helper()
	total := 0
	for _, k := range []Kind{KindRain, KindSnow, KindCloud, KindLightning} {
		if got := layer.Count(k); got != want[k] {
			t.Errorf("%s elements: got %d, want %d", k, got, want[k])
		}
		total += want[k]
	}
	if layer.Len() != total {
		t.Errorf("layer size: got %d, want %d", layer.Len(), total)
	}
}

var allConditions = []Condition{ConditionRain, ConditionSnow, ConditionClouds, ConditionThunderstorm}

func TestUpdateAnimationTwiceDoesNotDouble(t *testing.T) {
	for _, c := range allConditions {
		t.Run(string(c), func(t *testing.T) {
			rig := newTestRig(t, false)
			rig.ctrl.UpdateAnimation(c)
			rig.ctrl.UpdateAnimation(c)

			assertLayerHolds(t, rig.layer, expectedKinds(c, DefaultCounts()))
			if rig.ctrl.Current() != c {
				t.Errorf("Current(): got %q, want %q", rig.ctrl.Current(), c)
			}
		})
	}
}

func TestConditionSwitchLeavesNoResidue(t *testing.T) {
	for _, from := range allConditions {
		for _, to := range allConditions {
			if from == to {
				continue
			}
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				rig := newTestRig(t, false)
				rig.ctrl.UpdateAnimation(from)
				rig.ctrl.UpdateAnimation(to)
				assertLayerHolds(t, rig.layer, expectedKinds(to, DefaultCounts()))
			})
		}
	}
}

func TestUnknownConditionEmptiesLayer(t *testing.T) {
	for _, prior := range allConditions {
		rig := newTestRig(t, false)
		rig.ctrl.UpdateAnimation(prior)
		rig.ctrl.UpdateAnimation(Condition("hail"))

		if rig.layer.Len() != 0 {
			t.Errorf("after %s -> hail: layer has %d elements, want 0", prior, rig.layer.Len())
		}
		if rig.ctrl.Current() != ConditionNone {
			t.Errorf("after %s -> hail: Current() = %q, want none", prior, rig.ctrl.Current())
		}
		if rig.ctrl.Lightning() != LightningIdle {
			t.Errorf("after %s -> hail: lightning %s, want idle", prior, rig.ctrl.Lightning())
		}
	}
}

func TestClearAnimationsIsIdempotent(t *testing.T) {
	rig := newTestRig(t, false)

	rig.ctrl.ClearAnimations()
	rig.ctrl.ClearAnimations()
	if rig.layer.Len() != 0 {
		t.Fatalf("layer size: got %d, want 0", rig.layer.Len())
	}

	rig.ctrl.UpdateAnimation(ConditionThunderstorm)
	rig.ctrl.ClearAnimations()
	rig.ctrl.ClearAnimations()
	if rig.layer.Len() != 0 {
		t.Errorf("layer size after clearing thunderstorm: got %d, want 0", rig.layer.Len())
	}
	if rig.ctrl.Current() != ConditionNone {
		t.Errorf("Current(): got %q, want none", rig.ctrl.Current())
	}
}

func TestReducedMotionClearsAndHaltsMonitor(t *testing.T) {
	rig := newTestRig(t, false)
	rig.ctrl.UpdateAnimation(ConditionSnow)
	if !rig.ctrl.Monitoring() {
		t.Fatal("monitor should run while motion is allowed")
	}

	rig.motion.Set(true)

	if rig.layer.Len() != 0 {
		t.Errorf("layer size after reducing motion: got %d, want 0", rig.layer.Len())
	}
	if rig.ctrl.Monitoring() {
		t.Error("monitor still running after reducing motion")
	}
	if rig.layer.Opacity() != OpacityReduced {
		t.Errorf("opacity: got %v, want %v", rig.layer.Opacity(), OpacityReduced)
	}

	// While reduced nothing is ever created.
	rig.ctrl.UpdateAnimation(ConditionRain)
	if rig.layer.Len() != 0 {
		t.Errorf("layer size while reduced: got %d, want 0", rig.layer.Len())
	}

	rig.motion.Set(false)

	if rig.layer.Len() != 0 {
		t.Errorf("restoring motion repopulated the layer with %d elements", rig.layer.Len())
	}
	if !rig.ctrl.Monitoring() {
		t.Error("monitor not restarted after restoring motion")
	}
	if rig.layer.Opacity() != OpacityNormal {
		t.Errorf("opacity: got %v, want %v", rig.layer.Opacity(), OpacityNormal)
	}

	rig.ctrl.UpdateAnimation(ConditionRain)
	if got := rig.layer.Count(KindRain); got != DefaultCounts().Rain {
		t.Errorf("rain after restore: got %d, want %d", got, DefaultCounts().Rain)
	}
}

func TestInitializeWithReducedMotion(t *testing.T) {
	rig := newTestRig(t, true)

	if rig.ctrl.Monitoring() {
		t.Error("monitor started although motion is reduced")
	}
	if rig.layer.Opacity() != OpacityReduced {
		t.Errorf("opacity: got %v, want %v", rig.layer.Opacity(), OpacityReduced)
	}
	for _, c := range allConditions {
		rig.ctrl.UpdateAnimation(c)
		if rig.layer.Len() != 0 {
			t.Errorf("%s: layer size got %d, want 0", c, rig.layer.Len())
		}
	}
}

func TestInitializeWithoutLayerStaysInert(t *testing.T) {
	ctrl := NewController(Config{Clock: NewMockClock(testStart)})

	if err := ctrl.Initialize(nil); !errors.Is(err, ErrNoLayer) {
		t.Fatalf("Initialize(nil): got %v, want ErrNoLayer", err)
	}
	if !ctrl.Inert() {
		t.Error("controller should be inert")
	}

	// A later valid layer does not revive it.
	layer := NewLayer()
	if err := ctrl.Initialize(layer); err != nil {
		t.Errorf("second Initialize: got %v, want nil", err)
	}
	ctrl.UpdateAnimation(ConditionRain)
	ctrl.Frame()
	ctrl.ClearAnimations()
	if layer.Len() != 0 {
		t.Errorf("inert controller populated the layer with %d elements", layer.Len())
	}
}

func TestInitializeTwiceIsNoOp(t *testing.T) {
	rig := newTestRig(t, false)
	other := NewLayer()

	if err := rig.ctrl.Initialize(other); err != nil {
		t.Fatalf("second Initialize: %v", err)
	}
	rig.ctrl.UpdateAnimation(ConditionClouds)
	if other.Len() != 0 {
		t.Errorf("second layer got %d elements, want 0", other.Len())
	}
	if rig.layer.Count(KindCloud) != CloudCount {
		t.Errorf("first layer clouds: got %d, want %d", rig.layer.Count(KindCloud), CloudCount)
	}
}

func TestLowFrameRateDegradesAndRegenerates(t *testing.T) {
	rig := newTestRig(t, false)
	rig.ctrl.UpdateAnimation(ConditionRain)

	// 25ms frames: 40 fps for one second.
	rig.run(time.Second, 25*time.Millisecond)

	if got := rig.ctrl.Degradations(); got != 1 {
		t.Fatalf("Degradations(): got %d, want 1", got)
	}
	want := Counts{Rain: 56, Snow: 35, Thunderstorm: 70}
	if got := rig.ctrl.Counts(); got != want {
		t.Errorf("Counts(): got %+v, want %+v", got, want)
	}
	if got := rig.layer.Count(KindRain); got != 56 {
		t.Errorf("rain on layer after degradation: got %d, want 56", got)
	}
	if rig.ctrl.Current() != ConditionRain {
		t.Errorf("Current(): got %q, want rain", rig.ctrl.Current())
	}
}

func TestLowFrameRateWithoutAnimationKeepsCounts(t *testing.T) {
	rig := newTestRig(t, false)
	rig.run(3*time.Second, 25*time.Millisecond)

	if rig.ctrl.Degradations() != 0 {
		t.Errorf("Degradations(): got %d, want 0", rig.ctrl.Degradations())
	}
	if rig.ctrl.Counts() != DefaultCounts() {
		t.Errorf("Counts(): got %+v, want defaults", rig.ctrl.Counts())
	}
}

func TestHealthyFrameRateKeepsCounts(t *testing.T) {
	rig := newTestRig(t, false)
	rig.ctrl.UpdateAnimation(ConditionSnow)
	rig.run(5*time.Second, 10*time.Millisecond)

	if rig.ctrl.Degradations() != 0 {
		t.Errorf("Degradations(): got %d, want 0", rig.ctrl.Degradations())
	}
	if got := len(rig.ctrl.FPSSamples()); got != 5 {
		t.Errorf("samples: got %d, want 5", got)
	}
}

// Counts never recover once lowered; a healthy frame rate afterwards leaves
// them where degradation put them.
func TestDegradationIsPermanent(t *testing.T) {
	rig := newTestRig(t, false)
	rig.ctrl.UpdateAnimation(ConditionRain)
	rig.run(time.Second, 25*time.Millisecond)
	degraded := rig.ctrl.Counts()

	rig.run(30*time.Second, 5*time.Millisecond)

	if rig.ctrl.Counts() != degraded {
		t.Errorf("Counts() after recovery: got %+v, want %+v", rig.ctrl.Counts(), degraded)
	}
}

func TestSustainedLowFrameRateHitsFloors(t *testing.T) {
	rig := newTestRig(t, false)
	rig.ctrl.UpdateAnimation(ConditionThunderstorm)
	rig.run(30*time.Second, 50*time.Millisecond)

	want := Counts{Rain: MinRain, Snow: MinSnow, Thunderstorm: MinThunderstorm}
	if got := rig.ctrl.Counts(); got != want {
		t.Errorf("Counts(): got %+v, want %+v", got, want)
	}
	if got := rig.layer.Count(KindRain); got != MinThunderstorm {
		t.Errorf("thunderstorm rain: got %d, want %d", got, MinThunderstorm)
	}
	if got := rig.layer.Count(KindLightning); got != 1 {
		t.Errorf("lightning elements: got %d, want 1", got)
	}
}

func TestCloudsAlwaysFive(t *testing.T) {
	rig := newTestRig(t, false)
	rig.ctrl.UpdateAnimation(ConditionClouds)
	rig.run(15*time.Second, 40*time.Millisecond)

	if rig.ctrl.Degradations() == 0 {
		t.Fatal("expected at least one degradation")
	}
	if got := rig.layer.Count(KindCloud); got != CloudCount {
		t.Errorf("clouds: got %d, want %d", got, CloudCount)
	}
}

func TestThunderstormTeardownBeforeFirstFlash(t *testing.T) {
	rig := newTestRig(t, false)
	rig.ctrl.UpdateAnimation(ConditionThunderstorm)
	if rig.ctrl.Lightning() != LightningArmed {
		t.Fatalf("lightning: got %s, want armed", rig.ctrl.Lightning())
	}

	// The first flash is at least 2s away.
	rig.run(time.Second, 10*time.Millisecond)
	rig.ctrl.ClearAnimations()
	rig.run(30*time.Second, 10*time.Millisecond)

	if rig.flashes != 0 {
		t.Errorf("flashes after teardown: got %d, want 0", rig.flashes)
	}
	if rig.ctrl.Lightning() != LightningIdle {
		t.Errorf("lightning: got %s, want idle", rig.ctrl.Lightning())
	}
	if rig.ctrl.sched.Pending() != 0 {
		t.Errorf("pending tasks: got %d, want 0", rig.ctrl.sched.Pending())
	}
}

func TestSwitchingAwayFromThunderstormCancelsFlash(t *testing.T) {
	rig := newTestRig(t, false)
	rig.ctrl.UpdateAnimation(ConditionThunderstorm)
	rig.ctrl.UpdateAnimation(ConditionRain)
	rig.run(20*time.Second, 10*time.Millisecond)

	if rig.flashes != 0 {
		t.Errorf("flashes: got %d, want 0", rig.flashes)
	}
	if rig.layer.Count(KindLightning) != 0 {
		t.Errorf("lightning elements: got %d, want 0", rig.layer.Count(KindLightning))
	}
}

func TestLightningCadence(t *testing.T) {
	rig := newTestRig(t, false)
	rig.ctrl.UpdateAnimation(ConditionThunderstorm)

	var flashTimes []time.Duration
	step := 10 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < 60*time.Second; elapsed += step {
		before := rig.flashes
		rig.clock.Advance(step)
		rig.ctrl.Frame()
		if rig.flashes > before {
			flashTimes = append(flashTimes, rig.clock.Now().Sub(testStart))
		}
	}

	if len(flashTimes) < 2 {
		t.Fatalf("flashes in 60s: got %d, want at least 2", len(flashTimes))
	}
	if first := flashTimes[0]; first < 2*time.Second || first > 5*time.Second+step {
		t.Errorf("first flash at %v, want within [2s, 5s)", first)
	}
	for i := 1; i < len(flashTimes); i++ {
		gap := flashTimes[i] - flashTimes[i-1]
		if gap < 3*time.Second || gap > 8*time.Second+step {
			t.Errorf("gap %d: %v, want within [3s, 8s)", i, gap)
		}
	}

	var flash *Element
	for _, e := range rig.layer.Elements() {
		if e.Kind == KindLightning {
			flash = e
		}
	}
	if flash == nil {
		t.Fatal("no lightning element on the layer")
	}
	if flash.Flashes != len(flashTimes) {
		t.Errorf("element flashes: got %d, want %d", flash.Flashes, len(flashTimes))
	}
	if rig.ctrl.Lightning() != LightningArmed {
		t.Errorf("lightning between flashes: got %s, want armed", rig.ctrl.Lightning())
	}
}

func TestCloseStopsEverything(t *testing.T) {
	rig := newTestRig(t, false)
	rig.ctrl.UpdateAnimation(ConditionThunderstorm)
	rig.ctrl.Close()

	if rig.layer.Len() != 0 {
		t.Errorf("layer size after Close: got %d, want 0", rig.layer.Len())
	}
	if rig.ctrl.Monitoring() {
		t.Error("monitor still running after Close")
	}

	rig.motion.Set(true)
	rig.motion.Set(false)
	rig.ctrl.UpdateAnimation(ConditionRain)
	rig.run(20*time.Second, 10*time.Millisecond)

	if rig.layer.Len() != 0 {
		t.Errorf("closed controller populated the layer with %d elements", rig.layer.Len())
	}
	if rig.flashes != 0 {
		t.Errorf("flashes after Close: got %d, want 0", rig.flashes)
	}
	if rig.ctrl.Monitoring() {
		t.Error("motion change restarted the monitor after Close")
	}
}
