package animation

import (
	"testing"
	"time"
)

func TestSchedulerRunsDueTasksInOrder(t *testing.T) {
	clock := NewMockClock(testStart)
	s := NewScheduler(clock)

	var order []string
	s.After(3*time.Second, func() { order = append(order, "c") })
	s.After(time.Second, func() { order = append(order, "a") })
	s.After(2*time.Second, func() { order = append(order, "b") })

	clock.Advance(500 * time.Millisecond)
	if ran := s.RunDue(); ran != 0 {
		t.Fatalf("RunDue() early: got %d, want 0", ran)
	}

	clock.Advance(2 * time.Second)
	if ran := s.RunDue(); ran != 2 {
		t.Fatalf("RunDue(): got %d, want 2", ran)
	}
	clock.Advance(time.Second)
	s.RunDue()

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("order: got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d]: got %s, want %s", i, order[i], want[i])
		}
	}
}

func TestTaskCancelIsIdempotent(t *testing.T) {
	clock := NewMockClock(testStart)
	s := NewScheduler(clock)

	fired := 0
	task := s.After(time.Second, func() { fired++ })

	if !task.Cancel() {
		t.Error("first Cancel() should report a pending task")
	}
	if task.Cancel() {
		t.Error("second Cancel() should be a no-op")
	}

	var nilTask *Task
	if nilTask.Cancel() {
		t.Error("Cancel() on nil task should be a no-op")
	}

	clock.Advance(2 * time.Second)
	s.RunDue()
	if fired != 0 {
		t.Errorf("cancelled task fired %d times", fired)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending(): got %d, want 0", s.Pending())
	}
}

func TestCancelAfterFire(t *testing.T) {
	clock := NewMockClock(testStart)
	s := NewScheduler(clock)

	task := s.After(time.Second, func() {})
	clock.Advance(time.Second)
	s.RunDue()

	if task.Pending() {
		t.Error("fired task still pending")
	}
	if task.Cancel() {
		t.Error("Cancel() on a fired task should be a no-op")
	}
}

func TestCallbackCanCancelLaterTaskInSameBatch(t *testing.T) {
	clock := NewMockClock(testStart)
	s := NewScheduler(clock)

	second := 0
	var later *Task
	s.After(time.Second, func() { later.Cancel() })
	later = s.After(2*time.Second, func() { second++ })

	clock.Advance(5 * time.Second)
	s.RunDue()
	if second != 0 {
		t.Errorf("task cancelled by an earlier callback fired %d times", second)
	}
}

func TestRescheduleFromCallbackWaitsForNextRun(t *testing.T) {
	clock := NewMockClock(testStart)
	s := NewScheduler(clock)

	runs := 0
	var tick func()
	tick = func() {
		runs++
		s.After(0, tick)
	}
	s.After(0, tick)

	s.RunDue()
	if runs != 1 {
		t.Errorf("runs: got %d, want 1", runs)
	}
	s.RunDue()
	if runs != 2 {
		t.Errorf("runs: got %d, want 2", runs)
	}
}
