package animation

import (
	"sort"
	"time"
)

// Task is a single-shot delayed callback owned by a Scheduler.
type Task struct {
	due       time.Time
	fn        func()
	seq       uint64
	cancelled bool
	fired     bool
}

// Cancel stops the task if it is still pending. It is safe to call on a nil
// task, a fired task or an already cancelled one; it reports whether a pending
// task was actually cancelled.
func (t *Task) Cancel() bool {
	if t == nil || t.fired || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

// Pending reports whether the task will still run.
func (t *Task) Pending() bool {
	return t != nil && !t.fired && !t.cancelled
}

// Scheduler is a cooperative timer queue. Tasks never run on their own: the
// owner drains due tasks with RunDue from its frame loop, so callbacks execute
// on the same goroutine as every other controller mutation.
type Scheduler struct {
	clock Clock
	tasks []*Task
	seq   uint64
}

// NewScheduler creates a scheduler that measures delays against clock.
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// After schedules fn to run once d has elapsed.
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	s.seq++
	t := &Task{due: s.clock.Now().Add(d), fn: fn, seq: s.seq}
	s.tasks = append(s.tasks, t)
	return t
}

// RunDue runs every pending task whose deadline has passed, in deadline order,
// and returns how many ran. Tasks scheduled by a running callback are only
// considered on the next call.
func (s *Scheduler) RunDue() int {
	if len(s.tasks) == 0 {
		return 0
	}
	now := s.clock.Now()

	var due, keep []*Task
	for _, t := range s.tasks {
		switch {
		case t.cancelled:
		case !t.due.After(now):
			due = append(due, t)
		default:
			keep = append(keep, t)
		}
	}
	s.tasks = keep

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})

	ran := 0
	for _, t := range due {
		// An earlier callback in this batch may have cancelled it.
		if t.cancelled {
			continue
		}
		t.fired = true
		t.fn()
		ran++
	}
	return ran
}

// Pending returns the number of tasks still waiting to run.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if t.Pending() {
			n++
		}
	}
	return n
}
