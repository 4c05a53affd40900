package scheduler

import (
	"testing"
	"time"
)

func TestTask_CoalescesBursts(t *testing.T) {
	s := New()
	var runs int
	task := s.NewTask("relayout", func() { runs++ })

	for i := 0; i < 5; i++ {
		task.Schedule()
	}
	s.Step()

	if runs != 1 {
		t.Errorf("task ran %d times for a 5-schedule burst, want 1", runs)
	}
	if task.Pending() {
		t.Error("task should not be pending after Step")
	}
}

func TestScheduler_OnNeedsTickOncePerBurst(t *testing.T) {
	s := New()
	var ticks int
	s.OnNeedsTick = func() { ticks++ }
	task := s.NewTask("reconcile", func() {})

	task.Schedule()
	task.Schedule()
	task.Schedule()

	if ticks != 1 {
		t.Errorf("OnNeedsTick fired %d times, want 1 per burst", ticks)
	}

	s.Step()
	task.Schedule()
	if ticks != 2 {
		t.Errorf("OnNeedsTick fired %d times after new burst, want 2", ticks)
	}
}

func TestScheduler_TasksCoalesceIndependently(t *testing.T) {
	s := New()
	var scrolls, discoveries int
	scroll := s.NewTask("scroll", func() { scrolls++ })
	discovery := s.NewTask("discovery", func() { discoveries++ })

	scroll.Schedule()
	discovery.Schedule()
	discovery.Schedule()
	s.Step()

	if scrolls != 1 || discoveries != 1 {
		t.Errorf("got scrolls=%d discoveries=%d, want 1 and 1", scrolls, discoveries)
	}
}

func TestScheduler_RunOrderIsRegistrationOrder(t *testing.T) {
	s := New()
	var order []string
	first := s.NewTask("first", func() { order = append(order, "first") })
	second := s.NewTask("second", func() { order = append(order, "second") })

	// Schedule in reverse; run order must follow registration.
	second.Schedule()
	first.Schedule()
	s.Step()

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("run order = %v, want [first second]", order)
	}
}

func TestScheduler_RescheduleDuringStepCarriesOver(t *testing.T) {
	s := New()
	var runs int
	var task *Task
	task = s.NewTask("self", func() {
		runs++
		if runs == 1 {
			task.Schedule()
		}
	})

	task.Schedule()
	s.Step()
	if runs != 1 {
		t.Fatalf("task ran %d times in one Step, want 1", runs)
	}
	if !s.HasPending() {
		t.Fatal("reschedule during Step should carry to the next Step")
	}
	s.Step()
	if runs != 2 {
		t.Errorf("task ran %d times after second Step, want 2", runs)
	}
}

func TestStepWithNothingPendingIsNoOp(t *testing.T) {
	s := New()
	s.NewTask("idle", func() { t.Error("idle task should not run") })
	s.Step()
}

type fixedClock struct{ now time.Time }

func (f fixedClock) Now() time.Time { return f.now }

func TestSetClock(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	prev := SetClock(fixedClock{now: base})
	defer SetClock(prev)

	if !Now().Equal(base) {
		t.Errorf("Now() = %v, want %v", Now(), base)
	}
}
