// Package scheduler coalesces bursts of work into single units per tick.
//
// A [Task] is a named piece of work with a pending flag: scheduling it any
// number of times between ticks runs it exactly once on the next
// [Scheduler.Step]. Independent tasks coalesce independently, so a flood of
// one event class (scroll, resize, shape discovery) cannot starve another.
//
// The scheduler does not own a timer or frame loop. The host drives it:
// OnNeedsTick signals that a Step is wanted, and the host calls Step at its
// own tick boundary (a vsync callback, a terminal event loop, a test).
package scheduler

import "sync"

// Task is a unit of work that runs at most once per tick regardless of how
// many times it is scheduled in between.
type Task struct {
	name      string
	run       func()
	scheduler *Scheduler
}

// Name returns the task's diagnostic name.
func (t *Task) Name() string { return t.name }

// Schedule marks the task pending. The first schedule in a burst notifies
// the scheduler's OnNeedsTick; further schedules before the next Step are
// no-ops.
func (t *Task) Schedule() {
	t.scheduler.schedule(t)
}

// Pending reports whether the task will run on the next Step.
func (t *Task) Pending() bool {
	return t.scheduler.pending(t)
}

// Scheduler tracks pending tasks and runs each at most once per Step.
type Scheduler struct {
	mu         sync.Mutex
	tasks      []*Task // registration order, stable run order
	pendingSet map[*Task]bool

	// OnNeedsTick is called when a task becomes newly pending, signalling
	// the host that a Step should be driven. It may be nil.
	OnNeedsTick func()
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{pendingSet: make(map[*Task]bool)}
}

// NewTask registers a task with the scheduler. Tasks run in registration
// order within a Step.
func (s *Scheduler) NewTask(name string, run func()) *Task {
	task := &Task{name: name, run: run, scheduler: s}
	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()
	return task
}

func (s *Scheduler) schedule(task *Task) {
	s.mu.Lock()
	if s.pendingSet[task] {
		s.mu.Unlock()
		return
	}
	s.pendingSet[task] = true
	notify := s.OnNeedsTick
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
}

func (s *Scheduler) pending(task *Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingSet[task]
}

// HasPending reports whether any task is waiting for a Step.
func (s *Scheduler) HasPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pendingSet) > 0
}

// Step runs every pending task once, in registration order. Tasks scheduled
// while Step is running (including by the tasks themselves) are carried to
// the next Step, so one call does a bounded amount of work.
func (s *Scheduler) Step() {
	s.mu.Lock()
	if len(s.pendingSet) == 0 {
		s.mu.Unlock()
		return
	}
	batch := make([]*Task, 0, len(s.pendingSet))
	for _, task := range s.tasks {
		if s.pendingSet[task] {
			batch = append(batch, task)
		}
	}
	s.pendingSet = make(map[*Task]bool)
	s.mu.Unlock()

	for _, task := range batch {
		if task.run != nil {
			task.run()
		}
	}
}
