package sched

import "time"

// task is a named repeating job
type task struct {
	name     string
	seq      int
	interval func() time.Duration
	run      func()

	active bool
	next   time.Time
	gen    uint64
}

// Scheduler runs repeating tasks cooperatively on the caller's goroutine.
// Advance runs every due task to completion, earliest deadline first, so
// two tasks never interleave and share state without locks. A Scheduler
// is not safe for concurrent use.
type Scheduler struct {
	tasks      map[string]*task
	maxCatchUp int
}

// New creates a scheduler. maxCatchUp bounds how many times one task may
// run in a single Advance when it has fallen behind; the rest of the
// backlog is dropped.
func New(maxCatchUp int) *Scheduler {
	if maxCatchUp < 1 {
		maxCatchUp = 1
	}
	return &Scheduler{
		tasks:      make(map[string]*task),
		maxCatchUp: maxCatchUp,
	}
}

// Every registers a task with a fixed interval. The task is stopped until Start.
func (s *Scheduler) Every(name string, interval time.Duration, fn func()) {
	s.Register(name, func() time.Duration { return interval }, fn)
}

// Register adds a task whose interval is re-evaluated before every run,
// which allows randomised timers. Registering an existing name replaces it.
func (s *Scheduler) Register(name string, interval func() time.Duration, fn func()) {
	seq := len(s.tasks)
	if old, ok := s.tasks[name]; ok {
		seq = old.seq
	}
	s.tasks[name] = &task{
		name:     name,
		seq:      seq,
		interval: interval,
		run:      fn,
	}
}

// Start arms a task so its first run is one interval after now.
// Starting an armed task re-arms it, cancelling the pending deadline.
func (s *Scheduler) Start(name string, now time.Time) {
	t, ok := s.tasks[name]
	if !ok {
		return
	}
	t.active = true
	t.gen++
	t.next = now.Add(t.interval())
}

// Stop disarms a task. Stopping a task from inside its own run is allowed.
func (s *Scheduler) Stop(name string) {
	if t, ok := s.tasks[name]; ok {
		t.active = false
		t.gen++
	}
}

// StopAll disarms every task
func (s *Scheduler) StopAll() {
	for name := range s.tasks {
		s.Stop(name)
	}
}

// Running reports whether a task is armed
func (s *Scheduler) Running(name string) bool {
	t, ok := s.tasks[name]
	return ok && t.active
}

// Next returns the pending deadline of an armed task
func (s *Scheduler) Next(name string) (time.Time, bool) {
	t, ok := s.tasks[name]
	if !ok || !t.active {
		return time.Time{}, false
	}
	return t.next, true
}

// Advance runs every task that is due at now and returns the number of runs
func (s *Scheduler) Advance(now time.Time) int {
	runs := make(map[*task]int)
	total := 0
	for {
		t := s.earliestDue(now, runs)
		if t == nil {
			return total
		}

		gen := t.gen
		t.run()
		runs[t]++
		total++

		// the task may have stopped or re-armed itself
		if !t.active || t.gen != gen {
			continue
		}
		t.next = t.next.Add(t.interval())
		if runs[t] >= s.maxCatchUp && !t.next.After(now) {
			t.next = now.Add(t.interval())
		}
	}
}

func (s *Scheduler) earliestDue(now time.Time, runs map[*task]int) *task {
	var best *task
	for _, t := range s.tasks {
		if !t.active || t.next.After(now) || runs[t] >= s.maxCatchUp {
			continue
		}
		if best == nil || t.next.Before(best.next) || (t.next.Equal(best.next) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}
