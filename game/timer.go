package game

import "time"

// TimerHandle identifies a scheduled callback. The zero handle is never issued.
type TimerHandle uint64

// Scheduler runs callbacks after a delay. Callbacks must run on the same
// goroutine that drives the game so no two of them ever overlap.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) TimerHandle
	Cancel(handle TimerHandle)
}

type scheduledTimer struct {
	handle   TimerHandle
	deadline time.Duration
	fn       func()
}

// TickScheduler is a Scheduler driven by explicit time steps rather than the
// wall clock. The game loop calls Advance once per frame.
type TickScheduler struct {
	currentTime time.Duration
	lastHandle  TimerHandle
	timers      []scheduledTimer
}

func NewTickScheduler() *TickScheduler {
	return &TickScheduler{}
}

func (s *TickScheduler) Schedule(delay time.Duration, fn func()) TimerHandle {
	if delay < 0 {
		delay = 0
	}
	s.lastHandle++
	s.timers = append(s.timers, scheduledTimer{
		handle:   s.lastHandle,
		deadline: s.currentTime + delay,
		fn:       fn,
	})
	return s.lastHandle
}

// Cancel drops a pending callback. Unknown or already fired handles are ignored.
func (s *TickScheduler) Cancel(handle TimerHandle) {
	for i, t := range s.timers {
		if t.handle == handle {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

// Advance moves the clock forward by d, firing every callback whose deadline
// falls within the step in deadline order. Equal deadlines fire in the order
// they were scheduled. Callbacks scheduled while advancing fire in the same
// call if they come due before the step ends.
func (s *TickScheduler) Advance(d time.Duration) {
	target := s.currentTime + d
	for {
		i := s.nextDue(target)
		if i < 0 {
			break
		}
		t := s.timers[i]
		s.timers = append(s.timers[:i], s.timers[i+1:]...)
		s.currentTime = t.deadline
		t.fn()
	}
	s.currentTime = target
}

// Pending is the number of callbacks that have neither fired nor been cancelled.
func (s *TickScheduler) Pending() int {
	return len(s.timers)
}

// Now is the total time advanced so far.
func (s *TickScheduler) Now() time.Duration {
	return s.currentTime
}

func (s *TickScheduler) nextDue(limit time.Duration) int {
	next := -1
	for i, t := range s.timers {
		if t.deadline > limit {
			continue
		}
		// Handles grow monotonically, so the lower handle was scheduled first.
		if next < 0 || t.deadline < s.timers[next].deadline ||
			(t.deadline == s.timers[next].deadline && t.handle < s.timers[next].handle) {
			next = i
		}
	}
	return next
}

// pendingTimer is an optional handle to a timer the controller owns.
type pendingTimer struct {
	handle TimerHandle
	set    bool
}

// replace cancels any pending timer and schedules fn in its place.
func (p *pendingTimer) replace(s Scheduler, delay time.Duration, fn func()) {
	p.cancel(s)
	p.handle = s.Schedule(delay, func() {
		p.set = false
		fn()
	})
	p.set = true
}

func (p *pendingTimer) cancel(s Scheduler) {
	if p.set {
		s.Cancel(p.handle)
		p.set = false
	}
}
