package clock

import (
	"sync"
	"time"
)

// System implements ports.Scheduler with the real wall clock and
// time.AfterFunc timers.
type System struct{}

// NewSystem creates the real scheduler.
func NewSystem() *System {
	return &System{}
}

func (s *System) Now() time.Time {
	return time.Now()
}

// After schedules fn after d. The returned cancel func is safe to call
// more than once and after the timer has fired.
func (s *System) After(d time.Duration, fn func()) func() {
	timer := time.AfterFunc(d, fn)
	var once sync.Once
	return func() {
		once.Do(func() { timer.Stop() })
	}
}
