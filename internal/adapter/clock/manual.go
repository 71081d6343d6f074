package clock

import (
	"sort"
	"sync"
	"time"
)

// Manual is a deterministic scheduler for tests: time only moves when
// Advance is called, and due callbacks run synchronously on the
// advancing goroutine.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	nextID  int
	pending map[int]*manualTimer
}

type manualTimer struct {
	due time.Time
	fn  func()
}

// NewManual creates a manual scheduler starting at the given instant.
func NewManual(start time.Time) *Manual {
	return &Manual{
		now:     start,
		pending: make(map[int]*manualTimer),
	}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) After(d time.Duration, fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.pending[id] = &manualTimer{due: m.now.Add(d), fn: fn}

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.pending, id)
	}
}

// Advance moves the clock forward and fires every timer that becomes
// due, in due order. Callbacks may schedule further timers; those fire
// too if they fall within the advanced window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		var dueID = -1
		var dueAt time.Time
		ids := make([]int, 0, len(m.pending))
		for id := range m.pending {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids {
			tm := m.pending[id]
			if tm.due.After(target) {
				continue
			}
			if dueID == -1 || tm.due.Before(dueAt) {
				dueID = id
				dueAt = tm.due
			}
		}
		if dueID == -1 {
			m.now = target
			m.mu.Unlock()
			return
		}
		tm := m.pending[dueID]
		delete(m.pending, dueID)
		m.now = tm.due
		m.mu.Unlock()

		tm.fn()
	}
}

// PendingCount reports how many timers are scheduled, for asserting
// teardown behavior.
func (m *Manual) PendingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}
