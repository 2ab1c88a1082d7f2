package loop

import (
	"sync"
	"time"
)

// Mock is a controllable time source for testing
type Mock struct {
	mu  sync.RWMutex
	cur time.Time
}

// NewMock creates a mock clock at the given start time
func NewMock(start time.Time) *Mock {
	return &Mock{cur: start}
}

// Now returns the current mocked time
func (m *Mock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cur
}

// Set pins the mocked time
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cur = t
}

// Advance moves the mocked time forward by d
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cur = m.cur.Add(d)
}
