package clock

import (
	"sync"
	"time"
)

// Clock is the only source of "now" for token expiry and reservation timestamps.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

// Now is always UTC; reservation dates are calendar days in UTC.
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock is a settable clock, safe for concurrent use so it can back handlers under test.
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
