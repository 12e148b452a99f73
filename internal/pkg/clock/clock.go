package clock

import "time"

// Clock abstracts time so promotion windows and order timestamps can be
// tested deterministically.
type Clock interface {
	Now() time.Time
}

// RealClock returns the current wall time in UTC. Promotion windows are
// stored in UTC, so comparisons stay timezone-free.
type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock returns a fixed instant, adjustable from tests.
type MockClock struct {
	current time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

func (c *MockClock) Now() time.Time {
	return c.current
}

// Set pins the clock to the given instant.
func (c *MockClock) Set(t time.Time) {
	c.current = t
}

// Advance moves the clock forward by d.
func (c *MockClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
