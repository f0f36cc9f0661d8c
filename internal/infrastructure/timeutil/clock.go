// Package timeutil abstracts time.Now so snapshot timestamps stay
// deterministic in tests.
package timeutil

import (
	"time"
)

// Clock supplies the current time. Production code uses RealClock; fixture
// generation and tests pin a MockClock so scraped_at values are stable.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

// NewRealClock creates a new RealClock instance.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock returns a controllable time for testing.
type MockClock struct {
	fixedTime time.Time
}

// NewMockClock creates a mock clock pinned to the given time.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{fixedTime: t}
}

// NewMockClockFromString creates a mock clock from an RFC3339 string.
// Panics on a bad string; test setup only.
func NewMockClockFromString(timeStr string) *MockClock {
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		panic("invalid time string: " + err.Error())
	}
	return &MockClock{fixedTime: t}
}

// Now returns the pinned time.
func (m *MockClock) Now() time.Time {
	return m.fixedTime
}

// Set pins the clock to a new time.
func (m *MockClock) Set(t time.Time) {
	m.fixedTime = t
}

// Advance moves the pinned time forward (or back, with a negative duration).
func (m *MockClock) Advance(d time.Duration) {
	m.fixedTime = m.fixedTime.Add(d)
}

var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
