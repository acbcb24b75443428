package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/chase/parameter"
)

// TimeProvider is the wall clock source of the frame loop
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads time.Now, which carries a monotonic reading
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance moves the mocked time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// FrameScale converts elapsed wall time to nominal frames, clamped to [0, MaxFrameScale]
func FrameScale(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	scale := float64(elapsed) / float64(parameter.FrameUpdateInterval)
	if scale > parameter.MaxFrameScale {
		return parameter.MaxFrameScale
	}
	return scale
}

// Stepper tracks round time and the bounded per-tick frame scale
type Stepper struct {
	start time.Time
	last  time.Time
}

func NewStepper(now time.Time) *Stepper {
	return &Stepper{start: now, last: now}
}

// Step returns the frame scale since the previous call and the round time at now
func (s *Stepper) Step(now time.Time) (float64, time.Duration) {
	dt := FrameScale(now.Sub(s.last))
	s.last = now
	return dt, now.Sub(s.start)
}

// Elapsed returns round time at now without advancing
func (s *Stepper) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.start)
}
