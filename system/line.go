package system

import (
	"time"

	"github.com/lixenwraith/chase/component"
	"github.com/lixenwraith/chase/parameter"
	"github.com/lixenwraith/chase/vmath"
)

// LineSystem owns obstacle lines, removed only by expiry
type LineSystem struct {
	lines  []component.Line
	ttl    time.Duration
	nextID uint32
}

func NewLineSystem() *LineSystem {
	return &LineSystem{ttl: parameter.LineTTL}
}

// TTL returns the line lifetime
func (s *LineSystem) TTL() time.Duration {
	return s.ttl
}

// Add appends a segment stamped with now, zero-length segments are dropped
func (s *LineSystem) Add(a, b vmath.Vec2, now time.Duration) bool {
	if vmath.V2MagSq(vmath.V2Sub(b, a)) < vmath.Epsilon {
		return false
	}
	s.nextID++
	s.lines = append(s.lines, component.Line{
		ID:        s.nextID,
		X1:        a.X,
		Y1:        a.Y,
		X2:        b.X,
		Y2:        b.Y,
		CreatedAt: now,
	})
	return true
}

// Prune drops lines whose age reached the TTL
func (s *LineSystem) Prune(now time.Duration) {
	live := s.lines[:0]
	for _, l := range s.lines {
		if !l.Expired(now, s.ttl) {
			live = append(live, l)
		}
	}
	s.lines = live
}

// Lines returns the live lines, valid until the next mutation
func (s *LineSystem) Lines() []component.Line {
	return s.lines
}
