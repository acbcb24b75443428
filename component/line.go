package component

import (
	"time"

	"github.com/lixenwraith/chase/vmath"
)

// Line is a transient obstacle segment drawn by the target player
type Line struct {
	ID        uint32
	X1, Y1    float64
	X2, Y2    float64
	CreatedAt time.Duration
}

func (l *Line) A() vmath.Vec2 { return vmath.Vec2{X: l.X1, Y: l.Y1} }
func (l *Line) B() vmath.Vec2 { return vmath.Vec2{X: l.X2, Y: l.Y2} }

func (l *Line) Age(now time.Duration) time.Duration {
	return now - l.CreatedAt
}

// Expired reports age >= ttl
func (l *Line) Expired(now, ttl time.Duration) bool {
	return l.Age(now) >= ttl
}

// Opacity fades linearly from 1 to 0 over ttl, cosmetic only
func (l *Line) Opacity(now, ttl time.Duration) float64 {
	if ttl <= 0 {
		return 0
	}
	age := l.Age(now)
	if age < 0 {
		return 1
	}
	return vmath.Clamp(1-float64(age)/float64(ttl), 0, 1)
}
