package component

import (
	"time"

	"github.com/lixenwraith/chase/vmath"
)

// Clone is an autonomous copy of the chaser with a fixed lifetime
type Clone struct {
	ID        uint32
	X, Y      float64
	VX, VY    float64
	SpawnedAt time.Duration
	Lifetime  time.Duration
}

func (c *Clone) Pos() vmath.Vec2 {
	return vmath.Vec2{X: c.X, Y: c.Y}
}

// Expired reports whether the clone outlived its lifetime at now
func (c *Clone) Expired(now time.Duration) bool {
	return now-c.SpawnedAt >= c.Lifetime
}
