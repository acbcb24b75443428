package component

import (
	"time"

	"github.com/lixenwraith/chase/vmath"
)

// Chaser is the pursuing character, written only by the chaser side
type Chaser struct {
	X, Y      float64
	VX, VY    float64
	OnSurface Surface

	// Rotation in degrees, cosmetic
	Rotation float64

	// Size and Opacity are multipliers derived from the active ability
	Size    float64
	Opacity float64

	// Jump streak bookkeeping
	Streak   int
	LandedAt time.Duration
	Landed   bool
}

// NewChaser places a chaser at rest on the floor of bounds
func NewChaser(bounds vmath.Rect, diameter float64) Chaser {
	return Chaser{
		X:         bounds.MinX + bounds.Width()/4,
		Y:         bounds.MaxY - diameter/2,
		OnSurface: SurfaceGround,
		Size:      1,
		Opacity:   1,
	}
}

func (c *Chaser) Pos() vmath.Vec2 {
	return vmath.Vec2{X: c.X, Y: c.Y}
}

func (c *Chaser) Vel() vmath.Vec2 {
	return vmath.Vec2{X: c.VX, Y: c.VY}
}

func (c *Chaser) SetPos(p vmath.Vec2) {
	c.X, c.Y = p.X, p.Y
}

func (c *Chaser) SetVel(v vmath.Vec2) {
	c.VX, c.VY = v.X, v.Y
}

// Radius returns the effective collision radius for a base diameter
func (c *Chaser) Radius(diameter float64) float64 {
	size := c.Size
	if size == 0 {
		size = 1
	}
	return diameter * size / 2
}
