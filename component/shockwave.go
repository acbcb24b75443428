package component

import "github.com/lixenwraith/chase/vmath"

// Shockwave is an expanding ring anchored at its spawn point
type Shockwave struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Speed     float64
}

func (s *Shockwave) Center() vmath.Vec2 {
	return vmath.Vec2{X: s.X, Y: s.Y}
}

// Done reports whether the ring has grown past its max radius
func (s *Shockwave) Done() bool {
	return s.Radius > s.MaxRadius
}
