package component

import "github.com/lixenwraith/chase/vmath"

// Target is the fleeing marker driven by the pointer
type Target struct {
	X, Y float64
}

func (t Target) Pos() vmath.Vec2 {
	return vmath.Vec2{X: t.X, Y: t.Y}
}

