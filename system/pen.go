package system

import (
	"github.com/lixenwraith/chase/parameter"
	"github.com/lixenwraith/chase/vmath"
)

// Pen turns a pointer drag into line segments of at least LineMinSegment length
type Pen struct {
	last    vmath.Vec2
	drawing bool
}

// Move feeds a pointer sample and returns a finished segment when the drag travelled far enough
func (p *Pen) Move(pos vmath.Vec2, pressed bool) (a, b vmath.Vec2, ok bool) {
	if !pressed {
		p.drawing = false
		return
	}
	if !p.drawing {
		p.drawing = true
		p.last = pos
		return
	}
	if vmath.V2Dist(p.last, pos) < parameter.LineMinSegment {
		return
	}
	a, b = p.last, pos
	p.last = pos
	return a, b, true
}

// Drawing reports whether a drag is in progress
func (p *Pen) Drawing() bool {
	return p.drawing
}
