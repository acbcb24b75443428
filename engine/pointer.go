package engine

import (
	"time"

	"github.com/lixenwraith/chase/protocol"
	"github.com/lixenwraith/chase/system"
	"github.com/lixenwraith/chase/vmath"
)

// pointerDriver moves the target from local pointer samples and draws lines while the button is held
type pointerDriver struct {
	pen system.Pen
	set bool
}

// apply clamps raw to the viewport, dilutes the motion while time is slowed and feeds the pen
// Returns whether the target moved and the line drawn, if any
func (d *pointerDriver) apply(w *World, raw vmath.Vec2, pressed bool, now time.Duration) (bool, *protocol.CursorLine) {
	next := w.bounds.Clamp(raw)
	if d.set && w.timeScale < 1 {
		next = vmath.V2Lerp(w.target.Pos(), next, w.timeScale)
	}
	d.set = true

	moved := next != w.target.Pos()
	if moved {
		w.SetTarget(next)
	}

	a, b, ok := d.pen.Move(w.target.Pos(), pressed)
	if !ok || !w.lines.Add(a, b, now) {
		return moved, nil
	}
	return moved, &protocol.CursorLine{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y}
}
