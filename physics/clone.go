package physics

import (
	"math"

	"github.com/lixenwraith/chase/component"
	"github.com/lixenwraith/chase/parameter"
	"github.com/lixenwraith/chase/vmath"
)

// StepClone advances a clone by one tick
// Clones home horizontally, fall, bounce off floor, walls and lines, and never stand
// Returns true when the clone touches the target
func StepClone(cl *component.Clone, env Env) bool {
	if Caught(cl.Pos(), env.Target, env.Diameter, env.TargetDiameter) {
		return true
	}

	dt := env.Dt
	angle := vmath.V2Angle(vmath.V2Sub(env.Target, cl.Pos()))
	cl.VX += math.Cos(angle) * parameter.CloneAttraction * dt
	cl.VY += parameter.Gravity * dt

	cl.X += cl.VX * dt
	cl.Y += cl.VY * dt

	radius := env.Diameter / 2
	inner := env.Bounds.Inset(radius)
	if cl.Y >= inner.MaxY {
		cl.Y = inner.MaxY
		cl.VY = -math.Abs(cl.VY) * parameter.CloneFloorBounce
	}
	if cl.Y <= inner.MinY {
		cl.Y = inner.MinY
		cl.VY = math.Abs(cl.VY) * parameter.CeilingRestitution
	}
	if cl.X <= inner.MinX || cl.X >= inner.MaxX {
		cl.VX *= -parameter.CloneWallBounce
		cl.X = vmath.Clamp(cl.X, inner.MinX, inner.MaxX)
	}

	for i := range env.Lines {
		l := &env.Lines[i]
		contact, ok := CircleSegment(cl.Pos(), radius, l.A(), l.B(), parameter.LineThickness)
		if !ok {
			continue
		}
		cl.X += contact.Normal.X * contact.Depth
		cl.Y += contact.Normal.Y * contact.Depth
		bounce(&cl.VX, &cl.VY, contact.Normal, parameter.LineRestitution)
	}

	cl.VX *= math.Pow(parameter.CloneDampingX, dt)
	return false
}
