package physics

import (
	"math"
	"time"

	"github.com/lixenwraith/chase/component"
	"github.com/lixenwraith/chase/parameter"
	"github.com/lixenwraith/chase/vmath"
)

// Input is the chaser's control state for one tick
type Input struct {
	Left, Right bool
	Down        bool
	Jump        bool

	// Locked ignores directional input, set while Dash carries the chaser
	Locked bool

	// Seek is a homing acceleration toward the target, zero for human players
	Seek float64
}

// Env is the read-only context of a single step
type Env struct {
	Bounds         vmath.Rect
	Diameter       float64 // Chaser base diameter before ability multiplier
	TargetDiameter float64
	Target         vmath.Vec2
	Lines          []component.Line
	Now            time.Duration
	Dt             float64
}

// StepChaser advances the chaser by one tick
// Returns true when the chaser already touches the target, in which case nothing is integrated
func StepChaser(c *component.Chaser, in Input, env Env) bool {
	radius := c.Radius(env.Diameter)
	if Caught(c.Pos(), env.Target, radius*2, env.TargetDiameter) {
		return true
	}

	dt := env.Dt
	prev := c.OnSurface
	toTarget := vmath.V2Sub(env.Target, c.Pos())

	if !in.Locked {
		applyControls(c, in, env.Now, vmath.Sign(toTarget.X), dt)
	}

	if in.Seek > 0 {
		dir := vmath.V2Normalize(toTarget)
		c.VX += dir.X * in.Seek * dt
		c.VY += dir.Y * in.Seek * dt
	}

	g := parameter.Gravity
	if c.OnSurface.IsWall() {
		g *= parameter.WallSlideGravityFactor
	}
	c.VY += g * dt

	c.X += c.VX * dt
	c.Y += c.VY * dt

	if prev != component.SurfaceNone {
		c.VX *= math.Pow(parameter.DampingGroundX, dt)
		c.VY *= math.Pow(parameter.DampingGroundY, dt)
	} else {
		c.VX *= math.Pow(parameter.DampingAirX, dt)
		c.VY *= math.Pow(parameter.DampingAirY, dt)
	}

	c.OnSurface = component.SurfaceNone
	resolveBounds(c, env.Bounds.Inset(radius))
	resolveLines(c, env.Lines, radius)

	if c.OnSurface == component.SurfaceGround && prev != component.SurfaceGround {
		c.LandedAt = env.Now
		c.Landed = true
	}

	return false
}

func applyControls(c *component.Chaser, in Input, now time.Duration, dir, dt float64) {
	// Running breaks the jump chain, the next ground jump starts from the base impulse
	if in.Left || in.Right {
		c.Streak = 0
		c.Landed = false
	}
	if in.Left && c.VX > -parameter.MaxRunSpeed {
		c.VX -= parameter.MoveAccel * dt
	}
	if in.Right && c.VX < parameter.MaxRunSpeed {
		c.VX += parameter.MoveAccel * dt
	}
	if in.Down && c.OnSurface == component.SurfaceNone {
		c.VY += parameter.CrouchAccel * dt
	}
	if in.Jump {
		jump(c, in.Left || in.Right, now, dir)
	}
}

// jump applies the surface dependent jump impulse, no-op in the air
// dir is the horizontal direction toward the target (-1, 0, 1)
func jump(c *component.Chaser, horizontal bool, now time.Duration, dir float64) {
	switch {
	case c.OnSurface == component.SurfaceGround:
		switch {
		case horizontal:
			c.Streak = 0
		case c.Landed && now-c.LandedAt <= parameter.JumpStreakWindow:
			c.Streak = min(c.Streak+1, parameter.JumpStreakMax)
		default:
			c.Streak = 0
		}
		c.VY = -(parameter.JumpBaseVY + float64(c.Streak)*parameter.JumpStreakVY)
		c.VX += dir * float64(c.Streak) * parameter.JumpStreakVX
		c.Landed = false

	case c.OnSurface.IsWall():
		c.Streak = 0
		away := 1.0
		if c.OnSurface == component.SurfaceRightWall {
			away = -1
		}
		c.VX = away * parameter.WallJumpVX
		c.VY = -parameter.WallJumpVY

	case c.OnSurface == component.SurfaceLine:
		c.Streak = 0
		c.VY = -parameter.JumpBaseVY

	default:
		return
	}
	c.OnSurface = component.SurfaceNone
}

// resolveBounds clamps the center into inner, the viewport inset by the radius
func resolveBounds(c *component.Chaser, inner vmath.Rect) {
	if c.Y >= inner.MaxY {
		c.Y = inner.MaxY
		c.VY = 0
		c.OnSurface = component.SurfaceGround
	}
	if c.Y <= inner.MinY {
		c.Y = inner.MinY
		c.VY = math.Abs(c.VY) * parameter.CeilingRestitution
		c.OnSurface = component.SurfaceCeiling
	}
	if c.X <= inner.MinX {
		c.X = inner.MinX
		c.VX = math.Abs(c.VX) * parameter.WallRestitution
		c.OnSurface = component.SurfaceLeftWall
	}
	if c.X >= inner.MaxX {
		c.X = inner.MaxX
		c.VX = -math.Abs(c.VX) * parameter.WallRestitution
		c.OnSurface = component.SurfaceRightWall
	}
}

// resolveLines pushes the chaser out of every overlapping line
// A falling chaser landing on a predominantly horizontal line stands on it, otherwise it bounces
func resolveLines(c *component.Chaser, lines []component.Line, radius float64) {
	for i := range lines {
		l := &lines[i]
		contact, ok := CircleSegment(c.Pos(), radius, l.A(), l.B(), parameter.LineThickness)
		if !ok {
			continue
		}

		n := contact.Normal
		c.X += n.X * contact.Depth
		c.Y += n.Y * contact.Depth

		if math.Abs(n.Y) > math.Abs(n.X) && n.Y < 0 && c.VY > 0 {
			c.VY = 0
			c.OnSurface = component.SurfaceLine
			continue
		}

		bounce(&c.VX, &c.VY, n, parameter.LineRestitution)
	}
}

// bounce reflects the velocity component moving into the normal, scaled by restitution
func bounce(vx, vy *float64, n vmath.Vec2, restitution float64) {
	vn := *vx*n.X + *vy*n.Y
	if vn >= 0 {
		return
	}
	k := (1 + restitution) * vn
	*vx -= k * n.X
	*vy -= k * n.Y
}

// Rotation returns the cosmetic heading in degrees, facing the target
func Rotation(c *component.Chaser, target vmath.Vec2) float64 {
	angle := vmath.V2Angle(vmath.V2Sub(target, c.Pos()))
	return angle*180/math.Pi + 90
}
