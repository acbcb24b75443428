package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/chase/ability"
	"github.com/lixenwraith/chase/component"
	"github.com/lixenwraith/chase/parameter"
	"github.com/lixenwraith/chase/physics"
	"github.com/lixenwraith/chase/vmath"
)

// Autopilot drives the chaser in solo play
type Autopilot struct {
	rng      *vmath.FastRand
	lastPick time.Duration
	picked   bool
}

func NewAutopilot(seed uint64) *Autopilot {
	return &Autopilot{rng: vmath.NewFastRand(seed)}
}

// Decide returns the homing controls and an optional ability request for this tick
func (a *Autopilot) Decide(w *World, active ability.Kind, now time.Duration) (physics.Input, ability.Kind) {
	in := physics.Input{Seek: parameter.AutopilotHomingAccel}
	switch active {
	case ability.Dash:
		in.Seek = 0
	case ability.Vortex, ability.Magnet:
		in.Seek = parameter.AutopilotPullHomingAccel
	}

	if active != ability.None {
		return in, ability.None
	}
	if vmath.V2Dist(w.chaser.Pos(), w.target.Pos()) <= parameter.AutopilotAbilityMinDist {
		return in, ability.None
	}
	if !a.rng.Chance(parameter.AutopilotAbilityChance) {
		return in, ability.None
	}
	if a.picked && now-a.lastPick < parameter.AutopilotAbilityMinGap {
		return in, ability.None
	}

	kinds := ability.Kinds()
	a.lastPick = now
	a.picked = true
	return in, kinds[a.rng.Intn(len(kinds))]
}

// React applies random hops and leaps after the physics step
func (a *Autopilot) React(w *World) {
	c := &w.chaser
	t := w.target.Pos()
	dx, dy := t.X-c.X, t.Y-c.Y

	switch c.OnSurface {
	case component.SurfaceGround:
		if math.Abs(dy) > parameter.AutopilotHopMinDY && a.rng.Chance(parameter.AutopilotHopChance) {
			c.VY = -parameter.AutopilotHopVY
			c.VX += math.Cos(math.Atan2(dy, dx)) * parameter.AutopilotHopVX
			c.OnSurface = component.SurfaceNone
		}
		if t.Y < c.Y-parameter.AutopilotClimbMinDY && a.rng.Chance(parameter.AutopilotClimbChance) {
			c.VX = parameter.AutopilotClimbVX
			if t.X < w.bounds.Center().X {
				c.VX = -parameter.AutopilotClimbVX
			}
			c.VY = -parameter.AutopilotClimbVY
			c.OnSurface = component.SurfaceNone
		}

	case component.SurfaceLeftWall:
		if dx > parameter.AutopilotWallLeapMinDX && a.rng.Chance(parameter.AutopilotWallLeapChance) {
			leap(c, dx, dy)
		}

	case component.SurfaceRightWall:
		if dx < -parameter.AutopilotWallLeapMinDX && a.rng.Chance(parameter.AutopilotWallLeapChance) {
			leap(c, dx, dy)
		}
	}
}

func leap(c *component.Chaser, dx, dy float64) {
	angle := math.Atan2(dy, dx)
	c.VX = math.Cos(angle) * parameter.AutopilotWallLeapPower
	c.VY = math.Sin(angle)*parameter.AutopilotWallLeapPower - parameter.AutopilotWallLeapLift
	c.OnSurface = component.SurfaceNone
}
