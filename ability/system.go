package ability

import (
	"math"
	"time"

	"github.com/lixenwraith/chase/component"
	"github.com/lixenwraith/chase/parameter"
	"github.com/lixenwraith/chase/vmath"
)

// World is the mutable context effects are applied to
type World interface {
	Chaser() *component.Chaser
	Target() vmath.Vec2
	Bounds() vmath.Rect
	Rand() *vmath.FastRand

	SpawnClones(center vmath.Vec2)
	SpawnShockwaves(center vmath.Vec2)
	SetTimeScale(scale float64)

	// PullTarget displaces the target by delta
	PullTarget(delta vmath.Vec2)
}

// System is the chaser's ability state machine: Idle or Active(kind, remaining), plus per-kind cooldown expiry
// Not safe for concurrent use
type System struct {
	active    Kind
	remaining time.Duration
	expiry    [kindCount]time.Duration
}

func NewSystem() *System {
	return &System{}
}

// Active returns the active kind, None when idle
func (s *System) Active() Kind {
	return s.active
}

func (s *System) Remaining() time.Duration {
	return s.remaining
}

// Expiry returns the cooldown expiry of k
func (s *System) Expiry(k Kind) time.Duration {
	if k >= kindCount {
		return 0
	}
	return s.expiry[k]
}

// Ready reports whether k can be activated at now
func (s *System) Ready(k Kind, now time.Duration) bool {
	return k != None && k < kindCount && s.active == None && now >= s.expiry[k]
}

// Activate starts k if idle and off cooldown, otherwise it is a silent no-op
func (s *System) Activate(k Kind, now time.Duration) bool {
	if !s.Ready(k, now) {
		return false
	}
	spec := k.Spec()
	s.active = k
	s.remaining = spec.Duration
	s.expiry[k] = now + spec.Cooldown
	return true
}

// Tick applies the active kind's effects and counts down its duration
// Returns the kind that ended on this tick, None otherwise
func (s *System) Tick(w World, dt float64) Kind {
	if s.active == None {
		return None
	}

	k := s.active
	spec := k.Spec()
	if s.remaining == spec.Duration && spec.Effect == EffectOneShot {
		fire(k, w)
	}
	if spec.Effect == EffectContinuous {
		pull(w, spec.Pull, dt)
	}

	s.remaining -= parameter.AbilityTickDecrement
	if s.remaining > 0 {
		return None
	}

	s.active = None
	s.remaining = 0
	if k == TimeSlow {
		w.SetTimeScale(1)
	}
	return k
}

// Cancel drops the active ability without touching cooldowns
func (s *System) Cancel(w World) {
	if s.active == TimeSlow && w != nil {
		w.SetTimeScale(1)
	}
	s.active = None
	s.remaining = 0
}

func fire(k Kind, w World) {
	c := w.Chaser()
	target := w.Target()
	angle := vmath.V2Angle(vmath.V2Sub(target, c.Pos()))

	switch k {
	case SuperJump:
		c.VY = -parameter.SuperJumpVY
		c.VX = math.Cos(angle) * parameter.SuperJumpVX
		c.OnSurface = component.SurfaceNone

	case Dash:
		c.SetVel(vmath.V2FromAngle(angle, parameter.DashSpeed))

	case Teleport:
		rng := w.Rand()
		dist := parameter.TeleportMinDist + rng.Float64()*parameter.TeleportDistRange
		around := angle + math.Pi + (rng.Float64()-0.5)*parameter.TeleportSpread
		p := vmath.V2Add(target, vmath.V2FromAngle(around, dist))
		c.SetPos(w.Bounds().Inset(parameter.ChaserSize).Clamp(p))
		c.SetVel(vmath.V2FromAngle(angle, parameter.TeleportDriftSpeed))
		c.OnSurface = component.SurfaceNone

	case Clone:
		w.SpawnClones(c.Pos())

	case Shockwave:
		w.SpawnShockwaves(c.Pos())
		c.SetVel(vmath.Vec2{})

	case TimeSlow:
		w.SetTimeScale(parameter.TimeSlowScale)
	}
}

// pull moves the target toward the chaser by strength per nominal frame
func pull(w World, strength, dt float64) {
	delta := vmath.V2Sub(w.Chaser().Pos(), w.Target())
	if vmath.V2Mag(delta) < vmath.Epsilon {
		return
	}
	w.PullTarget(vmath.V2Scale(vmath.V2Normalize(delta), strength*dt))
}
