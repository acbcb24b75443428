package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/chase/ability"
	"github.com/lixenwraith/chase/parameter"
	"github.com/lixenwraith/chase/physics"
	"github.com/lixenwraith/chase/protocol"
	"github.com/lixenwraith/chase/vmath"
)

// ChaserSim is the authoritative side, owning chaser physics and contact detection
// The target position is a mirror fed by pointer-move
type ChaserSim struct {
	outbox
	world     *World
	abilities *ability.System
	pilot     *Autopilot

	scoreAcc time.Duration
	lastNow  time.Duration

	over       bool
	finalScore int
}

func NewChaserSim(bounds vmath.Rect, seed uint64) *ChaserSim {
	return &ChaserSim{
		world:     NewWorld(bounds, seed),
		abilities: ability.NewSystem(),
	}
}

func (s *ChaserSim) Role() protocol.Role {
	return protocol.RoleChaser
}

func (s *ChaserSim) Over() (bool, int) {
	return s.over, s.finalScore
}

// SetAutopilot hands the chaser controls to a, replacing frame controls and ability requests
func (s *ChaserSim) SetAutopilot(a *Autopilot) {
	s.pilot = a
}

// World exposes the simulation context, for tests and the solo wrapper
func (s *ChaserSim) World() *World {
	return s.world
}

func (s *ChaserSim) Apply(msg protocol.Message, now time.Duration) {
	if s.over {
		return
	}
	switch p := msg.Payload.(type) {
	case *protocol.PointerMove:
		s.world.SetTarget(vmath.V2(p.X, p.Y))
	case *protocol.CursorLine:
		b := s.world.bounds
		s.world.lines.Add(b.Clamp(vmath.V2(p.X1, p.Y1)), b.Clamp(vmath.V2(p.X2, p.Y2)), now)
	}
}

func (s *ChaserSim) Tick(f Frame) Snapshot {
	w := s.world
	if s.over {
		return s.frame()
	}

	w.beginTick(f.Now)
	s.accrueScore(f.Now)
	w.lines.Prune(f.Now)

	// Contact is checked against the state entering the tick
	active := s.abilities.Active()
	w.chaser.Size = ability.SizeMultiplier(active)
	w.chaser.Opacity = ability.OpacityMultiplier(active)
	if physics.Caught(w.chaser.Pos(), w.target.Pos(), parameter.ChaserSize*w.chaser.Size, parameter.TargetSize) {
		return s.end()
	}

	if s.pilot != nil {
		f.Controls, f.Activate = s.pilot.Decide(w, active, f.Now)
	}

	if f.Activate != ability.None && s.abilities.Activate(f.Activate, f.Now) {
		s.push(protocol.MsgAbility, &protocol.AbilityStart{Ability: f.Activate.String()})
	}

	dt := f.Dt * w.timeScale
	s.abilities.Tick(w, dt)

	active = s.abilities.Active()
	w.chaser.Size = ability.SizeMultiplier(active)
	w.chaser.Opacity = ability.OpacityMultiplier(active)

	in := f.Controls
	in.Locked = in.Locked || active == ability.Dash
	caught := physics.StepChaser(&w.chaser, in, w.env(dt))
	if s.pilot != nil && !caught {
		s.pilot.React(w)
	}
	s.orient(active, dt)

	if w.clones.Update(w.env(dt)) {
		caught = true
	}

	if push := w.waves.Update(w.target.Pos(), dt); push != (vmath.Vec2{}) {
		w.PullTarget(push)
	}

	if w.scaleChanged {
		s.push(protocol.MsgTimeScale, &protocol.TimeScale{Scale: w.timeScale})
	}
	if w.pulled != (vmath.Vec2{}) {
		s.push(protocol.MsgPullCursor, &protocol.PullCursor{DX: w.pulled.X, DY: w.pulled.Y})
	}

	if caught {
		return s.end()
	}

	s.push(protocol.MsgChaserMove, s.move())
	return s.frame()
}

// orient sets the cosmetic rotation, spinning while Vortex runs
func (s *ChaserSim) orient(active ability.Kind, dt float64) {
	c := &s.world.chaser
	if active == ability.Vortex {
		c.Rotation = math.Mod(c.Rotation+parameter.VortexSpinPerFrame*dt, 360)
		return
	}
	c.Rotation = physics.Rotation(c, s.world.target.Pos())
}

func (s *ChaserSim) accrueScore(now time.Duration) {
	if now > s.lastNow {
		s.scoreAcc += now - s.lastNow
	}
	s.lastNow = now
	for s.scoreAcc >= parameter.ScoreInterval {
		s.world.score++
		s.scoreAcc -= parameter.ScoreInterval
	}
}

// end freezes the round and announces the final score
func (s *ChaserSim) end() Snapshot {
	s.over = true
	s.finalScore = s.world.score
	s.abilities.Cancel(s.world)
	s.push(protocol.MsgChaserMove, s.move())
	s.push(protocol.MsgGameOver, &protocol.GameOver{Score: s.finalScore})
	return s.frame()
}

func (s *ChaserSim) move() *protocol.ChaserMove {
	w := s.world
	return &protocol.ChaserMove{
		Chaser:      protocol.FromChaser(w.chaser),
		Ability:     s.abilities.Active().String(),
		RemainingMs: s.abilities.Remaining().Milliseconds(),
		Clones:      protocol.FromClones(w.clones.Clones()),
		Waves:       protocol.FromWaves(w.waves.Waves()),
		Score:       w.score,
	}
}

func (s *ChaserSim) frame() Snapshot {
	snap := s.world.snapshot(protocol.RoleChaser, s.abilities.Active(), s.abilities.Remaining())
	snap.GameOver = s.over
	snap.FinalScore = s.finalScore
	return snap
}
