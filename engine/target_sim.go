package engine

import (
	"time"

	"github.com/lixenwraith/chase/ability"
	"github.com/lixenwraith/chase/protocol"
	"github.com/lixenwraith/chase/vmath"
)

// TargetSim owns the pointer-driven target and the lines it draws
// The chaser and its clones and rings are mirrors overwritten by chaser-move, never re-simulated
type TargetSim struct {
	outbox
	world   *World
	timer   ability.Timer
	pointer pointerDriver

	over       bool
	finalScore int
}

func NewTargetSim(bounds vmath.Rect) *TargetSim {
	return &TargetSim{world: NewWorld(bounds, 1)}
}

func (s *TargetSim) Role() protocol.Role {
	return protocol.RoleTarget
}

func (s *TargetSim) Over() (bool, int) {
	return s.over, s.finalScore
}

func (s *TargetSim) World() *World {
	return s.world
}

func (s *TargetSim) Apply(msg protocol.Message, now time.Duration) {
	if s.over {
		return
	}
	w := s.world
	switch p := msg.Payload.(type) {
	case *protocol.ChaserMove:
		w.chaser = p.Chaser.ToChaser()
		w.clones.Replace(protocol.ToClones(p.Clones))
		w.waves.Replace(protocol.ToWaves(p.Waves))
		w.score = p.Score
		kind, _ := ability.ParseKind(p.Ability)
		s.timer.Kind = kind
		s.timer.Remaining = time.Duration(p.RemainingMs) * time.Millisecond

	case *protocol.AbilityStart:
		if kind, ok := ability.ParseKind(p.Ability); ok {
			s.timer.Start(kind)
		}

	case *protocol.PullCursor:
		before := w.target.Pos()
		w.PullTarget(vmath.V2(p.DX, p.DY))
		if w.target.Pos() != before {
			s.push(protocol.MsgPointerMove, &protocol.PointerMove{X: w.target.X, Y: w.target.Y})
		}

	case *protocol.TimeScale:
		if p.Scale > 0 {
			w.timeScale = p.Scale
		}

	case *protocol.GameOver:
		s.over = true
		s.finalScore = p.Score
		w.score = p.Score
	}
}

func (s *TargetSim) Tick(f Frame) Snapshot {
	if s.over {
		return s.frame()
	}
	w := s.world
	w.beginTick(f.Now)
	s.timer.Tick()
	w.lines.Prune(f.Now)

	if f.PointerMoved {
		s.movePointer(f.Pointer, f.PointerPressed, f.Now)
	}
	return s.frame()
}

func (s *TargetSim) movePointer(raw vmath.Vec2, pressed bool, now time.Duration) {
	moved, line := s.pointer.apply(s.world, raw, pressed, now)
	if moved {
		s.push(protocol.MsgPointerMove, &protocol.PointerMove{X: s.world.target.X, Y: s.world.target.Y})
	}
	if line != nil {
		s.push(protocol.MsgCursorLine, line)
	}
}

func (s *TargetSim) frame() Snapshot {
	snap := s.world.snapshot(protocol.RoleTarget, s.timer.Kind, s.timer.Remaining)
	snap.GameOver = s.over
	snap.FinalScore = s.finalScore
	return snap
}
