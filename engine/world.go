package engine

import (
	"time"

	"github.com/lixenwraith/chase/ability"
	"github.com/lixenwraith/chase/component"
	"github.com/lixenwraith/chase/parameter"
	"github.com/lixenwraith/chase/physics"
	"github.com/lixenwraith/chase/protocol"
	"github.com/lixenwraith/chase/system"
	"github.com/lixenwraith/chase/vmath"
)

// World is the simulation context owned by exactly one simulator
// It implements ability.World for the chaser side
type World struct {
	bounds vmath.Rect
	now    time.Duration
	rng    *vmath.FastRand

	chaser component.Chaser
	target component.Target

	clones *system.CloneSystem
	lines  *system.LineSystem
	waves  *system.ShockwaveSystem

	timeScale float64
	score     int

	// Per-tick effect accumulators, reset by beginTick
	pulled       vmath.Vec2
	scaleChanged bool
}

func NewWorld(bounds vmath.Rect, seed uint64) *World {
	return &World{
		bounds:    bounds,
		rng:       vmath.NewFastRand(seed),
		chaser:    component.NewChaser(bounds, parameter.ChaserSize),
		target:    component.Target{X: bounds.MinX + bounds.Width()*3/4, Y: bounds.MinY + bounds.Height()/2},
		clones:    system.NewCloneSystem(),
		lines:     system.NewLineSystem(),
		waves:     system.NewShockwaveSystem(),
		timeScale: 1,
	}
}

func (w *World) Chaser() *component.Chaser { return &w.chaser }
func (w *World) Target() vmath.Vec2 { return w.target.Pos() }
func (w *World) Bounds() vmath.Rect { return w.bounds }
func (w *World) Rand() *vmath.FastRand { return w.rng }

func (w *World) SpawnClones(center vmath.Vec2) {
	w.clones.Spawn(center, w.now)
}

func (w *World) SpawnShockwaves(center vmath.Vec2) {
	w.waves.Spawn(center)
}

func (w *World) SetTimeScale(scale float64) {
	if w.timeScale != scale {
		w.timeScale = scale
		w.scaleChanged = true
	}
}

// PullTarget displaces the target, keeping its whole marker inside the viewport
func (w *World) PullTarget(delta vmath.Vec2) {
	moved := w.targetArea().Clamp(vmath.V2Add(w.target.Pos(), delta))
	w.pulled = vmath.V2Add(w.pulled, vmath.V2Sub(moved, w.target.Pos()))
	w.target = component.Target{X: moved.X, Y: moved.Y}
}

// SetTarget places the target at p clamped to the viewport
func (w *World) SetTarget(p vmath.Vec2) {
	c := w.bounds.Clamp(p)
	w.target = component.Target{X: c.X, Y: c.Y}
}

func (w *World) targetArea() vmath.Rect {
	return w.bounds.Inset(parameter.TargetSize)
}

func (w *World) beginTick(now time.Duration) {
	w.now = now
	w.pulled = vmath.Vec2{}
	w.scaleChanged = false
}

// env builds the physics context for the current tick
func (w *World) env(dt float64) physics.Env {
	return physics.Env{
		Bounds:         w.bounds,
		Diameter:       parameter.ChaserSize,
		TargetDiameter: parameter.TargetSize,
		Target:         w.target.Pos(),
		Lines:          w.lines.Lines(),
		Now:            w.now,
		Dt:             dt,
	}
}

// snapshot copies the world into a presenter-safe value
func (w *World) snapshot(role protocol.Role, active ability.Kind, remaining time.Duration) Snapshot {
	return Snapshot{
		Role:      role,
		Bounds:    w.bounds,
		Now:       w.now,
		Chaser:    w.chaser,
		Target:    w.target,
		Clones:    append([]component.Clone(nil), w.clones.Clones()...),
		Lines:     append([]component.Line(nil), w.lines.Lines()...),
		Waves:     append([]component.Shockwave(nil), w.waves.Waves()...),
		LineTTL:   w.lines.TTL(),
		Ability:   active,
		Remaining: remaining,
		TimeScale: w.timeScale,
		Score:     w.score,
	}
}
