package system

import (
	"math"
	"time"

	"github.com/lixenwraith/chase/component"
	"github.com/lixenwraith/chase/parameter"
	"github.com/lixenwraith/chase/physics"
	"github.com/lixenwraith/chase/vmath"
)

// CloneSystem owns the live clones of the chaser
type CloneSystem struct {
	clones []component.Clone
	nextID uint32
}

func NewCloneSystem() *CloneSystem {
	return &CloneSystem{}
}

// Spawn places a ring of clones around center moving outward
func (s *CloneSystem) Spawn(center vmath.Vec2, now time.Duration) {
	step := 2 * math.Pi / parameter.CloneCount
	for i := 0; i < parameter.CloneCount; i++ {
		angle := step * float64(i)
		pos := vmath.V2Add(center, vmath.V2FromAngle(angle, parameter.CloneSpawnRadius))
		vel := vmath.V2FromAngle(angle, parameter.CloneSpawnSpeed)
		s.nextID++
		s.clones = append(s.clones, component.Clone{
			ID:        s.nextID,
			X:         pos.X,
			Y:         pos.Y,
			VX:        vel.X,
			VY:        vel.Y,
			SpawnedAt: now,
			Lifetime:  parameter.CloneLifetime,
		})
	}
}

// Update prunes expired clones and steps the rest
// Returns true if any clone touched the target
func (s *CloneSystem) Update(env physics.Env) bool {
	live := s.clones[:0]
	for _, cl := range s.clones {
		if !cl.Expired(env.Now) {
			live = append(live, cl)
		}
	}
	s.clones = live

	caught := false
	for i := range s.clones {
		if physics.StepClone(&s.clones[i], env) {
			caught = true
		}
	}
	return caught
}

// Clones returns the live clones, valid until the next Update
func (s *CloneSystem) Clones() []component.Clone {
	return s.clones
}

// Replace overwrites the set from a mirrored snapshot
func (s *CloneSystem) Replace(clones []component.Clone) {
	s.clones = append(s.clones[:0], clones...)
}
