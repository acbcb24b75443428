package system

import (
	"math"

	"github.com/lixenwraith/chase/component"
	"github.com/lixenwraith/chase/parameter"
	"github.com/lixenwraith/chase/vmath"
)

// ShockwaveSystem owns the expanding rings spawned by the chaser
type ShockwaveSystem struct {
	waves []component.Shockwave
}

func NewShockwaveSystem() *ShockwaveSystem {
	return &ShockwaveSystem{}
}

// Spawn adds concentric rings at center
func (s *ShockwaveSystem) Spawn(center vmath.Vec2) {
	for i := 0; i < parameter.ShockwaveCount; i++ {
		s.waves = append(s.waves, component.Shockwave{
			X:         center.X,
			Y:         center.Y,
			Radius:    parameter.ShockwaveBaseRadius + float64(i)*parameter.ShockwaveRadiusStep,
			MaxRadius: parameter.ShockwaveMaxRadius,
			Speed:     parameter.ShockwaveSpeed,
		})
	}
}

// Update grows every ring, prunes finished ones and returns the summed outward push on the target
func (s *ShockwaveSystem) Update(target vmath.Vec2, dt float64) vmath.Vec2 {
	var push vmath.Vec2
	live := s.waves[:0]
	for _, w := range s.waves {
		offset := vmath.V2Sub(target, w.Center())
		if math.Abs(vmath.V2Mag(offset)-w.Radius) < parameter.ShockwaveBand {
			push = vmath.V2Add(push, vmath.V2FromAngle(vmath.V2Angle(offset), parameter.ShockwavePush))
		}

		w.Radius += w.Speed * dt
		if !w.Done() {
			live = append(live, w)
		}
	}
	s.waves = live
	return push
}

// Waves returns the live rings, valid until the next mutation
func (s *ShockwaveSystem) Waves() []component.Shockwave {
	return s.waves
}

// Replace overwrites the set from a mirrored snapshot
func (s *ShockwaveSystem) Replace(waves []component.Shockwave) {
	s.waves = append(s.waves[:0], waves...)
}
