package protocol

import (
	"time"

	"github.com/lixenwraith/chase/component"
)

// ChaserState is the wire form of component.Chaser
type ChaserState struct {
	X         float64       `msgpack:"x"`
	Y         float64       `msgpack:"y"`
	VX        float64       `msgpack:"vx"`
	VY        float64       `msgpack:"vy"`
	OnSurface string        `msgpack:"on_surface"`
	Rotation  float64       `msgpack:"rotation"`
	Size      float64       `msgpack:"size"`
	Opacity   float64       `msgpack:"opacity"`
	Streak    int           `msgpack:"streak"`
	Landed    bool          `msgpack:"landed"`
	LandedAt  time.Duration `msgpack:"landed_at"`
}

func FromChaser(c component.Chaser) ChaserState {
	return ChaserState{
		X:         c.X,
		Y:         c.Y,
		VX:        c.VX,
		VY:        c.VY,
		OnSurface: c.OnSurface.String(),
		Rotation:  c.Rotation,
		Size:      c.Size,
		Opacity:   c.Opacity,
		Streak:    c.Streak,
		Landed:    c.Landed,
		LandedAt:  c.LandedAt,
	}
}

func (s ChaserState) ToChaser() component.Chaser {
	return component.Chaser{
		X:         s.X,
		Y:         s.Y,
		VX:        s.VX,
		VY:        s.VY,
		OnSurface: component.ParseSurface(s.OnSurface),
		Rotation:  s.Rotation,
		Size:      s.Size,
		Opacity:   s.Opacity,
		Streak:    s.Streak,
		Landed:    s.Landed,
		LandedAt:  s.LandedAt,
	}
}

type CloneState struct {
	ID        uint32        `msgpack:"id"`
	X         float64       `msgpack:"x"`
	Y         float64       `msgpack:"y"`
	VX        float64       `msgpack:"vx"`
	VY        float64       `msgpack:"vy"`
	SpawnedAt time.Duration `msgpack:"spawned_at"`
	Lifetime  time.Duration `msgpack:"lifetime"`
}

func FromClones(clones []component.Clone) []CloneState {
	if len(clones) == 0 {
		return nil
	}
	out := make([]CloneState, len(clones))
	for i, c := range clones {
		out[i] = CloneState(c)
	}
	return out
}

func ToClones(states []CloneState) []component.Clone {
	out := make([]component.Clone, len(states))
	for i, s := range states {
		out[i] = component.Clone(s)
	}
	return out
}

type WaveState struct {
	X         float64 `msgpack:"x"`
	Y         float64 `msgpack:"y"`
	Radius    float64 `msgpack:"radius"`
	MaxRadius float64 `msgpack:"max_radius"`
	Speed     float64 `msgpack:"speed"`
}

func FromWaves(waves []component.Shockwave) []WaveState {
	if len(waves) == 0 {
		return nil
	}
	out := make([]WaveState, len(waves))
	for i, w := range waves {
		out[i] = WaveState(w)
	}
	return out
}

func ToWaves(states []WaveState) []component.Shockwave {
	out := make([]component.Shockwave, len(states))
	for i, s := range states {
		out[i] = component.Shockwave(s)
	}
	return out
}
