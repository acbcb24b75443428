package engine

import (
	"time"

	"github.com/lixenwraith/chase/physics"
	"github.com/lixenwraith/chase/protocol"
	"github.com/lixenwraith/chase/vmath"
)

// SoloSim runs both authorities locally: the autopilot chases the local pointer
type SoloSim struct {
	chaser  *ChaserSim
	pointer pointerDriver
}

func NewSoloSim(bounds vmath.Rect, seed uint64) *SoloSim {
	cs := NewChaserSim(bounds, seed)
	cs.SetAutopilot(NewAutopilot(seed*2654435761 + 1))
	return &SoloSim{chaser: cs}
}

// Role is the local player's side
func (s *SoloSim) Role() protocol.Role {
	return protocol.RoleTarget
}

func (s *SoloSim) Over() (bool, int) {
	return s.chaser.Over()
}

func (s *SoloSim) World() *World {
	return s.chaser.world
}

// Apply is a no-op, there is no remote side
func (s *SoloSim) Apply(protocol.Message, time.Duration) {}

// Outbound is always empty
func (s *SoloSim) Outbound() []protocol.Message {
	return nil
}

func (s *SoloSim) Tick(f Frame) Snapshot {
	if over, _ := s.chaser.Over(); !over && f.PointerMoved {
		s.pointer.apply(s.chaser.world, f.Pointer, f.PointerPressed, f.Now)
	}

	f.Controls = physics.Input{}
	snap := s.chaser.Tick(f)
	s.chaser.Outbound()
	snap.Role = protocol.RoleTarget
	return snap
}
