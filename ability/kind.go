package ability

import (
	"time"

	"github.com/lixenwraith/chase/parameter"
)

// Kind enumerates chaser abilities
type Kind uint8

const (
	None Kind = iota
	SuperJump
	Dash
	Teleport
	Grow
	Clone
	Vortex
	Ghost
	Shockwave
	TimeSlow
	Magnet

	kindCount
)

var kindNames = [kindCount]string{
	None:      "",
	SuperJump: "SUPER_JUMP",
	Dash:      "DASH",
	Teleport:  "TELEPORT",
	Grow:      "GROW",
	Clone:     "CLONE",
	Vortex:    "VORTEX",
	Ghost:     "GHOST",
	Shockwave: "SHOCKWAVE",
	TimeSlow:  "TIME_SLOW",
	Magnet:    "MAGNET",
}

// String returns the wire name
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return ""
}

// ParseKind maps a wire name back to a Kind, unknown names report false
func ParseKind(name string) (Kind, bool) {
	if name == "" {
		return None, false
	}
	for k := SuperJump; k < kindCount; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return None, false
}

// Kinds returns every activatable kind in slot order
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := SuperJump; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// FromSlot maps activation slots 1..9 to kinds, Magnet has no slot and is reached by its own shortcut
func FromSlot(slot int) Kind {
	if slot < 1 || slot > 9 {
		return None
	}
	return Kind(slot)
}

// Effect classifies how a kind acts on the world
type Effect uint8

const (
	// EffectPassive only alters derived multipliers
	EffectPassive Effect = iota
	// EffectOneShot fires once on the first active tick
	EffectOneShot
	// EffectContinuous acts on every active tick
	EffectContinuous
)

// Spec is the static data of a kind
type Spec struct {
	Cooldown time.Duration
	Duration time.Duration
	Effect   Effect
	Pull     float64
}

// Spec returns the kind's static data, zero Spec for None
func (k Kind) Spec() Spec {
	switch k {
	case SuperJump:
		return Spec{Cooldown: parameter.SuperJumpCooldown, Duration: parameter.SuperJumpDuration, Effect: EffectOneShot}
	case Dash:
		return Spec{Cooldown: parameter.DashCooldown, Duration: parameter.DashDuration, Effect: EffectOneShot}
	case Teleport:
		return Spec{Cooldown: parameter.TeleportCooldown, Duration: parameter.TeleportDuration, Effect: EffectOneShot}
	case Grow:
		return Spec{Cooldown: parameter.GrowCooldown, Duration: parameter.GrowDuration, Effect: EffectPassive}
	case Clone:
		return Spec{Cooldown: parameter.CloneCooldown, Duration: parameter.CloneDuration, Effect: EffectOneShot}
	case Vortex:
		return Spec{Cooldown: parameter.VortexCooldown, Duration: parameter.VortexDuration, Effect: EffectContinuous, Pull: parameter.VortexPull}
	case Ghost:
		return Spec{Cooldown: parameter.GhostCooldown, Duration: parameter.GhostDuration, Effect: EffectPassive}
	case Shockwave:
		return Spec{Cooldown: parameter.ShockwaveCooldown, Duration: parameter.ShockwaveDuration, Effect: EffectOneShot}
	case TimeSlow:
		return Spec{Cooldown: parameter.TimeSlowCooldown, Duration: parameter.TimeSlowDuration, Effect: EffectOneShot}
	case Magnet:
		return Spec{Cooldown: parameter.MagnetCooldown, Duration: parameter.MagnetDuration, Effect: EffectContinuous, Pull: parameter.MagnetPull}
	default:
		return Spec{}
	}
}

// SizeMultiplier is a pure function of the active kind
func SizeMultiplier(k Kind) float64 {
	if k == Grow {
		return parameter.GrowMultiplier
	}
	return 1
}

// OpacityMultiplier is a pure function of the active kind
func OpacityMultiplier(k Kind) float64 {
	if k == Ghost {
		return parameter.GhostOpacity
	}
	return 1
}
