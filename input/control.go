package input

import "github.com/lixenwraith/chase/ability"

// Control is a logical input, independent of the physical key that produced it
type Control uint8

const (
	ControlNone Control = iota

	// Chaser movement
	ControlMoveLeft
	ControlMoveRight
	ControlMoveUp
	ControlMoveDown
	ControlJump

	// Ability slots 1..9
	ControlAbility1
	ControlAbility2
	ControlAbility3
	ControlAbility4
	ControlAbility5
	ControlAbility6
	ControlAbility7
	ControlAbility8
	ControlAbility9

	// Direct shortcuts
	ControlDash
	ControlTeleport
	ControlMagnet

	// Lobby
	ControlClaimChaser
	ControlClaimTarget

	ControlQuit

	controlCount
)

var controlNames = [controlCount]string{
	ControlNone:        "none",
	ControlMoveLeft:    "move-left",
	ControlMoveRight:   "move-right",
	ControlMoveUp:      "move-up",
	ControlMoveDown:    "move-down",
	ControlJump:        "jump",
	ControlAbility1:    "ability-1",
	ControlAbility2:    "ability-2",
	ControlAbility3:    "ability-3",
	ControlAbility4:    "ability-4",
	ControlAbility5:    "ability-5",
	ControlAbility6:    "ability-6",
	ControlAbility7:    "ability-7",
	ControlAbility8:    "ability-8",
	ControlAbility9:    "ability-9",
	ControlDash:        "dash",
	ControlTeleport:    "teleport",
	ControlMagnet:      "magnet",
	ControlClaimChaser: "claim-chaser",
	ControlClaimTarget: "claim-target",
	ControlQuit:        "quit",
}

func (c Control) String() string {
	if c < controlCount {
		return controlNames[c]
	}
	return "unknown"
}

// Ability returns the ability a control activates, None for non-ability controls
func (c Control) Ability() ability.Kind {
	switch {
	case c >= ControlAbility1 && c <= ControlAbility9:
		return ability.FromSlot(int(c-ControlAbility1) + 1)
	case c == ControlDash:
		return ability.Dash
	case c == ControlTeleport:
		return ability.Teleport
	case c == ControlMagnet:
		return ability.Magnet
	}
	return ability.None
}

// Held reports controls that stay active while the key repeats
func (c Control) Held() bool {
	return c >= ControlMoveLeft && c <= ControlJump
}
