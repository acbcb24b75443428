package input

import (
	"time"

	"github.com/lixenwraith/chase/ability"
	"github.com/lixenwraith/chase/engine"
	"github.com/lixenwraith/chase/physics"
	"github.com/lixenwraith/chase/vmath"
)

// Tracker folds discrete control presses and pointer samples into per-tick frames
// Held controls stay active for the hold window after their last press, key repeat keeps them alive
type Tracker struct {
	hold      time.Duration
	heldUntil [controlCount]time.Time

	ability ability.Kind

	pointer vmath.Vec2
	pressed bool
	moved   bool
}

func NewTracker(hold time.Duration) *Tracker {
	return &Tracker{hold: hold}
}

// Press records a control at wall time at
func (t *Tracker) Press(c Control, at time.Time) {
	if c >= controlCount {
		return
	}
	if c.Held() {
		t.heldUntil[c] = at.Add(t.hold)
		// Opposite directions cancel, the last one pressed wins
		switch c {
		case ControlMoveLeft:
			t.heldUntil[ControlMoveRight] = time.Time{}
		case ControlMoveRight:
			t.heldUntil[ControlMoveLeft] = time.Time{}
		}
	}
	if k := c.Ability(); k != ability.None {
		t.ability = k
	}
}

// Pointer records the latest pointer sample in viewport pixels
func (t *Tracker) Pointer(p vmath.Vec2, pressed bool) {
	t.pointer = p
	t.pressed = pressed
	t.moved = true
}

func (t *Tracker) held(c Control, now time.Time) bool {
	return now.Before(t.heldUntil[c])
}

// Frame drains edge state into a frame, Now and Dt are left to the caller
func (t *Tracker) Frame(now time.Time) engine.Frame {
	f := engine.Frame{
		Controls: physics.Input{
			Left:  t.held(ControlMoveLeft, now),
			Right: t.held(ControlMoveRight, now),
			Down:  t.held(ControlMoveDown, now),
			Jump:  t.held(ControlJump, now) || t.held(ControlMoveUp, now),
		},
		Activate:       t.ability,
		Pointer:        t.pointer,
		PointerPressed: t.pressed,
		PointerMoved:   t.moved,
	}
	t.ability = ability.None
	t.moved = false
	return f
}

// Reset drops held controls and pending requests, the pointer position is kept
func (t *Tracker) Reset() {
	t.heldUntil = [controlCount]time.Time{}
	t.ability = ability.None
	t.moved = false
}
