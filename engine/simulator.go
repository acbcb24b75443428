package engine

import (
	"time"

	"github.com/lixenwraith/chase/ability"
	"github.com/lixenwraith/chase/physics"
	"github.com/lixenwraith/chase/protocol"
	"github.com/lixenwraith/chase/vmath"
)

// Frame is the local input for one tick
type Frame struct {
	// Now is round time, Dt the bounded frame scale before time dilation
	Now time.Duration
	Dt  float64

	// Chaser controls
	Controls physics.Input
	Activate ability.Kind

	// Pointer in viewport pixels, PointerMoved is false when no sample arrived this tick
	Pointer        vmath.Vec2
	PointerPressed bool
	PointerMoved   bool
}

// Simulator is one side's view of a round, selected once at role assignment
type Simulator interface {
	Role() protocol.Role

	// Tick advances local authority and returns the frame to present
	Tick(f Frame) Snapshot

	// Apply folds an inbound message into local state, ignored once the round is over
	Apply(msg protocol.Message, now time.Duration)

	// Outbound drains messages produced since the last call
	Outbound() []protocol.Message

	// Over reports whether the round ended and with which final score
	Over() (bool, int)
}

// outbox collects outbound messages between drains
type outbox struct {
	msgs []protocol.Message
}

func (o *outbox) push(t protocol.MessageType, payload any) {
	o.msgs = append(o.msgs, protocol.Message{Type: t, Payload: payload})
}

func (o *outbox) Outbound() []protocol.Message {
	out := o.msgs
	o.msgs = nil
	return out
}
