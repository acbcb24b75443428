package event

// EventType represents the type of game event
type EventType int

const (
	// EventTick is the zero value and never pushed
	EventTick EventType = iota

	// === Transport Event ===

	// EventChannelOpen signals the link to the opponent is established
	// Trigger: network.Service after accept/dial | Payload: *ChannelOpenPayload
	EventChannelOpen

	// EventChannelClosed signals the link is gone, terminal for the session
	// Trigger: network.Service when a link read/write loop exits | Payload: *ChannelClosedPayload
	EventChannelClosed

	// EventMessage carries one framed inbound message
	// Trigger: network.Service read loop | Payload: *MessagePayload
	EventMessage

	// === Local Input Event ===

	// EventControl signals a logical control press
	// Trigger: input.Poller | Payload: input.Control
	EventControl

	// EventPointer signals an absolute pointer position in viewport pixels
	// Trigger: input.Poller | Payload: *PointerPayload
	EventPointer

	// EventResize signals the terminal size changed
	// Trigger: input.Poller | Payload: *ResizePayload
	EventResize

	// EventQuit requests local shutdown
	// Trigger: input.Poller on quit key, signal handler | Payload: nil
	EventQuit
)

var typeNames = map[EventType]string{
	EventTick:          "Tick",
	EventChannelOpen:   "EventChannelOpen",
	EventChannelClosed: "EventChannelClosed",
	EventMessage:       "EventMessage",
	EventControl:       "EventControl",
	EventPointer:       "EventPointer",
	EventResize:        "EventResize",
	EventQuit:          "EventQuit",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "EventUnknown"
}

// GameEvent represents a single event pushed to the queue
type GameEvent struct {
	Type    EventType
	Payload any
}
