package session

// Phase is the session lifecycle state
type Phase uint8

const (
	// PhaseConnecting waits for the channel to open
	PhaseConnecting Phase = iota
	// PhaseLobby has a channel but no roles yet
	PhaseLobby
	// PhasePlaying runs the role's simulator
	PhasePlaying
	// PhaseOver is terminal, inbound messages are ignored
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseConnecting:
		return "connecting"
	case PhaseLobby:
		return "lobby"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}
