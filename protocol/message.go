package protocol

// MessageType identifies a protocol message, carried in the frame header
type MessageType uint8

const (
	// Session control
	MsgJoin       MessageType = 0x01 // Dialing side announces itself
	MsgWelcome    MessageType = 0x02 // Hosting side answers join
	MsgSelectRole MessageType = 0x03 // Claimer's role, receiver takes the complement
	MsgLeave      MessageType = 0x04 // Orderly disconnect notice

	// Target to chaser
	MsgPointerMove MessageType = 0x10
	MsgCursorLine  MessageType = 0x11

	// Chaser to target
	MsgChaserMove MessageType = 0x20
	MsgAbility    MessageType = 0x21
	MsgPullCursor MessageType = 0x22
	MsgTimeScale  MessageType = 0x23
	MsgGameOver   MessageType = 0x24
)

var messageNames = map[MessageType]string{
	MsgJoin:        "join",
	MsgWelcome:     "welcome",
	MsgSelectRole:  "select-role",
	MsgLeave:       "leave",
	MsgPointerMove: "pointer-move",
	MsgCursorLine:  "cursor-line",
	MsgChaserMove:  "chaser-move",
	MsgAbility:     "ability",
	MsgPullCursor:  "pull-cursor",
	MsgTimeScale:   "time-scale",
	MsgGameOver:    "game-over",
}

func (t MessageType) String() string {
	if name, ok := messageNames[t]; ok {
		return name
	}
	return "unknown"
}

// Known reports whether t is part of the protocol
func (t MessageType) Known() bool {
	_, ok := messageNames[t]
	return ok
}

// Message is a decoded protocol message
// Payload holds a pointer to the type's payload struct, nil for Leave
type Message struct {
	Type    MessageType
	Payload any
}

// Hello is the join/welcome payload
type Hello struct {
	Name string `msgpack:"name"`
}

type SelectRole struct {
	Role string `msgpack:"role"`
}

type PointerMove struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
}

type CursorLine struct {
	X1 float64 `msgpack:"x1"`
	Y1 float64 `msgpack:"y1"`
	X2 float64 `msgpack:"x2"`
	Y2 float64 `msgpack:"y2"`
}

// ChaserMove is the chaser side's full authoritative frame
type ChaserMove struct {
	Chaser      ChaserState  `msgpack:"chaser"`
	Ability     string       `msgpack:"ability"`
	RemainingMs int64        `msgpack:"remaining_ms"`
	Clones      []CloneState `msgpack:"clones"`
	Waves       []WaveState  `msgpack:"waves"`
	Score       int          `msgpack:"score"`
}

type AbilityStart struct {
	Ability string `msgpack:"ability"`
}

// PullCursor is a displacement applied to the target's local position
type PullCursor struct {
	DX float64 `msgpack:"dx"`
	DY float64 `msgpack:"dy"`
}

type TimeScale struct {
	Scale float64 `msgpack:"scale"`
}

type GameOver struct {
	Score int `msgpack:"score"`
}
