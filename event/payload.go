package event

// ChannelOpenPayload identifies the newly connected opponent link
type ChannelOpenPayload struct {
	PeerID uint32
	Remote string
}

// ChannelClosedPayload carries the close reason, empty on orderly shutdown
type ChannelClosedPayload struct {
	PeerID uint32
	Reason string
}

// MessagePayload is a raw framed message; decoding is left to the session layer
type MessagePayload struct {
	PeerID uint32
	Type   uint8
	Seq    uint32
	Data   []byte
}

// PointerPayload is an absolute pointer position in viewport pixels
type PointerPayload struct {
	X, Y    float64
	Pressed bool // Primary button held
}

// ResizePayload carries terminal dimensions in cells
type ResizePayload struct {
	Cols, Rows int
}
