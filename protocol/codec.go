package protocol

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	ErrUnknownType  = errors.New("protocol: unknown message type")
	ErrEmptyPayload = errors.New("protocol: empty payload")
)

// newPayload returns a fresh payload struct for t, nil for payload-less types
func newPayload(t MessageType) (any, error) {
	switch t {
	case MsgJoin, MsgWelcome:
		return &Hello{}, nil
	case MsgSelectRole:
		return &SelectRole{}, nil
	case MsgLeave:
		return nil, nil
	case MsgPointerMove:
		return &PointerMove{}, nil
	case MsgCursorLine:
		return &CursorLine{}, nil
	case MsgChaserMove:
		return &ChaserMove{}, nil
	case MsgAbility:
		return &AbilityStart{}, nil
	case MsgPullCursor:
		return &PullCursor{}, nil
	case MsgTimeScale:
		return &TimeScale{}, nil
	case MsgGameOver:
		return &GameOver{}, nil
	default:
		return nil, ErrUnknownType
	}
}

// Encode serializes the payload of msg
func Encode(msg Message) ([]byte, error) {
	if !msg.Type.Known() {
		return nil, ErrUnknownType
	}
	if msg.Payload == nil {
		return nil, nil
	}
	data, err := msgpack.Marshal(msg.Payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", msg.Type, err)
	}
	return data, nil
}

// Decode parses a payload of type t
func Decode(t MessageType, data []byte) (Message, error) {
	payload, err := newPayload(t)
	if err != nil {
		return Message{}, err
	}
	if payload == nil {
		return Message{Type: t}, nil
	}
	if len(data) == 0 {
		return Message{}, fmt.Errorf("decode %s: %w", t, ErrEmptyPayload)
	}
	if err := msgpack.Unmarshal(data, payload); err != nil {
		return Message{}, fmt.Errorf("decode %s: %w", t, err)
	}
	return Message{Type: t, Payload: payload}, nil
}
