package network

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// MessageType identifies the payload kind carried by a frame
// Values below 0xF0 belong to the application protocol
type MessageType uint8

// Link control frames, never delivered to the application
const (
	MsgHeartbeat MessageType = 0xF0
)

// Frame header precedes every message on the wire
// Fixed 12 bytes: [Type:1][Flags:1][Seq:4][Ack:4][Len:2]
const HeaderSize = 12

// MaxPayloadSize is bounded by the 16 bit length field
const MaxPayloadSize = 0xFFFF

const (
	FlagNone uint8 = 0x00
)

var (
	ErrPayloadTooLarge = errors.New("network: payload exceeds maximum size")
	ErrShortFrame      = errors.New("network: frame shorter than declared")
)

// Message is one framed unit on the link
type Message struct {
	Type    MessageType
	Flags   uint8
	Seq     uint32 // Sender's sequence number
	Ack     uint32 // Last sequence received from the opponent
	Payload []byte
}

func NewMessage(t MessageType, payload []byte) *Message {
	return &Message{Type: t, Payload: payload}
}

func (m *Message) header() ([HeaderSize]byte, error) {
	var h [HeaderSize]byte
	if len(m.Payload) > MaxPayloadSize {
		return h, ErrPayloadTooLarge
	}
	h[0] = byte(m.Type)
	h[1] = m.Flags
	binary.BigEndian.PutUint32(h[2:6], m.Seq)
	binary.BigEndian.PutUint32(h[6:10], m.Ack)
	binary.BigEndian.PutUint16(h[10:12], uint16(len(m.Payload)))
	return h, nil
}

// Encode writes header and payload to w
func (m *Message) Encode(w io.Writer) error {
	h, err := m.header()
	if err != nil {
		return err
	}
	if _, err := w.Write(h[:]); err != nil {
		return err
	}
	if len(m.Payload) > 0 {
		if _, err := w.Write(m.Payload); err != nil {
			return err
		}
	}
	return nil
}

// MarshalBinary returns the frame as one buffer, used by message oriented transports
func (m *Message) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(HeaderSize + len(m.Payload))
	if err := m.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads one frame from a stream
func Decode(r io.Reader) (*Message, error) {
	var h [HeaderSize]byte
	if _, err := io.ReadFull(r, h[:]); err != nil {
		return nil, err
	}
	m := parseHeader(h[:])

	n := binary.BigEndian.Uint16(h[10:12])
	if n > 0 {
		m.Payload = make([]byte, n)
		if _, err := io.ReadFull(r, m.Payload); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// UnmarshalFrame parses a frame held in a single buffer
func UnmarshalFrame(data []byte) (*Message, error) {
	if len(data) < HeaderSize {
		return nil, ErrShortFrame
	}
	m := parseHeader(data[:HeaderSize])
	n := int(binary.BigEndian.Uint16(data[10:12]))
	if len(data)-HeaderSize < n {
		return nil, ErrShortFrame
	}
	if n > 0 {
		m.Payload = append([]byte(nil), data[HeaderSize:HeaderSize+n]...)
	}
	return m, nil
}

func parseHeader(h []byte) *Message {
	return &Message{
		Type:  MessageType(h[0]),
		Flags: h[1],
		Seq:   binary.BigEndian.Uint32(h[2:6]),
		Ack:   binary.BigEndian.Uint32(h[6:10]),
	}
}
