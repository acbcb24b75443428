package network

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/lixenwraith/chase/event"
	"github.com/lixenwraith/chase/status"
)

func TestFrameRoundTrip(t *testing.T) {
	m := &Message{Type: 0x20, Flags: FlagNone, Seq: 7, Ack: 3, Payload: []byte("hello")}

	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if buf.Len() != HeaderSize+5 {
		t.Fatalf("Expected %d bytes, got %d", HeaderSize+5, buf.Len())
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got.Type != m.Type || got.Seq != 7 || got.Ack != 3 || string(got.Payload) != "hello" {
		t.Errorf("Expected %+v, got %+v", m, got)
	}
}

func TestFrameBinaryRoundTrip(t *testing.T) {
	m := NewMessage(0x10, []byte{1, 2, 3})
	data, err := m.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	got, err := UnmarshalFrame(data)
	if err != nil {
		t.Fatalf("UnmarshalFrame failed: %v", err)
	}
	if !bytes.Equal(got.Payload, m.Payload) {
		t.Errorf("Expected payload %v, got %v", m.Payload, got.Payload)
	}

	if _, err := UnmarshalFrame(data[:HeaderSize+1]); !errors.Is(err, ErrShortFrame) {
		t.Errorf("Expected ErrShortFrame, got %v", err)
	}
}

func TestFramePayloadTooLarge(t *testing.T) {
	m := NewMessage(0x10, make([]byte, MaxPayloadSize+1))
	if err := m.Encode(&bytes.Buffer{}); !errors.Is(err, ErrPayloadTooLarge) {
		t.Errorf("Expected ErrPayloadTooLarge, got %v", err)
	}
}

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.HeartbeatInterval = 0
	cfg.ReadTimeout = 0
	cfg.WriteTimeout = time.Second
	return cfg
}

func pipePeers(t *testing.T) (*Peer, *Peer) {
	t.Helper()
	cfg := testConfig()
	a, b := net.Pipe()
	return newPeer(1, newStreamConn(a, cfg), cfg), newPeer(2, newStreamConn(b, cfg), cfg)
}

func TestPeerDeliversInOrder(t *testing.T) {
	a, b := pipePeers(t)
	got := make(chan *Message, 16)
	a.Start(func(*Message) {})
	b.Start(func(m *Message) { got <- m })
	defer a.Close()
	defer b.Close()

	for i := 0; i < 5; i++ {
		if !a.Send(NewMessage(0x10, []byte{byte(i)})) {
			t.Fatalf("Send %d failed", i)
		}
	}

	for i := 0; i < 5; i++ {
		select {
		case m := <-got:
			if m.Payload[0] != byte(i) {
				t.Errorf("Expected payload %d, got %d", i, m.Payload[0])
			}
			if m.Seq != uint32(i+1) {
				t.Errorf("Expected seq %d, got %d", i+1, m.Seq)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("Timed out waiting for message %d", i)
		}
	}
}

func TestPeerRemoteCloseSignalsDone(t *testing.T) {
	a, b := pipePeers(t)
	a.Start(func(*Message) {})
	b.Start(func(*Message) {})

	a.Close()

	select {
	case <-b.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Expected remote close to end the link")
	}
	if b.Err() == nil {
		t.Error("Expected close reason")
	}
	if !errors.Is(a.Err(), ErrClosed) {
		t.Errorf("Expected ErrClosed locally, got %v", a.Err())
	}
	if a.Send(NewMessage(0x10, nil)) {
		t.Error("Expected send on closed link to fail")
	}
}

func TestPeerFullQueueFailsLink(t *testing.T) {
	cfg := testConfig()
	cfg.SendQueueSize = 4
	cfg.WriteTimeout = 0
	x, y := net.Pipe()
	defer y.Close()

	// Nobody reads y, so the writer blocks on the first frame
	a := newPeer(1, newStreamConn(x, cfg), cfg)
	a.Start(func(*Message) {})

	accepted := 0
	for i := 0; i < 20; i++ {
		if a.Send(NewMessage(0x10, []byte{byte(i)})) {
			accepted++
		}
	}
	if accepted > cfg.SendQueueSize+1 {
		t.Errorf("Expected at most %d accepted sends, got %d", cfg.SendQueueSize+1, accepted)
	}

	select {
	case <-a.Done():
	case <-time.After(time.Second):
		t.Fatal("Expected link to close after queue overflow")
	}
	if !errors.Is(a.Err(), ErrQueueFull) {
		t.Errorf("Expected ErrQueueFull, got %v", a.Err())
	}
	if a.Send(NewMessage(0x10, nil)) {
		t.Error("Expected send on failed link to be refused")
	}
}

func TestPeerHeartbeatNotDelivered(t *testing.T) {
	cfg := testConfig()
	cfg.HeartbeatInterval = 10 * time.Millisecond
	x, y := net.Pipe()
	a := newPeer(1, newStreamConn(x, cfg), cfg)
	b := newPeer(2, newStreamConn(y, testConfig()), testConfig())

	got := make(chan *Message, 16)
	a.Start(func(*Message) {})
	b.Start(func(m *Message) { got <- m })
	defer a.Close()
	defer b.Close()

	time.Sleep(50 * time.Millisecond)
	a.Send(NewMessage(0x21, []byte("x")))

	select {
	case m := <-got:
		if m.Type != 0x21 {
			t.Errorf("Expected application frame first, got type %#x", m.Type)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out")
	}
	if b.LastSeen.Load() == 0 {
		t.Error("Expected LastSeen updated")
	}
}

func waitEvent(t *testing.T, q *event.EventQueue, want event.EventType) event.GameEvent {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		for _, ev := range q.Consume() {
			if ev.Type == want {
				return ev
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Timed out waiting for %v", want)
	return event.GameEvent{}
}

func runServicePair(t *testing.T, kind TransportKind) {
	hostCfg := testConfig()
	hostCfg.Role = RoleHost
	hostCfg.Transport = kind
	hostCfg.Address = "127.0.0.1:0"

	hostQ := event.NewEventQueue()
	host := NewService(hostCfg, hostQ, status.NewRegistry())
	addr, err := host.Listen()
	if err != nil {
		t.Fatalf("Listen failed: %v", err)
	}

	peerCfg := testConfig()
	peerCfg.Role = RolePeer
	peerCfg.Transport = kind
	peerCfg.Address = addr

	peerQ := event.NewEventQueue()
	peer := NewService(peerCfg, peerQ, status.NewRegistry())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	host.Start(ctx)
	peer.Start(ctx)

	waitEvent(t, hostQ, event.EventChannelOpen)
	waitEvent(t, peerQ, event.EventChannelOpen)

	if !peer.Send(0x10, []byte("ping")) {
		t.Fatal("Send failed")
	}
	ev := waitEvent(t, hostQ, event.EventMessage)
	p := ev.Payload.(*event.MessagePayload)
	if p.Type != 0x10 || string(p.Data) != "ping" {
		t.Errorf("Unexpected message %+v", p)
	}

	peer.Stop()
	closed := waitEvent(t, hostQ, event.EventChannelClosed)
	if closed.Payload.(*event.ChannelClosedPayload).Reason == "" {
		t.Error("Expected close reason on the host side")
	}
	host.Stop()
}

func TestServiceTCP(t *testing.T) {
	runServicePair(t, TransportTCP)
}

func TestServiceWebSocket(t *testing.T) {
	runServicePair(t, TransportWebSocket)
}

func TestSendWithoutLinkDrops(t *testing.T) {
	reg := status.NewRegistry()
	s := NewService(testConfig(), event.NewEventQueue(), reg)
	if s.Send(0x10, nil) {
		t.Error("Expected send without link to fail")
	}
	if reg.Ints.Get(status.KeyMsgDropped).Load() != 1 {
		t.Error("Expected dropped counter incremented")
	}
	if s.Connected() {
		t.Error("Expected not connected")
	}
}

func TestParseTransport(t *testing.T) {
	if k, err := ParseTransport("ws"); err != nil || k != TransportWebSocket {
		t.Errorf("Expected ws, got %v %v", k, err)
	}
	if _, err := ParseTransport("udp"); err == nil {
		t.Error("Expected error for unknown transport")
	}
}
