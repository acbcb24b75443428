package network

import (
	"context"
	"errors"
	"io"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/chase/event"
	"github.com/lixenwraith/chase/status"
)

// Service owns the opponent link and bridges it to the event queue
// Transport goroutines only push events, they never touch session state
type Service struct {
	config    *Config
	transport *Transport
	queue     *event.EventQueue

	peer atomic.Pointer[Peer]

	sent     *atomic.Int64
	received *atomic.Int64
	dropped  *atomic.Int64
}

func NewService(cfg *Config, queue *event.EventQueue, reg *status.Registry) *Service {
	return &Service{
		config:    cfg,
		transport: NewTransport(cfg),
		queue:     queue,
		sent:      reg.Ints.Get(status.KeyMsgSent),
		received:  reg.Ints.Get(status.KeyMsgReceived),
		dropped:   reg.Ints.Get(status.KeyMsgDropped),
	}
}

// Start establishes the link in the background
// The outcome arrives as EventChannelOpen or EventChannelClosed
func (s *Service) Start(ctx context.Context) {
	go func() {
		p, err := s.transport.Connect(ctx)
		if err != nil {
			log.Printf("net: connect failed: %v", err)
			s.pushClosed(0, err)
			return
		}
		s.Attach(p)
	}()
}

// Listen binds early so the caller can report the address before Start
func (s *Service) Listen() (string, error) {
	addr, err := s.transport.Listen()
	if err != nil {
		return "", err
	}
	return addr.String(), nil
}

// Attach adopts an established link and starts its loops
func (s *Service) Attach(p *Peer) {
	s.peer.Store(p)
	log.Printf("net: link %d open to %s", p.ID, p.Remote())

	s.queue.Push(event.GameEvent{
		Type:    event.EventChannelOpen,
		Payload: &event.ChannelOpenPayload{PeerID: uint32(p.ID), Remote: p.Remote()},
	})

	p.Start(func(msg *Message) { s.onMessage(p.ID, msg) })

	go func() {
		<-p.Done()
		err := p.Err()
		log.Printf("net: link %d closed: %v", p.ID, err)
		s.pushClosed(p.ID, err)
	}()
}

func (s *Service) onMessage(id PeerID, msg *Message) {
	s.received.Add(1)
	s.queue.Push(event.GameEvent{
		Type: event.EventMessage,
		Payload: &event.MessagePayload{
			PeerID: uint32(id),
			Type:   uint8(msg.Type),
			Seq:    msg.Seq,
			Data:   msg.Payload,
		},
	})
}

func (s *Service) pushClosed(id PeerID, err error) {
	reason := ""
	if err != nil && !errors.Is(err, ErrClosed) && !errors.Is(err, io.EOF) {
		reason = err.Error()
	} else if errors.Is(err, io.EOF) {
		reason = "remote closed"
	}
	s.queue.Push(event.GameEvent{
		Type:    event.EventChannelClosed,
		Payload: &event.ChannelClosedPayload{PeerID: uint32(id), Reason: reason},
	})
}

// Send queues an application message, false when no link is up or the queue is full
func (s *Service) Send(msgType uint8, payload []byte) bool {
	p := s.peer.Load()
	if p == nil {
		s.dropped.Add(1)
		return false
	}
	if !p.Send(NewMessage(MessageType(msgType), payload)) {
		s.dropped.Add(1)
		return false
	}
	s.sent.Add(1)
	return true
}

// Connected reports whether a link is up
func (s *Service) Connected() bool {
	p := s.peer.Load()
	if p == nil {
		return false
	}
	select {
	case <-p.Done():
		return false
	default:
		return true
	}
}

// Stop closes the link after flushing queued messages and stops listening
func (s *Service) Stop() {
	s.transport.Close()
	if p := s.peer.Load(); p != nil {
		p.Close()
	}
}
