package network

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// PeerID identifies a link within the process
type PeerID uint32

var (
	// ErrClosed is reported by Err after a local Close
	ErrClosed = errors.New("network: link closed")

	// ErrQueueFull fails the link when the writer falls behind
	ErrQueueFull = errors.New("network: send queue full")
)

// Link is the one-way, fire-and-forget channel to the opponent
// Inbound frames are delivered to the handler given at start
type Link interface {
	Send(msg *Message) bool
	Close()
	Done() <-chan struct{}
	Err() error
	Remote() string
}

// Peer is the Link implementation shared by every transport
type Peer struct {
	ID       PeerID
	LastSeen atomic.Int64 // UnixNano

	// Sequence tracking
	OutSeq atomic.Uint32
	InSeq  atomic.Uint32

	conn frameConn
	cfg  *Config

	sendCh chan *Message

	closeCh   chan struct{}
	closeOnce sync.Once

	errMu sync.Mutex
	err   error
}

func newPeer(id PeerID, conn frameConn, cfg *Config) *Peer {
	p := &Peer{
		ID:      id,
		conn:    conn,
		cfg:     cfg,
		sendCh:  make(chan *Message, cfg.SendQueueSize),
		closeCh: make(chan struct{}),
	}
	p.LastSeen.Store(time.Now().UnixNano())
	return p
}

// Start launches the I/O loops, handler runs on the read goroutine
func (p *Peer) Start(handler func(*Message)) {
	go p.readLoop(handler)
	go p.writeLoop()
}

// Send queues a message, false if the link is closed
// A full queue fails the link with ErrQueueFull instead of dropping silently
func (p *Peer) Send(msg *Message) bool {
	select {
	case <-p.closeCh:
		return false
	default:
	}

	msg.Seq = p.OutSeq.Add(1)
	msg.Ack = p.InSeq.Load()

	select {
	case p.sendCh <- msg:
		return true
	default:
		p.fail(ErrQueueFull)
		return false
	}
}

// Close flushes queued messages and tears the link down
func (p *Peer) Close() {
	p.fail(ErrClosed)
}

func (p *Peer) Done() <-chan struct{} {
	return p.closeCh
}

// Err returns why the link closed, nil while open
func (p *Peer) Err() error {
	p.errMu.Lock()
	defer p.errMu.Unlock()
	return p.err
}

func (p *Peer) Remote() string {
	return p.conn.RemoteAddr()
}

// fail records the first close reason and signals both loops
func (p *Peer) fail(err error) {
	p.closeOnce.Do(func() {
		p.errMu.Lock()
		p.err = err
		p.errMu.Unlock()
		close(p.closeCh)
	})
}

func (p *Peer) readLoop(handler func(*Message)) {
	for {
		if p.cfg.ReadTimeout > 0 {
			_ = p.conn.SetReadDeadline(time.Now().Add(p.cfg.ReadTimeout))
		}

		msg, err := p.conn.ReadFrame()
		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				err = io.EOF
			}
			p.fail(err)
			return
		}

		p.LastSeen.Store(time.Now().UnixNano())
		if msg.Seq > p.InSeq.Load() {
			p.InSeq.Store(msg.Seq)
		}

		if msg.Type == MsgHeartbeat {
			continue
		}
		handler(msg)
	}
}

func (p *Peer) writeLoop() {
	defer p.conn.Close()

	var heartbeat <-chan time.Time
	if p.cfg.HeartbeatInterval > 0 {
		ticker := time.NewTicker(p.cfg.HeartbeatInterval)
		defer ticker.Stop()
		heartbeat = ticker.C
	}

	for {
		select {
		case <-p.closeCh:
			if errors.Is(p.Err(), ErrClosed) {
				p.drain()
			}
			return
		case msg := <-p.sendCh:
			if err := p.conn.WriteFrame(msg); err != nil {
				p.fail(err)
				return
			}
		case <-heartbeat:
			hb := &Message{Type: MsgHeartbeat, Ack: p.InSeq.Load()}
			if err := p.conn.WriteFrame(hb); err != nil {
				p.fail(err)
				return
			}
		}
	}
}

// drain writes whatever was queued before close, best effort
func (p *Peer) drain() {
	for {
		select {
		case msg := <-p.sendCh:
			if err := p.conn.WriteFrame(msg); err != nil {
				return
			}
		default:
			return
		}
	}
}
