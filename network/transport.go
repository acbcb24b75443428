package network

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
)

var ErrNotHost = errors.New("network: listen requires host role")

// Transport establishes the single link to the opponent
type Transport struct {
	config *Config
	nextID atomic.Uint32

	mu       sync.Mutex
	listener net.Listener
	server   *http.Server
	accepted chan frameConn
	claimed  atomic.Bool
}

func NewTransport(cfg *Config) *Transport {
	return &Transport{
		config:   cfg,
		accepted: make(chan frameConn, 1),
	}
}

// Connect listens and accepts (host) or dials (peer), blocking until the link is up or ctx ends
func (t *Transport) Connect(ctx context.Context) (*Peer, error) {
	switch t.config.Role {
	case RoleHost:
		if _, err := t.Listen(); err != nil {
			return nil, err
		}
		return t.Accept(ctx)
	case RolePeer:
		return t.Dial(ctx)
	default:
		return nil, fmt.Errorf("network: connect with role %s", t.config.Role)
	}
}

// Listen binds the host address and returns the bound address
func (t *Transport) Listen() (net.Addr, error) {
	if t.config.Role != RoleHost {
		return nil, ErrNotHost
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.listener != nil {
		return t.listener.Addr(), nil
	}

	var ln net.Listener
	var err error
	if t.config.TLS != nil {
		ln, err = tls.Listen("tcp", t.config.Address, t.config.TLS)
	} else {
		ln, err = net.Listen("tcp", t.config.Address)
	}
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", t.config.Address, err)
	}
	t.listener = ln

	switch t.config.Transport {
	case TransportWebSocket:
		mux := http.NewServeMux()
		mux.HandleFunc(t.config.Path, t.handleUpgrade)
		t.server = &http.Server{Handler: mux}
		go t.server.Serve(ln)
	default:
		go t.acceptLoop(ln)
	}
	return ln.Addr(), nil
}

// Accept waits for the first opponent, later arrivals are refused
func (t *Transport) Accept(ctx context.Context) (*Peer, error) {
	select {
	case <-ctx.Done():
		t.Close()
		return nil, ctx.Err()
	case fc := <-t.accepted:
		t.Close()
		return newPeer(PeerID(t.nextID.Add(1)), fc, t.config), nil
	}
}

func (t *Transport) acceptLoop(ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		if !t.claimed.CompareAndSwap(false, true) {
			conn.Close()
			continue
		}
		t.accepted <- newStreamConn(conn, t.config)
	}
}

func (t *Transport) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	if t.claimed.Load() {
		http.Error(w, "session full", http.StatusConflict)
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  t.config.ReadBufferSize,
		WriteBufferSize: t.config.WriteBufferSize,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if !t.claimed.CompareAndSwap(false, true) {
		conn.Close()
		return
	}
	t.accepted <- newWSConn(conn, t.config)
}

// Dial connects to the host
func (t *Transport) Dial(ctx context.Context) (*Peer, error) {
	if t.config.Role != RolePeer {
		return nil, fmt.Errorf("network: dial with role %s", t.config.Role)
	}

	var fc frameConn
	var err error
	switch t.config.Transport {
	case TransportWebSocket:
		fc, err = t.dialWS(ctx)
	default:
		fc, err = t.dialTCP(ctx)
	}
	if err != nil {
		return nil, err
	}
	return newPeer(PeerID(t.nextID.Add(1)), fc, t.config), nil
}

func (t *Transport) dialTCP(ctx context.Context) (frameConn, error) {
	dialer := &net.Dialer{Timeout: t.config.ConnectTimeout}

	var conn net.Conn
	var err error
	if t.config.TLS != nil {
		td := &tls.Dialer{NetDialer: dialer, Config: t.config.TLS}
		conn, err = td.DialContext(ctx, "tcp", t.config.Address)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", t.config.Address)
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", t.config.Address, err)
	}
	return newStreamConn(conn, t.config), nil
}

func (t *Transport) dialWS(ctx context.Context) (frameConn, error) {
	u := url.URL{Scheme: "ws", Host: t.config.Address, Path: t.config.Path}
	dialer := websocket.Dialer{
		HandshakeTimeout: t.config.ConnectTimeout,
		ReadBufferSize:   t.config.ReadBufferSize,
		WriteBufferSize:  t.config.WriteBufferSize,
	}
	if t.config.TLS != nil {
		u.Scheme = "wss"
		dialer.TLSClientConfig = t.config.TLS
	}

	conn, resp, err := dialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial %s: %s: %w", u.String(), resp.Status, err)
		}
		return nil, fmt.Errorf("dial %s: %w", u.String(), err)
	}
	return newWSConn(conn, t.config), nil
}

// Close stops listening, established links are unaffected
func (t *Transport) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.server != nil {
		t.server.Close()
		t.server = nil
		t.listener = nil
	}
	if t.listener != nil {
		t.listener.Close()
		t.listener = nil
	}
}
