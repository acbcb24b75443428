package network

import (
	"crypto/tls"
	"fmt"
	"time"
)

// Role defines which side establishes the link
type Role uint8

const (
	RoleNone Role = iota // Network disabled, solo play
	RoleHost             // Listens and accepts exactly one opponent
	RolePeer             // Dials the host
)

func (r Role) String() string {
	switch r {
	case RoleHost:
		return "host"
	case RolePeer:
		return "peer"
	default:
		return "none"
	}
}

// TransportKind selects the wire carrying frames
type TransportKind uint8

const (
	TransportTCP TransportKind = iota
	TransportWebSocket
)

func (k TransportKind) String() string {
	if k == TransportWebSocket {
		return "ws"
	}
	return "tcp"
}

// ParseTransport accepts "tcp" and "ws"
func ParseTransport(s string) (TransportKind, error) {
	switch s {
	case "tcp", "":
		return TransportTCP, nil
	case "ws", "websocket":
		return TransportWebSocket, nil
	default:
		return TransportTCP, fmt.Errorf("unknown transport %q", s)
	}
}

// Config holds network configuration
type Config struct {
	Role      Role
	Transport TransportKind

	// Address to bind (host) or connect to (peer)
	Address string

	// Path of the websocket endpoint
	Path string

	// TLS configuration (nil = plaintext)
	TLS *tls.Config

	// Timing
	ConnectTimeout    time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	HeartbeatInterval time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int
}

// DefaultConfig returns defaults for a two player session on a LAN
func DefaultConfig() *Config {
	return &Config{
		Role:              RoleNone,
		Transport:         TransportTCP,
		Address:           ":7777",
		Path:              "/chase",
		ConnectTimeout:    5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      5 * time.Second,
		HeartbeatInterval: 2 * time.Second,
		ReadBufferSize:    16 * 1024,
		WriteBufferSize:   16 * 1024,
		SendQueueSize:     256,
	}
}
