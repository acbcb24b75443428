package network

import (
	"bufio"
	"net"
	"time"

	"github.com/gorilla/websocket"
)

// frameConn moves whole frames over a concrete transport
// ReadFrame is called from one goroutine and WriteFrame from another
type frameConn interface {
	ReadFrame() (*Message, error)
	WriteFrame(m *Message) error
	SetReadDeadline(t time.Time) error
	RemoteAddr() string
	Close() error
}

// streamConn frames messages over a byte stream (TCP, TLS, net.Pipe)
type streamConn struct {
	conn         net.Conn
	reader       *bufio.Reader
	writer       *bufio.Writer
	writeTimeout time.Duration
}

func newStreamConn(conn net.Conn, cfg *Config) *streamConn {
	return &streamConn{
		conn:         conn,
		reader:       bufio.NewReaderSize(conn, cfg.ReadBufferSize),
		writer:       bufio.NewWriterSize(conn, cfg.WriteBufferSize),
		writeTimeout: cfg.WriteTimeout,
	}
}

func (c *streamConn) ReadFrame() (*Message, error) {
	return Decode(c.reader)
}

func (c *streamConn) WriteFrame(m *Message) error {
	if c.writeTimeout > 0 {
		if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
			return err
		}
	}
	if err := m.Encode(c.writer); err != nil {
		return err
	}
	return c.writer.Flush()
}

func (c *streamConn) SetReadDeadline(t time.Time) error {
	return c.conn.SetReadDeadline(t)
}

func (c *streamConn) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

func (c *streamConn) Close() error {
	return c.conn.Close()
}

// wsConn carries one frame per binary websocket message
type wsConn struct {
	conn         *websocket.Conn
	writeTimeout time.Duration
}

func newWSConn(conn *websocket.Conn, cfg *Config) *wsConn {
	conn.SetReadLimit(HeaderSize + MaxPayloadSize)
	return &wsConn{conn: conn, writeTimeout: cfg.WriteTimeout}
}

func (c *wsConn) ReadFrame() (*Message, error) {
	for {
		mt, data, err := c.conn.ReadMessage()
		if err != nil {
			return nil, err
		}
		if mt != websocket.BinaryMessage {
			continue
		}
		return UnmarshalFrame(data)
	}
}

func (c *wsConn) WriteFrame(m *Message) error {
	data, err := m.MarshalBinary()
	if err != nil {
		return err
	}
	if c.writeTimeout > 0 {
		_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}
	return c.conn.WriteMessage(websocket.BinaryMessage, data)
}

func (c *wsConn) SetReadDeadline(t time.Time) error {
	return c.conn.SetReadDeadline(t)
}

func (c *wsConn) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}
