// File: internal/realtime/conn.go
package realtime

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	sendBuffer = 128
)

var ErrConnClosed = errors.New("connection closed")

// Conn is one live push channel. The registry and dispatcher only see
// this interface, so tests can drive them with fake connections.
type Conn interface {
	// ID uniquely identifies the connection for registry bookkeeping.
	ID() string
	// Send enqueues one self-contained payload for delivery.
	Send(payload []byte) error
	// Ready reports whether the connection can still accept sends.
	Ready() bool
}

// WSConn wraps a websocket and coordinates outbound writes via a
// buffered channel so Send is safe from any goroutine. Reads are owned
// by the HTTP handler; WSConn only writes.
type WSConn struct {
	id string

	ws    *websocket.Conn
	send  chan []byte
	once  sync.Once
	close chan struct{}
}

// NewWSConn constructs a WSConn around an upgraded socket.
func NewWSConn(ws *websocket.Conn) *WSConn {
	return &WSConn{
		id:    uuid.NewString(),
		ws:    ws,
		send:  make(chan []byte, sendBuffer),
		close: make(chan struct{}),
	}
}

func (c *WSConn) ID() string { return c.id }

// Start launches the write loop. It must be called exactly once per connection.
func (c *WSConn) Start() {
	go c.writeLoop()
}

// Ready reports whether Close has been called.
func (c *WSConn) Ready() bool {
	select {
	case <-c.close:
		return false
	default:
		return true
	}
}

// Send enqueues payload for delivery. If the client is slow and the
// buffer is full, the connection is closed to keep backpressure bounded.
func (c *WSConn) Send(payload []byte) error {
	select {
	case <-c.close:
		return ErrConnClosed
	case c.send <- payload:
		return nil
	default:
		c.Close(websocket.CloseGoingAway, "send buffer full")
		return errors.New("connection buffer exceeded")
	}
}

// Close terminates the connection and stops the write loop. Safe to
// call more than once.
func (c *WSConn) Close(code int, reason string) {
	c.once.Do(func() {
		close(c.close)
		_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
		_ = c.ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), time.Now().Add(writeWait))
		_ = c.ws.Close()
	})
}

func (c *WSConn) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.close:
			return
		case msg := <-c.send:
			if err := c.writeMessage(msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.writePing(); err != nil {
				return
			}
		}
	}
}

func (c *WSConn) writeMessage(payload []byte) error {
	if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.ws.WriteMessage(websocket.TextMessage, payload)
}

func (c *WSConn) writePing() error {
	if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.ws.WriteMessage(websocket.PingMessage, nil)
}
