// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"wsdial/pkg/handshake"
	"wsdial/pkg/request"
)

// Conn is an in-memory net.Conn that records close and tuning calls.
// Reads block until data is written via Feed or the conn is closed.
type Conn struct {
	// NoDelayErr, when set, is returned from SetNoDelay.
	NoDelayErr error

	mu         sync.Mutex
	buf        []byte
	dataCh     chan struct{}
	closed     bool
	closeCount int
	noDelay    bool
}

// NewConn creates a new mock connection.
func NewConn() *Conn {
	return &Conn{
		dataCh: make(chan struct{}, 1),
	}
}

// Feed makes data available to subsequent Read calls. Feeding a closed
// connection is a no-op.
func (c *Conn) Feed(p []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.buf = append(c.buf, p...)

	select {
	case c.dataCh <- struct{}{}:
	default:
	}
}

func (c *Conn) Read(p []byte) (int, error) {
	for {
		c.mu.Lock()
		if len(c.buf) > 0 {
			n := copy(p, c.buf)
			c.buf = c.buf[n:]
			c.mu.Unlock()
			return n, nil
		}
		if c.closed {
			c.mu.Unlock()
			return 0, net.ErrClosed
		}
		c.mu.Unlock()

		<-c.dataCh
	}
}

func (c *Conn) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0, net.ErrClosed
	}
	return len(p), nil
}

// Close marks the connection closed. Every call is counted so tests can
// assert that a connection was released exactly once.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closeCount++
	if !c.closed {
		c.closed = true
		close(c.dataCh)
	}
	return nil
}

// CloseCount returns how often Close was called.
func (c *Conn) CloseCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closeCount
}

// SetNoDelay records the tuning call, failing with NoDelayErr if set.
func (c *Conn) SetNoDelay(v bool) error {
	if c.NoDelayErr != nil {
		return c.NoDelayErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.noDelay = v
	return nil
}

// NoDelaySet reports whether the no-delay tuning was applied.
func (c *Conn) NoDelaySet() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.noDelay
}

func (c *Conn) LocalAddr() net.Addr {
	return &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 12345}
}

func (c *Conn) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 54321}
}

func (c *Conn) SetDeadline(t time.Time) error      { return nil }
func (c *Conn) SetReadDeadline(t time.Time) error  { return nil }
func (c *Conn) SetWriteDeadline(t time.Time) error { return nil }

// Dialer is a transport.Dialer fake that records calls.
type Dialer struct {
	// Conn is returned from Dial when Err is nil.
	Conn net.Conn
	// Err, when set, fails the dial.
	Err error

	mu    sync.Mutex
	calls int
}

func (d *Dialer) Dial(ctx context.Context) (net.Conn, error) {
	d.mu.Lock()
	d.calls++
	d.mu.Unlock()

	if d.Err != nil {
		return nil, d.Err
	}
	if d.Conn == nil {
		return nil, errors.New("mock dialer has no conn configured")
	}
	return d.Conn, nil
}

// DialCount returns how often Dial was called.
func (d *Dialer) DialCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}

// Handshaker is a handshake.Handshaker fake that records calls.
type Handshaker struct {
	// Stream is returned as the resulting stream when Err is nil.
	// When nil, the conn passed to Handshake is returned unchanged.
	Stream net.Conn
	// Response is the handshake response to return. When nil, a
	// switching-protocols response is fabricated.
	Response *handshake.Response
	// Err, when set, fails the handshake.
	Err error

	mu    sync.Mutex
	calls int
	conns []net.Conn
	reqs  []*request.Request
}

func (h *Handshaker) Handshake(ctx context.Context, conn net.Conn, req *request.Request) (net.Conn, *handshake.Response, error) {
	h.mu.Lock()
	h.calls++
	h.conns = append(h.conns, conn)
	h.reqs = append(h.reqs, req)
	h.mu.Unlock()

	if h.Err != nil {
		return nil, nil, h.Err
	}

	stream := h.Stream
	if stream == nil {
		stream = conn
	}
	resp := h.Response
	if resp == nil {
		resp = &handshake.Response{Status: http.StatusSwitchingProtocols, Header: make(http.Header)}
	}
	return stream, resp, nil
}

// HandshakeCount returns how often Handshake was called.
func (h *Handshaker) HandshakeCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls
}

// LastConn returns the channel passed to the most recent Handshake call.
func (h *Handshaker) LastConn() net.Conn {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.conns) == 0 {
		return nil
	}
	return h.conns[len(h.conns)-1]
}

// LastRequest returns the request passed to the most recent Handshake call.
func (h *Handshaker) LastRequest() *request.Request {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.reqs) == 0 {
		return nil
	}
	return h.reqs[len(h.reqs)-1]
}
