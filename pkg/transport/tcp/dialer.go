// Package tcp provides the networked transport.
// It implements the transport.Dialer interface for TCP connections.
package tcp

import (
	"context"
	"fmt"
	"net"

	"wsdial/pkg/config"
)

// Dialer implements the transport.Dialer interface for TCP connections.
type Dialer struct {
	addr    string
	noDelay bool
	dialFn  config.TCPDialerFunc
}

// NewDialer creates a new TCP dialer for the specified address. If noDelay
// is set, send coalescing (Nagle's algorithm) is disabled on the connection
// right after a successful connect. The deps parameter is optional and can
// be nil to use default implementations.
func NewDialer(addr string, noDelay bool, deps *config.Dependencies) *Dialer {
	return &Dialer{
		addr:    addr,
		noDelay: noDelay,
		dialFn:  config.GetTCPDialerFunc(deps),
	}
}

// Dial establishes a TCP connection to the configured address. A failure to
// apply the no-delay tuning closes the connection and fails the dial:
// callers that requested it rely on the latency characteristic.
func (d *Dialer) Dial(ctx context.Context) (net.Conn, error) {
	conn, err := d.dialFn(ctx, "tcp", d.addr)
	if err != nil {
		return nil, fmt.Errorf("dial tcp %s: %w", d.addr, err)
	}

	if d.noDelay {
		if err := disableCoalescing(conn); err != nil {
			conn.Close()
			return nil, fmt.Errorf("set TCP_NODELAY on %s: %w", d.addr, err)
		}
	}

	return conn, nil
}

// disableCoalescing turns off Nagle's algorithm. The tuning is reached
// through an interface so injected test connections can participate.
func disableCoalescing(conn net.Conn) error {
	nd, ok := conn.(interface{ SetNoDelay(bool) error })
	if !ok {
		return fmt.Errorf("connection of type %T does not support TCP_NODELAY", conn)
	}
	return nd.SetNoDelay(true)
}
