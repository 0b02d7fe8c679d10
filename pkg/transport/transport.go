// Package transport defines the dialer abstraction shared by all
// transport kinds (tcp, unix, kcp).
//
// Each transport implements the same small contract:
//
//   - Dial: establish one outbound connection
//   - Accept: a context for cancellation
//   - Return: net.Conn or error
//   - Single attempt, no retry; any internal setup failure closes the
//     partially-constructed connection before returning
//
// Deadlines are not enforced here. Callers that want a dial timeout wrap
// the context, e.g. with context.WithTimeout.
//
// Example usage:
//
//	d := tcp.NewDialer("example.test:80", false, nil)
//	conn, err := d.Dial(ctx)
package transport

import (
	"context"
	"net"
)

// Dialer opens a byte-stream connection to a preconfigured endpoint.
type Dialer interface {
	Dial(ctx context.Context) (net.Conn, error)
}
