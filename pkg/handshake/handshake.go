// Package handshake performs the WebSocket opening handshake over an
// already-dialed transport channel, including the TLS upgrade when the
// request uses the secure scheme. Upgrade and handshake are one atomic
// operation: the connection core never interleaves its own logic between
// them.
package handshake

import (
	"context"
	"net"
	"net/http"

	"wsdial/pkg/request"
)

// Handshaker upgrades a raw transport channel into a WebSocket stream.
// Implementations take ownership of conn; on error the caller still closes
// the channel, and implementations must not keep using it afterwards.
type Handshaker interface {
	Handshake(ctx context.Context, conn net.Conn, req *request.Request) (net.Conn, *Response, error)
}

// Response carries the handshake response metadata for caller inspection.
type Response struct {
	Status int
	Header http.Header
}
