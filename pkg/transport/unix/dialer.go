// Package unix provides the local transport.
// It implements the transport.Dialer interface for Unix domain stream
// sockets addressed by filesystem path.
package unix

import (
	"context"
	"fmt"
	"net"

	"wsdial/pkg/config"
)

// Dialer implements the transport.Dialer interface for Unix domain sockets.
type Dialer struct {
	path   string
	dialFn config.UnixDialerFunc
}

// NewDialer creates a new Unix socket dialer for the specified path.
// The deps parameter is optional and can be nil to use default
// implementations. There is no send-coalescing tunable on local sockets,
// so no channel tuning applies here.
func NewDialer(path string, deps *config.Dependencies) *Dialer {
	return &Dialer{
		path:   path,
		dialFn: config.GetUnixDialerFunc(deps),
	}
}

// Dial establishes a connection to the configured socket path.
func (d *Dialer) Dial(ctx context.Context) (net.Conn, error) {
	conn, err := d.dialFn(ctx, d.path)
	if err != nil {
		return nil, fmt.Errorf("dial unix %s: %w", d.path, err)
	}
	return conn, nil
}
