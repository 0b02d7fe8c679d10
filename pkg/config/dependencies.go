package config

import (
	"context"
	"net"
)

// Dependencies contains injectable dependencies for testing and customization.
// All fields are optional and will use default implementations if nil.
type Dependencies struct {
	TCPDialer      TCPDialerFunc
	UnixDialer     UnixDialerFunc
	PacketListener PacketListenerFunc
}

// TCPDialerFunc is a function that dials a stream connection over the
// network. It returns a net.Conn to allow for mock implementations.
type TCPDialerFunc func(ctx context.Context, network, addr string) (net.Conn, error)

// UnixDialerFunc is a function that dials a local stream socket by
// filesystem path. It returns a net.Conn to allow for mock implementations.
type UnixDialerFunc func(ctx context.Context, path string) (net.Conn, error)

// PacketListenerFunc is a function that creates a packet listener, used by
// the KCP transport. It returns a net.PacketConn to allow for mock
// implementations.
type PacketListenerFunc func(network, address string) (net.PacketConn, error)

// GetTCPDialerFunc returns the TCP dialer function from dependencies, or a
// default implementation based on net.Dialer.
func GetTCPDialerFunc(deps *Dependencies) TCPDialerFunc {
	if deps != nil && deps.TCPDialer != nil {
		return deps.TCPDialer
	}
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		var d net.Dialer
		return d.DialContext(ctx, network, addr)
	}
}

// GetUnixDialerFunc returns the Unix socket dialer function from
// dependencies, or a default implementation based on net.Dialer.
func GetUnixDialerFunc(deps *Dependencies) UnixDialerFunc {
	if deps != nil && deps.UnixDialer != nil {
		return deps.UnixDialer
	}
	return func(ctx context.Context, path string) (net.Conn, error) {
		var d net.Dialer
		return d.DialContext(ctx, "unix", path)
	}
}

// GetPacketListenerFunc returns the packet listener function from
// dependencies, or a default implementation based on net.ListenPacket.
func GetPacketListenerFunc(deps *Dependencies) PacketListenerFunc {
	if deps != nil && deps.PacketListener != nil {
		return deps.PacketListener
	}
	return func(network, address string) (net.PacketConn, error) {
		return net.ListenPacket(network, address)
	}
}
