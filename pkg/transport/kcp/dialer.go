// Package kcp provides a reliable-UDP transport variant.
// It implements the transport.Dialer interface using the KCP protocol for
// reliable, stream-oriented delivery over UDP, for endpoints where TCP is
// unavailable or deliberately avoided.
package kcp

import (
	"context"
	"fmt"
	"net"

	kcp "github.com/xtaci/kcp-go/v5"

	"wsdial/pkg/config"
)

// Dialer implements the transport.Dialer interface for KCP sessions.
type Dialer struct {
	remoteAddr   *net.UDPAddr
	packetConnFn config.PacketListenerFunc
}

// NewDialer creates a new KCP dialer for the specified address.
// The deps parameter is optional and can be nil to use default
// implementations.
func NewDialer(addr string, deps *config.Dependencies) (*Dialer, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("net.ResolveUDPAddr(udp, %s): %w", addr, err)
	}

	return &Dialer{
		remoteAddr:   udpAddr,
		packetConnFn: config.GetPacketListenerFunc(deps),
	}, nil
}

// Dial establishes a KCP session over UDP to the configured address.
// KCP runs in low-latency stream mode, so the no-delay channel tuning used
// on TCP has no separate meaning here.
func (d *Dialer) Dial(ctx context.Context) (net.Conn, error) {
	// ":0" lets the OS choose an ephemeral local port.
	conn, err := d.packetConnFn("udp", ":0")
	if err != nil {
		return nil, fmt.Errorf("net.ListenPacket(udp, :0): %w", err)
	}

	kcpConn, err := kcp.NewConn(d.remoteAddr.String(), nil, 0, 0, conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("kcp.NewConn(%s): %w", d.remoteAddr.String(), err)
	}

	// SetNoDelay(nodelay, interval, resend, nc): fast mode with congestion
	// control disabled, matching the interactive-latency use case.
	kcpConn.SetNoDelay(1, 10, 2, 1)
	kcpConn.SetStreamMode(true)
	kcpConn.SetWindowSize(1024, 1024)

	return kcpConn, nil
}
