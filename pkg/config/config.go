// Package config holds the options for a connection attempt and the
// injectable dependencies used for testing and customization.
package config

import (
	"crypto/tls"
	"fmt"
)

// Shared holds the options common to all connect entry points.
// The zero value is usable: plain dial, no tuning, default trust.
type Shared struct {
	// NoDelay disables send coalescing (Nagle's algorithm) on networked
	// transports. It has no effect on local transports.
	NoDelay bool

	// Proto carries optional WebSocket-level parameters. It is passed
	// through to the handshake opaquely.
	Proto *Protocol

	// TLS overrides the trust configuration used for wss requests.
	// When nil, a default configuration is constructed at the call site.
	TLS *tls.Config

	// Verbose enables progress logging in consumers such as the CLI.
	// The library core itself never logs.
	Verbose bool

	// Deps contains injectable dependencies. Nil means defaults.
	Deps *Dependencies
}

// Protocol is the opaque WebSocket-level configuration forwarded to the
// handshake. The connection core does not interpret it.
type Protocol struct {
	// Subprotocols to offer during the handshake, in preference order.
	Subprotocols []string

	// ReadLimit caps the size of a single incoming message in bytes.
	// Zero keeps the handshake library's default.
	ReadLimit int64

	// Compression enables negotiation of per-message compression.
	Compression bool
}

// Validate returns all configuration errors rather than just the first one.
func (c *Shared) Validate() []error {
	var errors []error

	if c.Proto != nil && c.Proto.ReadLimit < 0 {
		errors = append(errors, fmt.Errorf("read limit must not be negative, got %d", c.Proto.ReadLimit))
	}

	return errors
}
