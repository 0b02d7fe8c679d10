// Package client establishes WebSocket client connections. One call is one
// attempt: normalize the request, resolve the endpoint, dial the transport,
// then hand the channel to the combined TLS-upgrade-and-handshake delegate.
// Stages run strictly in that order and the first failure is terminal; there
// are no internal retries and no internal timeouts. Deadline policy belongs
// to the caller's context, retry policy to the caller.
package client

import (
	"context"
	"fmt"
	"net"

	"wsdial/pkg/config"
	"wsdial/pkg/handshake"
	"wsdial/pkg/request"
	"wsdial/pkg/transport"
	"wsdial/pkg/transport/tcp"
	"wsdial/pkg/transport/unix"
)

// dialDependencies holds injectable constructors for testing.
type dialDependencies struct {
	newTCPDialer  func(addr string, noDelay bool, deps *config.Dependencies) transport.Dialer
	newUnixDialer func(path string, deps *config.Dependencies) transport.Dialer
	newHandshaker func(cfg *config.Shared) handshake.Handshaker
}

func realDependencies() *dialDependencies {
	return &dialDependencies{
		newTCPDialer: func(addr string, noDelay bool, deps *config.Dependencies) transport.Dialer {
			return tcp.NewDialer(addr, noDelay, deps)
		},
		newUnixDialer: func(path string, deps *config.Dependencies) transport.Dialer {
			return unix.NewDialer(path, deps)
		},
		newHandshaker: func(cfg *config.Shared) handshake.Handshaker {
			return handshake.NewClient(cfg.Proto, cfg.TLS)
		},
	}
}

// Connect opens a WebSocket connection to the given URL over TCP. On
// success it returns the message stream and the handshake response; on
// failure it returns a single *Error identifying the failed stage. cfg may
// be nil for defaults.
func Connect(ctx context.Context, rawURL string, cfg *config.Shared) (net.Conn, *handshake.Response, error) {
	return connect(ctx, rawURL, cfg, realDependencies())
}

// ConnectRequest is Connect for an already-constructed request, e.g. one
// carrying handshake headers.
func ConnectRequest(ctx context.Context, req *request.Request, cfg *config.Shared) (net.Conn, *handshake.Response, error) {
	return connectRequest(ctx, req, cfg, realDependencies())
}

// ConnectUnix is like Connect but dials the WebSocket server through a
// local Unix domain socket at path. The URL still provides the host and
// headers for the handshake; no endpoint resolution or channel tuning
// applies to local sockets.
func ConnectUnix(ctx context.Context, path, rawURL string, cfg *config.Shared) (net.Conn, *handshake.Response, error) {
	return connectUnix(ctx, path, rawURL, cfg, realDependencies())
}

// ConnectUnixRequest is ConnectUnix for an already-constructed request.
func ConnectUnixRequest(ctx context.Context, path string, req *request.Request, cfg *config.Shared) (net.Conn, *handshake.Response, error) {
	return connectWithDialer(ctx, unixDialer(path, cfg), req, cfg, realDependencies())
}

// ConnectWithDialer is like ConnectRequest but dials through the supplied
// transport dialer instead of resolving and dialing TCP itself. This is
// the entry point for alternative transports such as KCP.
func ConnectWithDialer(ctx context.Context, d transport.Dialer, req *request.Request, cfg *config.Shared) (net.Conn, *handshake.Response, error) {
	return connectWithDialer(ctx, d, req, cfg, realDependencies())
}

func connect(ctx context.Context, rawURL string, cfg *config.Shared, deps *dialDependencies) (net.Conn, *handshake.Response, error) {
	req, err := request.New(rawURL)
	if err != nil {
		return nil, nil, stageErr(StageRequest, err)
	}

	return connectRequest(ctx, req, cfg, deps)
}

func connectRequest(ctx context.Context, req *request.Request, cfg *config.Shared, deps *dialDependencies) (net.Conn, *handshake.Response, error) {
	cfg = ensureConfig(cfg)

	ep, err := req.Endpoint()
	if err != nil {
		return nil, nil, stageErr(StageResolve, err)
	}

	d := deps.newTCPDialer(ep.Addr(), cfg.NoDelay, cfg.Deps)
	return finish(ctx, d, req, cfg, deps)
}

func connectUnix(ctx context.Context, path, rawURL string, cfg *config.Shared, deps *dialDependencies) (net.Conn, *handshake.Response, error) {
	cfg = ensureConfig(cfg)

	req, err := request.New(rawURL)
	if err != nil {
		return nil, nil, stageErr(StageRequest, err)
	}

	d := deps.newUnixDialer(path, cfg.Deps)
	return finish(ctx, d, req, cfg, deps)
}

func connectWithDialer(ctx context.Context, d transport.Dialer, req *request.Request, cfg *config.Shared, deps *dialDependencies) (net.Conn, *handshake.Response, error) {
	return finish(ctx, d, req, ensureConfig(cfg), deps)
}

func unixDialer(path string, cfg *config.Shared) transport.Dialer {
	return unix.NewDialer(path, ensureConfig(cfg).Deps)
}

// finish runs the dial and delegate stages. The conn is owned by this
// function from dial success until it is handed to the delegate; every
// failure path in between closes it.
func finish(ctx context.Context, d transport.Dialer, req *request.Request, cfg *config.Shared, deps *dialDependencies) (net.Conn, *handshake.Response, error) {
	conn, err := d.Dial(ctx)
	if err != nil {
		return nil, nil, stageErr(StageDial, err)
	}

	// An attempt abandoned during the dial must not keep the channel open.
	if err := ctx.Err(); err != nil {
		conn.Close()
		return nil, nil, stageErr(StageDial, fmt.Errorf("attempt abandoned: %w", err))
	}

	stream, resp, err := deps.newHandshaker(cfg).Handshake(ctx, conn, req)
	if err != nil {
		conn.Close()
		return nil, nil, delegateErr(err)
	}

	return stream, resp, nil
}

func ensureConfig(cfg *config.Shared) *config.Shared {
	if cfg == nil {
		return &config.Shared{}
	}
	return cfg
}
