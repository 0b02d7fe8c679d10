package handshake

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/coder/websocket"

	"wsdial/pkg/config"
	"wsdial/pkg/request"
	"wsdial/pkg/trust"
)

// Client is the coder/websocket backed Handshaker. It decides from the
// request scheme whether to negotiate TLS over the supplied channel before
// the protocol upgrade.
type Client struct {
	proto  *config.Protocol
	tlsCfg *tls.Config
}

// NewClient creates a Handshaker. Both parameters are optional: proto
// forwards WebSocket-level limits, tlsCfg overrides the trust
// configuration used for wss requests.
func NewClient(proto *config.Protocol, tlsCfg *tls.Config) *Client {
	return &Client{
		proto:  proto,
		tlsCfg: tlsCfg,
	}
}

// Handshake performs the opening handshake over conn. For wss requests the
// HTTP transport negotiates TLS on the channel first, validating the
// certificate against the request host. The returned stream owns the
// channel; the raw conn must not be used independently afterwards.
func (c *Client) Handshake(ctx context.Context, conn net.Conn, req *request.Request) (net.Conn, *Response, error) {
	opts := &websocket.DialOptions{
		HTTPClient: newSingleConnClient(conn, c.tlsConfig()),
		HTTPHeader: req.Header.Clone(),
	}
	if c.proto != nil {
		opts.Subprotocols = c.proto.Subprotocols
		if c.proto.Compression {
			opts.CompressionMode = websocket.CompressionContextTakeover
		}
	}

	wsConn, resp, err := websocket.Dial(ctx, req.URL.String(), opts)
	if err != nil {
		return nil, nil, fmt.Errorf("websocket.Dial(%s): %w", req.URL.Redacted(), err)
	}

	if c.proto != nil && c.proto.ReadLimit > 0 {
		wsConn.SetReadLimit(c.proto.ReadLimit)
	}

	out := &Response{Status: resp.StatusCode, Header: resp.Header}
	return websocket.NetConn(context.Background(), wsConn, websocket.MessageBinary), out, nil
}

// tlsConfig returns the trust configuration for this handshake, building
// the default explicitly when the caller supplied none.
func (c *Client) tlsConfig() *tls.Config {
	if c.tlsCfg != nil {
		return c.tlsCfg.Clone()
	}
	return trust.Default()
}

// newSingleConnClient builds an http.Client whose transport hands out the
// pre-dialed channel exactly once. The transport performs the TLS
// handshake itself for https (wss) requests, with the server name taken
// from the request URL.
func newSingleConnClient(conn net.Conn, tlsCfg *tls.Config) *http.Client {
	var mu sync.Mutex
	consumed := false

	dial := func(ctx context.Context, network, addr string) (net.Conn, error) {
		mu.Lock()
		defer mu.Unlock()
		if consumed {
			return nil, fmt.Errorf("transport channel to %s already consumed", addr)
		}
		consumed = true
		return conn, nil
	}

	return &http.Client{
		Transport: &http.Transport{
			DialContext:     dial,
			TLSClientConfig: tlsCfg,
		},
	}
}
