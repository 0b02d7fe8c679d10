// Package request turns caller input into the canonical descriptor for one
// WebSocket connection attempt and resolves the network endpoint to dial.
package request

import (
	"fmt"
	"net/http"
	"net/url"
)

// Scheme constants recognized for port defaulting.
const (
	SchemeWS  = "ws"
	SchemeWSS = "wss"
)

// Request is the canonical connection request: a parsed URL plus the
// headers to send with the opening handshake. It is immutable after
// construction; build a new one for every connection attempt.
type Request struct {
	URL    *url.URL
	Header http.Header
}

// New parses a raw URL into a Request. It fails if the URL cannot be
// parsed or carries no host.
func New(rawURL string) (*Request, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("url.Parse(%s): %w", rawURL, err)
	}

	return FromURL(u)
}

// FromURL builds a Request from an already-parsed URL.
func FromURL(u *url.URL) (*Request, error) {
	if u.Hostname() == "" {
		return nil, fmt.Errorf("url %s: missing host", u.Redacted())
	}

	return &Request{
		URL:    u,
		Header: make(http.Header),
	}, nil
}

// Secure reports whether the request uses the encrypted WebSocket scheme.
func (r *Request) Secure() bool {
	return r.URL.Scheme == SchemeWSS
}

// Host returns the host name without any port, as needed for
// certificate validation.
func (r *Request) Host() string {
	return r.URL.Hostname()
}
