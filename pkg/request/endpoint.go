package request

import (
	"errors"
	"fmt"
	"strconv"

	"wsdial/pkg/format"
)

// ErrUnsupportedScheme is returned when a request has no explicit port and
// its scheme is neither ws nor wss, so no default port can be derived.
var ErrUnsupportedScheme = errors.New("unsupported URL scheme")

// ErrPortOutOfRange is returned when a request carries an explicit port
// outside the 16-bit range. Such requests fail before any I/O.
var ErrPortOutOfRange = errors.New("port out of range")

// Endpoint is the resolved (host, port) pair for one connection attempt.
type Endpoint struct {
	Host string
	Port int
}

// Endpoint resolves the target endpoint. An explicit port in the URL wins
// regardless of scheme; otherwise the scheme default applies (wss: 443,
// ws: 80). No I/O happens here.
func (r *Request) Endpoint() (Endpoint, error) {
	host := r.URL.Hostname()

	if p := r.URL.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return Endpoint{}, fmt.Errorf("port %q: %w", p, err)
		}
		if port < 1 || port > 65535 {
			return Endpoint{}, fmt.Errorf("port %d: %w", port, ErrPortOutOfRange)
		}
		return Endpoint{Host: host, Port: port}, nil
	}

	switch r.URL.Scheme {
	case SchemeWSS:
		return Endpoint{Host: host, Port: 443}, nil
	case SchemeWS:
		return Endpoint{Host: host, Port: 80}, nil
	default:
		return Endpoint{}, fmt.Errorf("scheme %q: %w", r.URL.Scheme, ErrUnsupportedScheme)
	}
}

// Addr returns the endpoint as a dialable address string.
func (e Endpoint) Addr() string {
	return format.Addr(e.Host, e.Port)
}
