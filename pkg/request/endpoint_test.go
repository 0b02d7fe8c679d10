package request

import (
	"errors"
	"testing"
)

func TestRequest_Endpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rawURL   string
		wantHost string
		wantPort int
		wantErr  error
	}{
		{
			name:     "ws defaults to 80",
			rawURL:   "ws://example.test/chat",
			wantHost: "example.test",
			wantPort: 80,
		},
		{
			name:     "wss defaults to 443",
			rawURL:   "wss://example.test/chat",
			wantHost: "example.test",
			wantPort: 443,
		},
		{
			name:     "explicit port wins over ws default",
			rawURL:   "ws://example.test:9001/",
			wantHost: "example.test",
			wantPort: 9001,
		},
		{
			name:     "explicit port wins over wss default",
			rawURL:   "wss://example.test:8443/",
			wantHost: "example.test",
			wantPort: 8443,
		},
		{
			name:     "explicit port works for unrecognized scheme",
			rawURL:   "ftp://example.test:2121/",
			wantHost: "example.test",
			wantPort: 2121,
		},
		{
			name:    "unrecognized scheme without port fails",
			rawURL:  "ftp://example.test/",
			wantErr: ErrUnsupportedScheme,
		},
		{
			name:     "explicit port at top of range is accepted",
			rawURL:   "ws://example.test:65535/",
			wantHost: "example.test",
			wantPort: 65535,
		},
		{
			name:    "port above 16-bit range fails before any dial",
			rawURL:  "ws://example.test:99999/",
			wantErr: ErrPortOutOfRange,
		},
		{
			name:    "port zero fails",
			rawURL:  "wss://example.test:0/",
			wantErr: ErrPortOutOfRange,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r, err := New(tc.rawURL)
			if err != nil {
				t.Fatalf("New(%q) error = %v", tc.rawURL, err)
			}

			ep, err := r.Endpoint()
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Endpoint() error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Endpoint() error = %v", err)
			}
			if ep.Host != tc.wantHost || ep.Port != tc.wantPort {
				t.Errorf("Endpoint() = (%q, %d), want (%q, %d)", ep.Host, ep.Port, tc.wantHost, tc.wantPort)
			}
		})
	}
}

func TestEndpoint_Addr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ep   Endpoint
		want string
	}{
		{
			name: "hostname",
			ep:   Endpoint{Host: "example.test", Port: 80},
			want: "example.test:80",
		},
		{
			name: "IPv6 host gets brackets",
			ep:   Endpoint{Host: "::1", Port: 9001},
			want: "[::1]:9001",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.ep.Addr(); got != tc.want {
				t.Errorf("Addr() = %q, want %q", got, tc.want)
			}
		})
	}
}
