package unix

import (
	"context"
	"errors"
	"net"
	"path/filepath"
	"testing"

	"wsdial/mocks"
	"wsdial/pkg/config"
)

func TestDialer_Dial(t *testing.T) {
	t.Parallel()

	conn := mocks.NewConn()
	var gotPath string
	deps := &config.Dependencies{
		UnixDialer: func(ctx context.Context, path string) (net.Conn, error) {
			gotPath = path
			return conn, nil
		},
	}

	d := NewDialer("/tmp/sock", deps)
	got, err := d.Dial(context.Background())
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	if got != conn {
		t.Error("Dial() returned a different conn than the dial func produced")
	}
	if gotPath != "/tmp/sock" {
		t.Errorf("Dial() dialed %q, want %q", gotPath, "/tmp/sock")
	}
}

func TestDialer_Dial_Error(t *testing.T) {
	t.Parallel()

	dialErr := errors.New("no such file or directory")
	deps := &config.Dependencies{
		UnixDialer: func(ctx context.Context, path string) (net.Conn, error) {
			return nil, dialErr
		},
	}

	d := NewDialer("/tmp/missing.sock", deps)
	if _, err := d.Dial(context.Background()); !errors.Is(err, dialErr) {
		t.Errorf("Dial() error = %v, want wrapped %v", err, dialErr)
	}
}

func TestDialer_Dial_Socket(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping network test in short mode")
	}

	t.Parallel()

	path := filepath.Join(t.TempDir(), "wsdial.sock")
	l, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("net.Listen() error = %v", err)
	}
	defer l.Close()

	go func() {
		conn, err := l.Accept()
		if err == nil {
			conn.Close()
		}
	}()

	d := NewDialer(path, nil)
	conn, err := d.Dial(context.Background())
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	conn.Close()
}
