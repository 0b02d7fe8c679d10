package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// capture runs f while collecting everything written to stderr.
func capture(t *testing.T, f func()) string {
	t.Helper()

	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	os.Stderr = w

	f()

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestErrorMsg(t *testing.T) {
	out := capture(t, func() {
		ErrorMsg("test error: %s\n", "something")
	})

	if !strings.Contains(out, "test error: something") {
		t.Errorf("ErrorMsg() output does not contain expected text: %q", out)
	}
}

func TestInfoMsg(t *testing.T) {
	out := capture(t, func() {
		InfoMsg("connected to %s\n", "example.test")
	})

	if !strings.Contains(out, "connected to example.test") {
		t.Errorf("InfoMsg() output does not contain expected text: %q", out)
	}
}

func TestVerboseMsg(t *testing.T) {
	out := capture(t, func() {
		Verbose = false
		VerboseMsg("hidden\n")
	})
	if out != "" {
		t.Errorf("VerboseMsg() produced output while disabled: %q", out)
	}

	out = capture(t, func() {
		Verbose = true
		defer func() { Verbose = false }()
		VerboseMsg("shown\n")
	})
	if !strings.Contains(out, "shown") {
		t.Errorf("VerboseMsg() output does not contain expected text: %q", out)
	}
}
