// Package format provides formatting helpers for network addresses.
package format

import (
	"fmt"
	"strings"
)

// Addr combines host and port into a dialable address string,
// bracketing IPv6 hosts as required by net.Dial.
func Addr(host string, port int) string {
	if strings.ContainsAny(host, ":") { // IPv6
		return fmt.Sprintf("[%s]:%d", host, port)
	}
	return fmt.Sprintf("%s:%d", host, port)
}
