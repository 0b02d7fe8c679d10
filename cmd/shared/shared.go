// Package shared provides common CLI flag definitions and parsing helpers
// used across wsdial's command-line interface.
package shared

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/urfave/cli/v3"
)

const categoryCommon = "common"

// NoDelayFlag is the name of the flag to disable send coalescing (Nagle's
// algorithm) on TCP connections.
const NoDelayFlag = "nodelay"

// HeaderFlag is the name of the flag to add a handshake header.
const HeaderFlag = "header"

// SubprotocolFlag is the name of the flag to offer a WebSocket subprotocol.
const SubprotocolFlag = "subprotocol"

// ReadLimitFlag is the name of the flag to cap incoming message size.
const ReadLimitFlag = "read-limit"

// InsecureFlag is the name of the flag to skip certificate validation.
const InsecureFlag = "insecure"

// CAFileFlag is the name of the flag to pin a custom CA bundle.
const CAFileFlag = "cafile"

// TimeoutFlag is the name of the flag to bound the whole connection
// attempt in milliseconds.
const TimeoutFlag = "timeout"

// VerboseFlag is the name of the flag to enable verbose logging.
const VerboseFlag = "verbose"

// GetCommonFlags returns the flags shared by all connecting commands.
func GetCommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:     NoDelayFlag,
			Usage:    "Disable send coalescing (Nagle's algorithm) on the TCP connection",
			Category: categoryCommon,
			Value:    false,
			Required: false,
		},
		&cli.StringSliceFlag{
			Name:     HeaderFlag,
			Aliases:  []string{"H"},
			Usage:    "Handshake header in 'Name: value' form, repeatable",
			Category: categoryCommon,
			Required: false,
		},
		&cli.StringSliceFlag{
			Name:     SubprotocolFlag,
			Usage:    "WebSocket subprotocol to offer, repeatable",
			Category: categoryCommon,
			Required: false,
		},
		&cli.IntFlag{
			Name:     ReadLimitFlag,
			Usage:    "Maximum incoming message size in bytes, 0 for the default",
			Category: categoryCommon,
			Value:    0,
			Required: false,
		},
		&cli.BoolFlag{
			Name:     InsecureFlag,
			Usage:    "Skip TLS certificate validation (testing only)",
			Category: categoryCommon,
			Value:    false,
			Required: false,
		},
		&cli.StringFlag{
			Name:     CAFileFlag,
			Usage:    "PEM file with CA certificates to trust instead of the system roots",
			Category: categoryCommon,
			Value:    "",
			Required: false,
		},
		&cli.IntFlag{
			Name:     TimeoutFlag,
			Aliases:  []string{"t"},
			Usage:    "Connection attempt timeout in milliseconds, 0 to disable",
			Category: categoryCommon,
			Value:    10000,
			Required: false,
		},
		&cli.BoolFlag{
			Name:     VerboseFlag,
			Aliases:  []string{"v"},
			Usage:    "Verbose progress logging",
			Category: categoryCommon,
			Value:    false,
			Required: false,
		},
	}
}

// ParseHeaders turns repeated 'Name: value' flag values into an
// http.Header.
func ParseHeaders(specs []string) (http.Header, error) {
	header := make(http.Header)

	for _, spec := range specs {
		name, value, found := strings.Cut(spec, ":")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, fmt.Errorf("header %q: want 'Name: value'", spec)
		}
		header.Add(name, strings.TrimSpace(value))
	}

	return header, nil
}
