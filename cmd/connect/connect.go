// Package connect implements the connect subcommand: open a WebSocket
// connection and bridge it to standard I/O.
package connect

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"wsdial/cmd/shared"
	"wsdial/pkg/client"
	"wsdial/pkg/config"
	"wsdial/pkg/handshake"
	"wsdial/pkg/log"
	"wsdial/pkg/pipeio"
	"wsdial/pkg/request"
	"wsdial/pkg/transport/kcp"
	"wsdial/pkg/trust"
)

const categoryConnect = "connect"

// UnixFlag is the name of the flag to dial a Unix socket path instead of
// TCP.
const UnixFlag = "unix"

// KCPFlag is the name of the flag to dial over KCP instead of TCP.
const KCPFlag = "kcp"

// GetCommand ...
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:      "connect",
		Usage:     "Connect to a WebSocket URL and bridge it to stdio",
		ArgsUsage: "url",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rawURL := cmd.Args().First()
			if rawURL == "" {
				return fmt.Errorf("missing URL argument, e.g. ws://example.test/chat")
			}

			log.Verbose = cmd.Bool(shared.VerboseFlag)

			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}

			if timeout := cmd.Int(shared.TimeoutFlag); timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, time.Duration(timeout)*time.Millisecond)
				defer cancel()
			}

			stream, resp, err := dial(ctx, cmd, rawURL, cfg)
			if err != nil {
				return fmt.Errorf("connecting to %s: %w", rawURL, err)
			}
			defer stream.Close()

			log.VerboseMsg("Handshake response status: %d\n", resp.Status)
			for name, values := range resp.Header {
				for _, value := range values {
					log.VerboseMsg("  %s: %s\n", name, value)
				}
			}

			if term.IsTerminal(int(os.Stdin.Fd())) {
				log.InfoMsg("Connected to %s\n", rawURL)
			}

			stdio := pipeio.NewStdio()
			pipeio.Pipe(stdio, stream, func(err error) {
				log.VerboseMsg("%s\n", err)
			})

			return nil
		},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     UnixFlag,
				Usage:    "Dial this Unix socket path instead of the URL's host",
				Category: categoryConnect,
				Value:    "",
				Required: false,
			},
			&cli.BoolFlag{
				Name:     KCPFlag,
				Usage:    "Dial over KCP (reliable UDP) instead of TCP",
				Category: categoryConnect,
				Value:    false,
				Required: false,
			},
		}, shared.GetCommonFlags()...),
	}
}

// dial picks the transport variant from the flags.
func dial(ctx context.Context, cmd *cli.Command, rawURL string, cfg *config.Shared) (net.Conn, *handshake.Response, error) {
	req, err := buildRequest(cmd, rawURL)
	if err != nil {
		return nil, nil, err
	}

	if path := cmd.String(UnixFlag); path != "" {
		log.VerboseMsg("Dialing unix socket %s\n", path)
		return client.ConnectUnixRequest(ctx, path, req, cfg)
	}

	if cmd.Bool(KCPFlag) {
		return dialKCP(ctx, req, cfg)
	}

	log.VerboseMsg("Dialing %s over tcp\n", rawURL)
	return client.ConnectRequest(ctx, req, cfg)
}

func dialKCP(ctx context.Context, req *request.Request, cfg *config.Shared) (net.Conn, *handshake.Response, error) {
	ep, err := req.Endpoint()
	if err != nil {
		return nil, nil, fmt.Errorf("resolving endpoint: %w", err)
	}

	d, err := kcp.NewDialer(ep.Addr(), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("kcp.NewDialer(%s): %w", ep.Addr(), err)
	}

	log.VerboseMsg("Dialing %s over kcp\n", ep.Addr())
	return client.ConnectWithDialer(ctx, d, req, cfg)
}

func buildRequest(cmd *cli.Command, rawURL string) (*request.Request, error) {
	req, err := request.New(rawURL)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	header, err := shared.ParseHeaders(cmd.StringSlice(shared.HeaderFlag))
	if err != nil {
		return nil, err
	}
	for name, values := range header {
		req.Header[name] = values
	}

	return req, nil
}

func buildConfig(cmd *cli.Command) (*config.Shared, error) {
	cfg := &config.Shared{
		NoDelay: cmd.Bool(shared.NoDelayFlag),
		Verbose: cmd.Bool(shared.VerboseFlag),
		Proto: &config.Protocol{
			Subprotocols: cmd.StringSlice(shared.SubprotocolFlag),
			ReadLimit:    int64(cmd.Int(shared.ReadLimitFlag)),
		},
	}

	switch {
	case cmd.Bool(shared.InsecureFlag):
		cfg.TLS = trust.Insecure()
	case cmd.String(shared.CAFileFlag) != "":
		tlsCfg, err := trust.WithCAFile(cmd.String(shared.CAFileFlag))
		if err != nil {
			return nil, fmt.Errorf("loading CA file: %w", err)
		}
		cfg.TLS = tlsCfg
	}

	if errors := cfg.Validate(); len(errors) > 0 {
		log.ErrorMsg("Argument validation errors:\n")
		for _, err := range errors {
			log.ErrorMsg(" - %s\n", err)
		}
		return nil, fmt.Errorf("exiting")
	}

	return cfg, nil
}
