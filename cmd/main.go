package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"wsdial/cmd/connect"
	"wsdial/cmd/version"
	"wsdial/pkg/log"
)

func main() {
	cmd := &cli.Command{
		Name:  "wsdial",
		Usage: "WebSocket client connection tool",
		Commands: []*cli.Command{
			connect.GetCommand(),
			version.GetCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.ErrorMsg("%s\n", err)
		os.Exit(1)
	}
}
