// Package version implements the version subcommand.
package version

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// Version is overwritten with the release tag during release builds.
var Version = "unknown"

// GetCommand ...
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Program version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Println(Version)
			return nil
		},
		Flags: []cli.Flag{},
	}
}
