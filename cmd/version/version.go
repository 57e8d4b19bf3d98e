// Package version provides the command that prints the program version.
package version

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// Version is set at build time with -ldflags "-X dominicbreuker/kiloraw/cmd/version.Version=...".
var Version = "unknown"

// GetCommand returns the CLI command that prints Version.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Program version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Fprintln(cmd.Root().Writer, Version)
			return nil
		},
		Flags: []cli.Flag{},
	}
}
