package main

import (
	"context"
	"dominicbreuker/kiloraw/cmd/run"
	"dominicbreuker/kiloraw/cmd/shared"
	"dominicbreuker/kiloraw/cmd/version"
	"dominicbreuker/kiloraw/pkg/log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	shared.SetupSignalHandling(ctx, cancel)

	if err := newRootCommand().Run(ctx, os.Args); err != nil {
		log.ErrorMsg("%s\n", err)
		cancel()
		os.Exit(1)
	}
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:   "kiloraw",
		Usage:  "Put the terminal into raw mode and print every key press",
		Flags:  run.GetFlags(),
		Action: run.Action,
		Commands: []*cli.Command{
			run.GetCommand(),
			version.GetCommand(),
		},
	}
}
