// Package run provides the command that opens the raw terminal session.
package run

import (
	"context"
	"dominicbreuker/kiloraw/cmd/shared"
	"dominicbreuker/kiloraw/pkg/config"
	"dominicbreuker/kiloraw/pkg/entrypoint"
	"dominicbreuker/kiloraw/pkg/log"
	"fmt"

	"github.com/urfave/cli/v3"
)

// GetCommand returns the CLI command for the raw session.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:   "run",
		Usage:  "Enter raw mode and print a line for every byte read from stdin",
		Action: Action,
		Flags:  GetFlags(),
	}
}

// GetFlags returns the flags understood by Action.
func GetFlags() []cli.Flag {
	flags := []cli.Flag{}

	flags = append(flags, shared.GetCommonFlags()...)
	flags = append(flags, shared.GetTerminalFlags()...)

	return flags
}

// Action builds the configuration from the parsed flags and runs the session.
func Action(ctx context.Context, cmd *cli.Command) error {
	cfg := configFromCommand(cmd)

	if errors := config.Validate(cfg); len(errors) > 0 {
		log.ErrorMsg("Argument validation errors:\n")
		for _, err := range errors {
			log.ErrorMsg(" - %s\n", err)
		}
		return fmt.Errorf("exiting")
	}

	return entrypoint.Run(ctx, cfg, nil, log.NewLogger(cfg.Verbose))
}

func configFromCommand(cmd *cli.Command) *config.Config {
	return &config.Config{
		MinBytes:           int(cmd.Int(shared.MinBytesFlag)),
		TimeoutDeciseconds: int(cmd.Int(shared.TimeoutFlag)),
		Quit:               cmd.String(shared.QuitFlag),
		Verbose:            cmd.Bool(shared.VerboseFlag),
	}
}
