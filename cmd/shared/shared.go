// Package shared provides common CLI flag definitions and utility functions
// used across the command-line interface.
package shared

import (
	"dominicbreuker/kiloraw/pkg/terminal"

	"github.com/urfave/cli/v3"
)

const categoryCommon = "common"

// VerboseFlag is the name of the flag to enable verbose logging.
const VerboseFlag = "verbose"

// GetCommonFlags returns the CLI flags shared by all commands that open a session.
func GetCommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:     VerboseFlag,
			Aliases:  []string{"v"},
			Usage:    "Log entering and leaving raw mode",
			Category: categoryCommon,
			Value:    false,
			Required: false,
		},
	}
}

const categoryTerminal = "terminal"

// MinBytesFlag is the name of the flag to set the minimum bytes per read (VMIN).
const MinBytesFlag = "min-bytes"

// TimeoutFlag is the name of the flag to set the read timeout in tenths of a second (VTIME).
const TimeoutFlag = "timeout"

// QuitFlag is the name of the flag to choose the key that ends the session.
const QuitFlag = "quit"

// GetTerminalFlags returns the CLI flags that shape the raw terminal mode.
func GetTerminalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:     MinBytesFlag,
			Aliases:  []string{},
			Usage:    "Minimum number of bytes a read waits for (VMIN, 0-255)",
			Category: categoryTerminal,
			Value:    terminal.DefaultMinBytes,
			Required: false,
		},
		&cli.IntFlag{
			Name:     TimeoutFlag,
			Aliases:  []string{"t"},
			Usage:    "Read timeout in tenths of a second (VTIME, 0-255)",
			Category: categoryTerminal,
			Value:    terminal.DefaultTimeoutDeciseconds,
			Required: false,
		},
		&cli.StringFlag{
			Name:     QuitFlag,
			Aliases:  []string{"q"},
			Usage:    "Key that ends the session",
			Category: categoryTerminal,
			Value:    "q",
			Required: false,
		},
	}
}
