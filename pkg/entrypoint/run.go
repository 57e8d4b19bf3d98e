package entrypoint

import (
	"context"
	"dominicbreuker/kiloraw/pkg/config"
	"dominicbreuker/kiloraw/pkg/echo"
	"dominicbreuker/kiloraw/pkg/log"
	"dominicbreuker/kiloraw/pkg/terminal"
	"errors"
	"fmt"
)

// Run puts the terminal into raw mode and prints a diagnostic line for each
// byte read from stdin until the quit byte, end of input, or cancellation of
// ctx. The terminal is restored before Run returns, also when it returns an
// error or panics.
func Run(ctx context.Context, cfg *config.Config, deps *config.Dependencies, logger *log.Logger) error {
	return run(ctx, cfg, deps, logger, realSessionOpener())
}

func run(
	ctx context.Context,
	cfg *config.Config,
	deps *config.Dependencies,
	logger *log.Logger,
	open sessionOpener,
) (err error) {
	if errs := config.Validate(cfg); len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}

	dev := config.GetTerminalFunc(deps)()
	stdin := config.GetStdinFunc(deps)()
	stdout := config.GetStdoutFunc(deps)()

	logger.VerboseMsg("Enabling raw mode\n")
	sess, err := open(dev, cfg.Mode())
	if err != nil {
		return err
	}

	defer func() {
		closeErr := sess.Close()
		logger.VerboseMsg("Disabling raw mode\n")

		switch {
		case closeErr == nil:
		case err == nil:
			err = closeErr
		default:
			err = errors.Join(err, closeErr)
		}
	}()

	// after Open, so input typed before the flush never reaches the loop
	in := terminal.NewInput(stdin)
	defer in.Close()

	return echo.Run(ctx, in, stdout, echo.Options{
		Quit:    cfg.QuitByte(),
		Timeout: sess.Timeout(),
	})
}
