package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/roman/internal/app"
	"github.com/dmitrymomot/roman/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()

	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, loads configuration and runs the selected command.
// Usage and configuration mistakes come back as *cli.ExitError with code 2.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, shouldExit, err := cli.Parse(args, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	cfg, err := app.LoadConfig()
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	opts.Apply(&cfg)

	a, err := app.New(ctx, cfg, stderr)
	if err != nil {
		if errors.Is(err, app.ErrInvalidConfig) {
			return &cli.ExitError{Code: 2, Message: err.Error()}
		}
		return err
	}

	if opts.Command == cli.CommandServe {
		return a.Serve(ctx)
	}
	return a.Shell(ctx, stdin, stdout)
}
