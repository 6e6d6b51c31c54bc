package main

import (
	"errors"
	"fmt"
	"os"

	"pomodoro/internal/cli"
	"pomodoro/internal/platform"
	"pomodoro/internal/ui/desktop"

	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		RunDesktop: runDesktop,
	}

	// Detect interactive terminal for the config form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

func runDesktop(env *cli.Env) error {
	guard, err := platform.AcquireSingleInstance(cli.AppName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			_ = platform.ActivateRunning(cli.AppName)
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	service, err := env.NewService()
	if err != nil {
		return err
	}
	defer service.Close()

	return desktop.Run(service, env.Logger, guard)
}
