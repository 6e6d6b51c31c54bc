// Package cli wires the pomodoro command line.
package cli

import (
	"errors"
	"io"
	"time"

	"github.com/spf13/cobra"
)

// AppName names the config directory and the single-instance lock.
const AppName = "Pomodoro"

// ErrNotInteractive is returned by commands that need a terminal on stdin.
var ErrNotInteractive = errors.New("interactive terminal required")

// App holds the process-level hooks used by the commands.
type App struct {
	Out           io.Writer
	Err           io.Writer
	Now           func() time.Time
	IsInteractive func() bool

	// RunDesktop runs the fyne presenter until the window is closed.
	RunDesktop func(env *Env) error
	// RunTerminal runs the bubbletea presenter. Defaults to a full-screen program.
	RunTerminal func(env *Env) error
}

type rootOptions struct {
	work      int
	short     int
	long      int
	configDir string
	debug     bool
}

// NewRootCmd creates the top-level "pomodoro" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	if app.Now == nil {
		app.Now = time.Now
	}
	if app.RunTerminal == nil {
		app.RunTerminal = runTerminal
	}
	options := &rootOptions{}

	root := &cobra.Command{
		Use:           "pomodoro",
		Short:         "Pomodoro work/break timer",
		Long:          "Counts down work sessions and breaks. Every fourth work session is followed by a long break.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.RunDesktop == nil {
				return errors.New("desktop window is not available in this build")
			}
			return withEnv(cmd, app, options, app.RunDesktop)
		},
	}
	if app.Out != nil {
		root.SetOut(app.Out)
	}
	if app.Err != nil {
		root.SetErr(app.Err)
	}

	flags := root.PersistentFlags()
	flags.IntVar(&options.work, "work", 0, "Work session length in minutes for this run")
	flags.IntVar(&options.short, "short", 0, "Short break length in minutes for this run")
	flags.IntVar(&options.long, "long", 0, "Long break length in minutes for this run")
	flags.StringVar(&options.configDir, "config-dir", "", "Directory holding settings.yaml and the session journal")
	flags.BoolVar(&options.debug, "debug", false, "Enable debug logging")

	root.AddCommand(
		newTUICmd(app, options),
		newConfigCmd(app, options),
		newStatsCmd(app, options),
		newReportCmd(app, options),
	)

	return root
}

func withEnv(cmd *cobra.Command, app *App, options *rootOptions, run func(env *Env) error) error {
	env, err := openEnv(cmd, app, options)
	if err != nil {
		return err
	}
	defer env.Close()
	return run(env)
}
