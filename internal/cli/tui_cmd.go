package cli

import (
	"fmt"

	"pomodoro/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App, options *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, app, options, app.RunTerminal)
		},
	}
}

func runTerminal(env *Env) error {
	service, err := env.NewService()
	if err != nil {
		return err
	}
	defer service.Close()

	program := tea.NewProgram(tui.New(service), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running terminal timer: %w", err)
	}
	return nil
}
