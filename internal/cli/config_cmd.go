package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"pomodoro/internal/core/model"
	"pomodoro/internal/ui/preferences"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

type configForm struct {
	work    string
	short   string
	long    string
	compact bool
	blink   bool
	notify  bool
}

func newConfigCmd(app *App, options *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Edit durations and presenter options interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("config: %w (use 'pomodoro config show' to print settings)", ErrNotInteractive)
			}
			return withEnv(cmd, app, options, func(env *Env) error {
				values := newConfigForm(env.Settings)
				if err := buildConfigForm(values).Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return fmt.Errorf("config form: %w", err)
				}
				settings, err := values.apply(env.Settings)
				if err != nil {
					return err
				}
				if err := env.Store.Save(settings); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved settings to %s\n", env.Store.Path())
				return nil
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, app, options, func(env *Env) error {
				printSettings(cmd.OutOrStdout(), env)
				return nil
			})
		},
	})

	return cmd
}

func newConfigForm(settings preferences.Settings) *configForm {
	return &configForm{
		work:    minutesString(settings.WorkDuration.Minutes()),
		short:   minutesString(settings.ShortBreakDuration.Minutes()),
		long:    minutesString(settings.LongBreakDuration.Minutes()),
		compact: settings.Compact,
		blink:   settings.BlinkOnFinish,
		notify:  settings.Notify,
	}
}

func buildConfigForm(values *configForm) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			minutesInput("Work minutes", &values.work),
			minutesInput("Short break minutes", &values.short),
			minutesInput("Long break minutes", &values.long),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Compact window").Value(&values.compact),
			huh.NewConfirm().Title("Blink when a session ends").Value(&values.blink),
			huh.NewConfirm().Title("Desktop notification when a session ends").Value(&values.notify),
		),
	).WithShowHelp(false)
}

func minutesInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("25").
		Value(value).
		Validate(validateMinutes)
}

func validateMinutes(value string) error {
	_, err := model.ParseMinutes(value)
	return err
}

func (values *configForm) apply(base preferences.Settings) (preferences.Settings, error) {
	durations, err := model.ParseDurations(values.work, values.short, values.long)
	if err != nil {
		return base, err
	}
	settings := base.WithDurations(durations)
	settings.Compact = values.compact
	settings.BlinkOnFinish = values.blink
	settings.Notify = values.notify
	return settings, nil
}

func printSettings(out io.Writer, env *Env) {
	settings := env.Settings
	rows := [][2]string{
		{"Work", minutesString(settings.WorkDuration.Minutes()) + " min"},
		{"Short break", minutesString(settings.ShortBreakDuration.Minutes()) + " min"},
		{"Long break", minutesString(settings.LongBreakDuration.Minutes()) + " min"},
		{"Long break every", strconv.Itoa(model.LongBreakEvery) + " work sessions"},
		{"Compact", strconv.FormatBool(settings.Compact)},
		{"Blink on finish", strconv.FormatBool(settings.BlinkOnFinish)},
		{"Notify", strconv.FormatBool(settings.Notify)},
		{"Settings file", env.Store.Path()},
	}
	fmt.Fprintln(out, header("Settings"))
	for _, row := range rows {
		fmt.Fprintf(out, "%s %s\n", styleLabel.Render(fmt.Sprintf("%-18s", row[0])), row[1])
	}
}

func minutesString(minutes float64) string {
	return strconv.Itoa(int(minutes))
}
