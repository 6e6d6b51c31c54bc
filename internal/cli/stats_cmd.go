package cli

import (
	"fmt"
	"io"
	"time"

	"pomodoro/internal/journal"

	"github.com/spf13/cobra"
)

func newStatsCmd(app *App, options *rootOptions) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize finished sessions from the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				return fmt.Errorf("--days must be positive, got %d", days)
			}
			return withEnv(cmd, app, options, func(env *Env) error {
				since := periodStart(env.Now(), days)
				summary, err := env.Journal.Summarize(cmd.Context(), since)
				if err != nil {
					return err
				}
				writeStats(cmd.OutOrStdout(), summary, days)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Number of days to include, counting today")

	return cmd
}

// periodStart returns local midnight days-1 days before now.
func periodStart(now time.Time, days int) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -(days - 1))
}

func writeStats(out io.Writer, summary journal.Summary, days int) {
	title := "Today"
	if days > 1 {
		title = fmt.Sprintf("Last %d days", days)
	}
	fmt.Fprintln(out, header(title))

	rows := []struct {
		label string
		value string
	}{
		{"Work sessions", styleWork.Render(count(summary.WorkSessions))},
		{"Short breaks", styleBreak.Render(count(summary.ShortBreaks))},
		{"Long breaks", styleLong.Render(count(summary.LongBreaks))},
		{"Focus time", hoursMinutes(summary.FocusTime)},
		{"Break time", hoursMinutes(summary.BreakTime)},
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%s %s\n", styleLabel.Render(fmt.Sprintf("%-14s", row.label)), row.value)
	}
	if summary.WorkSessions == 0 {
		fmt.Fprintln(out, styleDim.Render("No finished work sessions yet."))
	}
}
