package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"pomodoro/internal/journal"

	"github.com/go-pdf/fpdf"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App, options *rootOptions) *cobra.Command {
	var days int
	var out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a PDF report of finished sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				return fmt.Errorf("--days must be positive, got %d", days)
			}
			return withEnv(cmd, app, options, func(env *Env) error {
				now := env.Now()
				since := periodStart(now, days)
				entries, err := env.Journal.ListSince(cmd.Context(), since)
				if err != nil {
					return err
				}

				filename := out
				if filename == "" {
					filename = fmt.Sprintf("pomodoro-report-%s.pdf", now.Format("2006-01-02"))
				}
				pdf := buildReport(entries, since, now)
				if err := pdf.OutputFileAndClose(filename); err != nil {
					return fmt.Errorf("writing report: %w", err)
				}

				absPath, err := filepath.Abs(filename)
				if err != nil {
					absPath = filename
				}
				env.Logger.Debug().Int("entries", len(entries)).Str("path", absPath).Msg("report written")
				fmt.Fprintf(cmd.OutOrStdout(), "PDF report generated: %s\n", absPath)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Number of days to include, counting today")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default pomodoro-report-<date>.pdf)")

	return cmd
}

func buildReport(entries []journal.Entry, since, now time.Time) *fpdf.Fpdf {
	summary := journal.Summarize(entries)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Pomodoro Report", false)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Pomodoro Report")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("%s to %s", since.Format("2006-01-02"), now.Format("2006-01-02")))
	pdf.Ln(12)

	// Summary
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	lines := []string{
		fmt.Sprintf("Work sessions: %s", count(summary.WorkSessions)),
		fmt.Sprintf("Short breaks: %s", count(summary.ShortBreaks)),
		fmt.Sprintf("Long breaks: %s", count(summary.LongBreaks)),
		fmt.Sprintf("Focus time: %s", hoursMinutes(summary.FocusTime)),
		fmt.Sprintf("Break time: %s", hoursMinutes(summary.BreakTime)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(6)

	// Sessions
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Sessions")
	pdf.Ln(9)
	if len(entries) == 0 {
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, "  - No finished sessions in this period.")
		pdf.Ln(8)
		return pdf
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(50, 7, "Finished", "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Session", "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Planned", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Cycle", "B", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	for _, entry := range entries {
		pdf.CellFormat(50, 7, entry.FinishedAt.Local().Format("2006-01-02 15:04"), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, entry.Kind.Label(), "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, hoursMinutes(entry.Planned), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", entry.Cycle), "", 1, "R", false, 0, "")
	}
	return pdf
}
