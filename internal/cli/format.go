package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	colorHeader = lipgloss.Color("#fe8019")
	colorDim    = lipgloss.Color("#928374")
	colorWork   = lipgloss.Color("#d32f2f")
	colorBreak  = lipgloss.Color("#388e3c")
	colorLong   = lipgloss.Color("#7b1fa2")

	styleHeader = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleLabel  = lipgloss.NewStyle().Bold(true)
	styleWork   = lipgloss.NewStyle().Foreground(colorWork)
	styleBreak  = lipgloss.NewStyle().Foreground(colorBreak)
	styleLong   = lipgloss.NewStyle().Foreground(colorLong)
)

var printer = message.NewPrinter(language.English)

// header renders a section header with an underline.
func header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", styleHeader.Render(upper), styleDim.Render(line))
}

// count formats n with thousands separators.
func count(n int) string {
	return printer.Sprintf("%d", n)
}

// hoursMinutes renders d as "3h 05m".
func hoursMinutes(d time.Duration) string {
	d = d.Round(time.Minute)
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%s %02dm", count(hours)+"h", minutes)
}
