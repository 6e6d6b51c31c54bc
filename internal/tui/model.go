// Package tui provides the terminal presenter built on bubbletea.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pomodoro/internal/app"
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/sessionclock"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// tickMsg is sent once per second while a run is active. Messages from an
// older run carry a stale generation and are dropped.
type tickMsg struct {
	generation int
}

var (
	colorWork      = lipgloss.Color("#d32f2f")
	colorShort     = lipgloss.Color("#388e3c")
	colorLong      = lipgloss.Color("#7b1fa2")
	colorDim       = lipgloss.Color("#928374")
	styleHelp      = lipgloss.NewStyle().Foreground(colorDim)
	styleCount     = lipgloss.NewStyle().Bold(true)
	stylePaused    = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
	styleTimer     = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleAlertBase = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1)
)

// Model is the bubbletea model for a single session clock.
type Model struct {
	service    *app.Service
	ctx        context.Context
	interval   time.Duration
	progress   progress.Model
	generation int
	alert      string
	width      int
	quitting   bool
}

// Option customizes a Model.
type Option func(*Model)

// WithInterval changes the tick interval.
func WithInterval(interval time.Duration) Option {
	return func(m *Model) {
		if interval > 0 {
			m.interval = interval
		}
	}
}

// WithContext sets the context passed to journal writes.
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		m.ctx = ctx
	}
}

// New creates a model driving service.
func New(service *app.Service, options ...Option) Model {
	m := Model{
		service:  service,
		ctx:      context.Background(),
		interval: time.Second,
		progress: progress.New(progress.WithSolidFill(string(colorWork)), progress.WithoutPercentage()),
		width:    40,
	}
	for _, option := range options {
		option(&m)
	}
	return m
}

// Init implements tea.Model. The clock starts stopped.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles keys, resizes and ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.alert = ""
		switch msg.String() {
		case "ctrl+c", "q":
			m.generation++
			m.quitting = true
			m.service.Pause()
			return m, tea.Quit
		case " ", "s":
			m.generation++
			if m.service.Toggle() {
				return m, m.tick()
			}
		case "r":
			m.generation++
			m.service.Reset()
		case "c":
			m.service.ResetCount()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width - 4
		if m.width < 10 {
			m.width = 10
		}

	case tickMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		before := m.service.Snapshot()
		switch m.service.Tick(m.ctx) {
		case sessionclock.OutcomeTicked:
			return m, m.tick()
		case sessionclock.OutcomeFinished:
			after := m.service.Snapshot()
			m.alert = fmt.Sprintf("%s finished. Next: %s", before.Kind.Label(), after.Kind.Label())
			return m, tea.Println("\a")
		}
	}
	return m, nil
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	state := m.service.Snapshot()
	color := kindColor(state.Kind)

	sections := []string{
		lipgloss.NewStyle().Bold(true).Foreground(color).Render(state.Kind.Label()),
		styleTimer.Foreground(color).Render(model.FormatClock(state.Remaining)),
	}
	if !state.Running {
		sections = append(sections, stylePaused.Render("paused"))
	}

	bar := m.progress
	bar.Width = m.width
	bar.FullColor = string(color)
	sections = append(sections, bar.ViewAs(Fraction(state)))
	sections = append(sections, styleCount.Render(m.service.ProgressText()))

	if m.alert != "" {
		sections = append(sections, "", styleAlertBase.Background(color).Render(m.alert))
	}

	sections = append(sections, "", styleHelp.Render(helpText(state)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// Alert returns the finish banner, empty when cleared.
func (m Model) Alert() string {
	return m.alert
}

// Fraction reports how much of the current session has elapsed.
func Fraction(state sessionclock.State) float64 {
	total := state.Durations.For(state.Kind)
	if total <= 0 {
		return 0
	}
	elapsed := total - state.Remaining
	if elapsed < 0 {
		return 0
	}
	return float64(elapsed) / float64(total)
}

func (m Model) tick() tea.Cmd {
	generation := m.generation
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{generation: generation}
	})
}

func kindColor(kind model.SessionKind) lipgloss.Color {
	switch kind {
	case model.SessionShortBreak:
		return colorShort
	case model.SessionLongBreak:
		return colorLong
	default:
		return colorWork
	}
}

func helpText(state sessionclock.State) string {
	toggle := "start"
	if state.Running {
		toggle = "pause"
	}
	return strings.Join([]string{
		"[space] " + toggle,
		"[r]eset",
		"[c]lear count",
		"[q]uit",
	}, "  ")
}
