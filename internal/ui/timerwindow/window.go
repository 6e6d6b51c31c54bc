package timerwindow

import (
	"context"
	"image/color"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/sessionclock"
	"pomodoro/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Config defines window visuals.
type Config struct {
	Compact       bool
	BlinkOnFinish bool
}

// Callbacks are invoked from the UI thread when the user presses a control.
type Callbacks struct {
	OnToggle   func()
	OnReset    func()
	OnSettings func()
}

// Labels holds the button captions of one window style.
type Labels struct {
	Start    string
	Pause    string
	Resume   string
	Reset    string
	Settings string
}

var (
	classicLabels = Labels{Start: "Start", Pause: "Pause", Resume: "Resume", Reset: "Reset", Settings: "Settings"}
	compactLabels = Labels{Start: "strt", Pause: "⏸", Resume: "▶", Reset: "rst", Settings: "⚙"}
)

// LabelsFor returns the captions for the given style.
func LabelsFor(compact bool) Labels {
	if compact {
		return compactLabels
	}
	return classicLabels
}

var (
	colorWork       = color.NRGBA{R: 0xd3, G: 0x2f, B: 0x2f, A: 0xff}
	colorShortBreak = color.NRGBA{R: 0x38, G: 0x8e, B: 0x3c, A: 0xff}
	colorLongBreak  = color.NRGBA{R: 0x7b, G: 0x1f, B: 0xa2, A: 0xff}
	colorTimer      = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	colorCount      = color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
	colorBackground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// KindColor returns the label color of a session kind.
func KindColor(kind model.SessionKind) color.Color {
	switch kind {
	case model.SessionShortBreak:
		return colorShortBreak
	case model.SessionLongBreak:
		return colorLongBreak
	default:
		return colorWork
	}
}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// Window is the main countdown window.
type Window struct {
	app            fyne.App
	window         fyne.Window
	config         Config
	labels         Labels
	callbacks      Callbacks
	sessionLabel   *canvas.Text
	timerLabel     *canvas.Text
	countLabel     *canvas.Text
	startButton    *widget.Button
	resetButton    *widget.Button
	settingsButton *widget.Button
	background     *canvas.Rectangle
	catcher        *tapCatcher
	engine         *animation.Engine
	cancelAlert    context.CancelFunc
}

// New creates the countdown window.
func New(app fyne.App, config Config, callbacks Callbacks) *Window {
	window := app.NewWindow("Pomodoro")
	if config.Compact {
		if driver, ok := app.Driver().(splashWindowDriver); ok {
			// Splash window is undecorated (no native frame/buttons).
			window = driver.CreateSplashWindow()
		}
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	background := canvas.NewRectangle(colorBackground)

	sessionLabel := canvas.NewText(model.SessionWork.Label(), colorWork)
	sessionLabel.Alignment = fyne.TextAlignCenter
	sessionLabel.TextStyle = fyne.TextStyle{Bold: true}
	sessionLabel.TextSize = 14

	timerLabel := canvas.NewText("25:00", colorTimer)
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Bold: true}
	timerLabel.TextSize = 40

	countLabel := canvas.NewText("0/4", colorCount)
	countLabel.Alignment = fyne.TextAlignCenter
	countLabel.TextSize = 11

	timerWindow := &Window{
		app:          app,
		window:       window,
		config:       config,
		labels:       LabelsFor(config.Compact),
		callbacks:    callbacks,
		sessionLabel: sessionLabel,
		timerLabel:   timerLabel,
		countLabel:   countLabel,
		background:   background,
	}

	timerWindow.startButton = widget.NewButton(timerWindow.labels.Start, timerWindow.handleToggle)
	timerWindow.startButton.Importance = widget.SuccessImportance
	timerWindow.resetButton = widget.NewButton(timerWindow.labels.Reset, timerWindow.handleReset)
	timerWindow.resetButton.Importance = widget.WarningImportance
	timerWindow.settingsButton = widget.NewButton(timerWindow.labels.Settings, timerWindow.handleSettings)

	timerWindow.engine = animation.New(animation.DefaultConfig(), func(fill color.Color) {
		fyne.Do(func() {
			timerWindow.background.FillColor = fill
			timerWindow.background.Refresh()
		})
	})

	buttons := container.NewHBox(timerWindow.startButton, timerWindow.resetButton, timerWindow.settingsButton)
	content := container.NewVBox(sessionLabel, timerLabel, countLabel, container.NewCenter(buttons))
	timerWindow.catcher = newTapCatcher(timerWindow.StopAlert)
	window.SetContent(container.NewStack(background, timerWindow.catcher, container.NewPadded(content)))

	if config.Compact {
		window.Resize(fyne.NewSize(200, 120))
		window.SetFixedSize(true)
	} else {
		window.Resize(fyne.NewSize(280, 200))
	}

	return timerWindow
}

// Window returns the underlying fyne window.
func (timerWindow *Window) Window() fyne.Window {
	return timerWindow.window
}

// Show displays the window.
func (timerWindow *Window) Show() {
	timerWindow.window.Show()
}

// Labels returns the active button captions.
func (timerWindow *Window) Labels() Labels {
	return timerWindow.labels
}

// UpdateConfig switches blink behavior and button captions.
// Window decoration is fixed at creation.
func (timerWindow *Window) UpdateConfig(config Config) {
	timerWindow.config.BlinkOnFinish = config.BlinkOnFinish
	if !config.BlinkOnFinish {
		timerWindow.StopAlert()
	}
}

// Render copies clock state into the widgets. Must run on the UI thread.
func (timerWindow *Window) Render(state sessionclock.State, progress string) {
	timerWindow.sessionLabel.Text = state.Kind.Label()
	timerWindow.sessionLabel.Color = KindColor(state.Kind)
	timerWindow.sessionLabel.Refresh()

	timerWindow.timerLabel.Text = model.FormatClock(state.Remaining)
	timerWindow.timerLabel.Refresh()

	timerWindow.countLabel.Text = progress
	timerWindow.countLabel.Refresh()

	switch {
	case state.Running:
		timerWindow.startButton.SetText(timerWindow.labels.Pause)
		timerWindow.startButton.Importance = widget.DangerImportance
	case state.Remaining < state.Durations.For(state.Kind):
		timerWindow.startButton.SetText(timerWindow.labels.Resume)
		timerWindow.startButton.Importance = widget.SuccessImportance
	default:
		timerWindow.startButton.SetText(timerWindow.labels.Start)
		timerWindow.startButton.Importance = widget.SuccessImportance
	}
	timerWindow.startButton.Refresh()
}

// StartAlert begins the attention effect if enabled.
func (timerWindow *Window) StartAlert() {
	if !timerWindow.config.BlinkOnFinish {
		return
	}
	timerWindow.StopAlert()
	ctx, cancel := context.WithCancel(context.Background())
	timerWindow.cancelAlert = cancel
	timerWindow.engine.StartAlert(ctx)
}

// StopAlert cancels the attention effect.
func (timerWindow *Window) StopAlert() {
	if timerWindow.cancelAlert != nil {
		timerWindow.cancelAlert()
		timerWindow.cancelAlert = nil
	}
	timerWindow.engine.Stop()
}

// Alerting reports whether the attention effect is running.
func (timerWindow *Window) Alerting() bool {
	return timerWindow.engine.Active()
}

func (timerWindow *Window) handleToggle() {
	timerWindow.StopAlert()
	if timerWindow.callbacks.OnToggle != nil {
		timerWindow.callbacks.OnToggle()
	}
}

func (timerWindow *Window) handleReset() {
	timerWindow.StopAlert()
	if timerWindow.callbacks.OnReset != nil {
		timerWindow.callbacks.OnReset()
	}
}

func (timerWindow *Window) handleSettings() {
	timerWindow.StopAlert()
	if timerWindow.callbacks.OnSettings != nil {
		timerWindow.callbacks.OnSettings()
	}
}

// SessionText returns the session label text.
func (timerWindow *Window) SessionText() string {
	return timerWindow.sessionLabel.Text
}

// TimerText returns the countdown text.
func (timerWindow *Window) TimerText() string {
	return timerWindow.timerLabel.Text
}

// CountText returns the cycle counter text.
func (timerWindow *Window) CountText() string {
	return timerWindow.countLabel.Text
}

// StartText returns the caption of the start/pause button.
func (timerWindow *Window) StartText() string {
	return timerWindow.startButton.Text
}
