// Package desktop wires the session service to the fyne windows and tray.
package desktop

import (
	"context"
	"errors"
	"fmt"

	"pomodoro/internal/app"
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/sessionclock"
	"pomodoro/internal/core/ticker"
	"pomodoro/internal/logging"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/timerwindow"
	"pomodoro/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/rs/zerolog"
)

// Options configures a Presenter.
type Options struct {
	Ticker *ticker.Ticker
	Logger zerolog.Logger
}

// Presenter drives the clock from the timer window, the settings dialog and the tray.
type Presenter struct {
	app      fyne.App
	service  *app.Service
	ticker   *ticker.Ticker
	logger   zerolog.Logger
	window   *timerwindow.Window
	prefs    *preferences.Window
	tray     *tray.Manager
	events   <-chan sessionclock.Event
	ctx      context.Context
	cancel   context.CancelFunc
	onQuit   func()
	finished int
}

// New builds the windows. Call Listen to start rendering clock events.
func New(fyneApp fyne.App, service *app.Service, options Options) *Presenter {
	tickSource := options.Ticker
	if tickSource == nil {
		tickSource = ticker.New(0, nil)
	}
	ctx, cancel := context.WithCancel(context.Background())
	presenter := &Presenter{
		app:     fyneApp,
		service: service,
		ticker:  tickSource,
		logger:  logging.Component(options.Logger, "desktop"),
		ctx:     ctx,
		cancel:  cancel,
	}

	settings := service.Settings()
	presenter.window = timerwindow.New(fyneApp, timerwindow.Config{
		Compact:       settings.Compact,
		BlinkOnFinish: settings.BlinkOnFinish,
	}, timerwindow.Callbacks{
		OnToggle:   presenter.Toggle,
		OnReset:    presenter.Reset,
		OnSettings: presenter.ShowSettings,
	})
	presenter.window.Window().SetCloseIntercept(presenter.Quit)
	presenter.window.Window().SetMaster()

	presenter.prefs = preferences.New(fyneApp, settings, presenter.ApplySettings)

	desktopApp, _ := fyneApp.(desktop.App)
	presenter.tray = tray.New(desktopApp, tray.Callbacks{
		OnShow:        presenter.window.Show,
		OnToggle:      presenter.Toggle,
		OnReset:       presenter.Reset,
		OnResetCount:  presenter.ResetCount,
		OnPreferences: presenter.ShowSettings,
		OnQuit:        presenter.Quit,
	})

	presenter.events = service.Clock().Subscribe(16)
	presenter.Render()
	return presenter
}

// SetOnQuit registers a handler that runs before the application quits.
func (presenter *Presenter) SetOnQuit(handler func()) {
	presenter.onQuit = handler
}

// Window returns the countdown window.
func (presenter *Presenter) Window() *timerwindow.Window {
	return presenter.window
}

// Preferences returns the settings dialog.
func (presenter *Presenter) Preferences() *preferences.Window {
	return presenter.prefs
}

// Tray returns the tray manager.
func (presenter *Presenter) Tray() *tray.Manager {
	return presenter.tray
}

// Show displays the countdown window.
func (presenter *Presenter) Show() {
	presenter.window.Show()
}

// Listen forwards clock events to the UI thread until the clock is closed.
func (presenter *Presenter) Listen() {
	go func() {
		for event := range presenter.events {
			fyne.Do(func() {
				presenter.HandleEvent(event)
			})
		}
	}()
}

// Toggle starts or pauses the countdown and arms the ticker accordingly.
func (presenter *Presenter) Toggle() {
	presenter.window.StopAlert()
	if presenter.service.Toggle() {
		presenter.ticker.Arm(presenter.tick)
	} else {
		presenter.ticker.Disarm()
	}
	presenter.Render()
}

// Reset rewinds to a full work session.
func (presenter *Presenter) Reset() {
	presenter.window.StopAlert()
	presenter.ticker.Disarm()
	presenter.service.Reset()
	presenter.Render()
}

// ResetCount clears the cycle counter.
func (presenter *Presenter) ResetCount() {
	presenter.service.ResetCount()
	presenter.Render()
}

// ShowSettings opens the settings dialog.
func (presenter *Presenter) ShowSettings() {
	presenter.prefs.UpdateSettings(presenter.service.Settings())
	presenter.prefs.Show()
}

// ApplySettings validates and applies settings from the dialog.
// Rejected settings leave the clock and its tick chain running.
func (presenter *Presenter) ApplySettings(settings preferences.Settings) error {
	err := presenter.service.UpdateConfiguration(settings)
	if !errors.Is(err, model.ErrInvalidConfiguration) {
		// The clock was reset to a stopped work session.
		presenter.ticker.Disarm()
	}
	if err != nil {
		presenter.logger.Error().Err(err).Msg("apply settings")
	}
	presenter.window.UpdateConfig(timerwindow.Config{
		Compact:       presenter.service.Settings().Compact,
		BlinkOnFinish: presenter.service.Settings().BlinkOnFinish,
	})
	presenter.Render()
	return err
}

// Quit stops ticking and exits the application.
func (presenter *Presenter) Quit() {
	presenter.ticker.Disarm()
	presenter.window.StopAlert()
	presenter.cancel()
	if presenter.onQuit != nil {
		presenter.onQuit()
	}
	presenter.app.Quit()
}

// HandleEvent reacts to one clock event. Must run on the UI thread.
func (presenter *Presenter) HandleEvent(event sessionclock.Event) {
	if event.Type == sessionclock.EventSessionFinished {
		presenter.finished++
		presenter.announce(event)
		presenter.window.StartAlert()
	}
	presenter.Render()
}

// Render refreshes every widget from the clock snapshot. Must run on the UI thread.
func (presenter *Presenter) Render() {
	state := presenter.service.Snapshot()
	progress := presenter.service.ProgressText()
	presenter.window.Render(state, progress)
	presenter.tray.SetRunning(state.Running)
	presenter.tray.SetStatus(fmt.Sprintf("%s %s · %s", state.Kind.Label(), model.FormatClock(state.Remaining), progress))
}

// FinishedCount returns how many session-finished events were handled.
func (presenter *Presenter) FinishedCount() int {
	return presenter.finished
}

func (presenter *Presenter) tick() bool {
	return presenter.service.Tick(presenter.ctx).Reschedule()
}

func (presenter *Presenter) announce(event sessionclock.Event) {
	if !presenter.service.Settings().Notify {
		return
	}
	title := fmt.Sprintf("%s finished", event.Finished.Label())
	content := fmt.Sprintf("Next: %s (%s). Completed %d/%d.",
		event.Kind.Label(),
		model.FormatClock(event.Remaining),
		event.Completed%model.LongBreakEvery,
		model.LongBreakEvery,
	)
	presenter.app.SendNotification(fyne.NewNotification(title, content))
}
