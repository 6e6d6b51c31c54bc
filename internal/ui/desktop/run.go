package desktop

import (
	"pomodoro/internal/app"
	"pomodoro/resources"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/rs/zerolog"
)

// AppID is the fyne application identifier.
const AppID = "com.pomodoro.timer"

// Activator reports later launches of the application.
type Activator interface {
	OnActivate(handler func())
}

// Run opens the timer window and blocks until the user quits. Later
// launches reported by activator bring the window to the front.
func Run(service *app.Service, logger zerolog.Logger, activator Activator) error {
	fyneApp := fyneapp.NewWithID(AppID)
	icon := resources.AppIcon()
	fyneApp.SetIcon(icon)
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		desktopApp.SetSystemTrayIcon(icon)
	} else {
		logger.Info().Msg("system tray unsupported on this platform")
	}

	presenter := New(fyneApp, service, Options{Logger: logger})
	presenter.Listen()
	presenter.Show()
	if activator != nil {
		activator.OnActivate(func() {
			logger.Debug().Msg("second launch, raising window")
			fyne.Do(presenter.Show)
		})
	}

	logger.Info().Msg("timer window ready")
	fyneApp.Run()
	return nil
}
