package preferences

import (
	"errors"
	"fmt"

	"pomodoro/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings) error
	onCancel   func()
	work       *widget.Entry
	shortBreak *widget.Entry
	longBreak  *widget.Entry
	compact    *widget.Check
	blink      *widget.Check
	notify     *widget.Check
	message    *widget.Label
	saveButton *widget.Button
}

// New creates a preferences window. onSave returning an error keeps the window open.
func New(app fyne.App, settings Settings, onSave func(Settings) error) *Window {
	window := app.NewWindow("Pomodoro Settings")

	prefs := &Window{
		window:     window,
		settings:   settings,
		onSave:     onSave,
		work:       widget.NewEntry(),
		shortBreak: widget.NewEntry(),
		longBreak:  widget.NewEntry(),
		compact:    widget.NewCheck("Compact window (takes effect on restart)", nil),
		blink:      widget.NewCheck("Blink when a session ends", nil),
		notify:     widget.NewCheck("Desktop notification when a session ends", nil),
		message:    widget.NewLabel(""),
	}
	prefs.message.Importance = widget.DangerImportance
	prefs.message.Hide()
	prefs.fill(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Durations (minutes)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(2,
			widget.NewLabel("Work"), prefs.work,
			widget.NewLabel("Short break"), prefs.shortBreak,
			widget.NewLabel("Long break"), prefs.longBreak,
		),
		prefs.compact,
		prefs.blink,
		prefs.notify,
		prefs.message,
	)

	prefs.saveButton = widget.NewButton("Save", prefs.handleSave)
	prefs.saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
		if prefs.onCancel != nil {
			prefs.onCancel()
		}
	})
	buttons := container.NewHBox(prefs.saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 320))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// SetOnCancel sets the cancel handler.
func (prefs *Window) SetOnCancel(handler func()) {
	prefs.onCancel = handler
}

// Show displays the preferences window with the current values.
func (prefs *Window) Show() {
	prefs.fill(prefs.settings)
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.fill(settings)
}

// Message returns the inline validation message, empty when hidden.
func (prefs *Window) Message() string {
	if !prefs.message.Visible() {
		return ""
	}
	return prefs.message.Text
}

func (prefs *Window) fill(settings Settings) {
	prefs.work.SetText(minutesText(settings.WorkDuration.Minutes()))
	prefs.shortBreak.SetText(minutesText(settings.ShortBreakDuration.Minutes()))
	prefs.longBreak.SetText(minutesText(settings.LongBreakDuration.Minutes()))
	prefs.compact.SetChecked(settings.Compact)
	prefs.blink.SetChecked(settings.BlinkOnFinish)
	prefs.notify.SetChecked(settings.Notify)
	prefs.message.SetText("")
	prefs.message.Hide()
}

func (prefs *Window) handleSave() {
	durations, err := model.ParseDurations(prefs.work.Text, prefs.shortBreak.Text, prefs.longBreak.Text)
	if err != nil {
		prefs.showError(err)
		return
	}

	settings := prefs.settings.WithDurations(durations)
	settings.Compact = prefs.compact.Checked
	settings.BlinkOnFinish = prefs.blink.Checked
	settings.Notify = prefs.notify.Checked

	if prefs.onSave != nil {
		if err := prefs.onSave(settings); err != nil && errors.Is(err, model.ErrInvalidConfiguration) {
			prefs.showError(err)
			return
		}
	}

	prefs.settings = settings
	prefs.message.Hide()
	prefs.window.Hide()
}

func (prefs *Window) showError(err error) {
	prefs.message.SetText(fmt.Sprintf("Please enter whole minutes from 1 to %d (%v)", model.MaxMinutes, err))
	prefs.message.Show()
}

func minutesText(minutes float64) string {
	return fmt.Sprintf("%d", int(minutes))
}
