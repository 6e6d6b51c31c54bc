package preferences

import (
	"testing"
	"time"

	"pomodoro/internal/core/model"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_SaveParsesMinutes(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var saved []Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) error {
		saved = append(saved, settings)
		return nil
	})
	prefs.Show()

	prefs.work.SetText("50")
	prefs.shortBreak.SetText("10")
	prefs.longBreak.SetText("30")
	prefs.blink.SetChecked(true)
	test.Tap(prefs.saveButton)

	require.Len(t, saved, 1)
	assert.Equal(t, 50*time.Minute, saved[0].WorkDuration)
	assert.Equal(t, 10*time.Minute, saved[0].ShortBreakDuration)
	assert.Equal(t, 30*time.Minute, saved[0].LongBreakDuration)
	assert.True(t, saved[0].BlinkOnFinish)
	assert.Empty(t, prefs.Message())
}

func TestWindow_InvalidInputShowsMessageAndAppliesNothing(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	calls := 0
	prefs := New(app, DefaultSettings(), func(Settings) error {
		calls++
		return nil
	})
	prefs.Show()

	for _, input := range []string{"abc", "0", "-5", "", "600479950316067", "1441"} {
		prefs.work.SetText("25")
		prefs.shortBreak.SetText(input)
		prefs.longBreak.SetText("15")
		test.Tap(prefs.saveButton)
		assert.NotEmpty(t, prefs.Message(), "input %q", input)
	}
	assert.Equal(t, 0, calls)
}

func TestWindow_RejectedByHandlerStaysOpen(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	prefs := New(app, DefaultSettings(), func(Settings) error {
		return model.ErrInvalidConfiguration
	})
	prefs.Show()
	test.Tap(prefs.saveButton)

	assert.NotEmpty(t, prefs.Message())
}

func TestWindow_ShowRefillsValues(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	prefs := New(app, DefaultSettings(), nil)
	prefs.work.SetText("99")
	prefs.Show()
	assert.Equal(t, "25", prefs.work.Text)

	updated := DefaultSettings()
	updated.LongBreakDuration = 20 * time.Minute
	prefs.UpdateSettings(updated)
	assert.Equal(t, "20", prefs.longBreak.Text)
}

func TestSettings_Durations(t *testing.T) {
	settings := DefaultSettings()
	assert.Equal(t, model.DefaultDurations(), settings.Durations())

	custom := model.Durations{Work: time.Minute, ShortBreak: 2 * time.Minute, LongBreak: 3 * time.Minute}
	assert.Equal(t, custom, settings.WithDurations(custom).Durations())
}
