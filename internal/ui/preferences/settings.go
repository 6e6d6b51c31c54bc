package preferences

import (
	"time"

	"pomodoro/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	WorkDuration       time.Duration
	ShortBreakDuration time.Duration
	LongBreakDuration  time.Duration

	Compact       bool
	BlinkOnFinish bool
	Notify        bool
}

// DefaultSettings returns default settings for the timer.
func DefaultSettings() Settings {
	defaults := model.DefaultDurations()
	return Settings{
		WorkDuration:       defaults.Work,
		ShortBreakDuration: defaults.ShortBreak,
		LongBreakDuration:  defaults.LongBreak,
		Compact:            false,
		BlinkOnFinish:      false,
		Notify:             true,
	}
}

// Durations converts settings to the clock configuration.
func (settings Settings) Durations() model.Durations {
	return model.Durations{
		Work:       settings.WorkDuration,
		ShortBreak: settings.ShortBreakDuration,
		LongBreak:  settings.LongBreakDuration,
	}
}

// WithDurations returns a copy using the given session lengths.
func (settings Settings) WithDurations(durations model.Durations) Settings {
	settings.WorkDuration = durations.Work
	settings.ShortBreakDuration = durations.ShortBreak
	settings.LongBreakDuration = durations.LongBreak
	return settings
}
