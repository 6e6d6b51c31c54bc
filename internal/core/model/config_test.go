package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurations_DefaultsAreValid(t *testing.T) {
	durations := DefaultDurations()
	require.NoError(t, durations.Validate())
	assert.Equal(t, 1500*time.Second, durations.Work)
	assert.Equal(t, 300*time.Second, durations.ShortBreak)
	assert.Equal(t, 900*time.Second, durations.LongBreak)
	assert.Equal(t, 900*time.Second, durations.Longest())
}

func TestDurations_ValidateRejectsNonPositive(t *testing.T) {
	cases := map[string]Durations{
		"zero work":      {Work: 0, ShortBreak: time.Minute, LongBreak: time.Minute},
		"negative short": {Work: time.Minute, ShortBreak: -time.Second, LongBreak: time.Minute},
		"zero long":      {Work: time.Minute, ShortBreak: time.Minute, LongBreak: 0},
		"fractional":     {Work: 1500 * time.Millisecond, ShortBreak: time.Minute, LongBreak: time.Minute},
	}
	for name, durations := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, durations.Validate(), ErrInvalidConfiguration)
		})
	}
}

func TestDurations_For(t *testing.T) {
	durations := Durations{Work: 3 * time.Second, ShortBreak: 2 * time.Second, LongBreak: 5 * time.Second}
	assert.Equal(t, 3*time.Second, durations.For(SessionWork))
	assert.Equal(t, 2*time.Second, durations.For(SessionShortBreak))
	assert.Equal(t, 5*time.Second, durations.For(SessionLongBreak))
}

func TestParseDurations(t *testing.T) {
	durations, err := ParseDurations("50", " 10 ", "30")
	require.NoError(t, err)
	assert.Equal(t, Durations{Work: 50 * time.Minute, ShortBreak: 10 * time.Minute, LongBreak: 30 * time.Minute}, durations)

	_, err = ParseDurations("abc", "5", "15")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = ParseDurations("25", "0", "15")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = ParseDurations("25", "5", "-1")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	for _, huge := range []string{"600479950316067", "9223372036854775807", "99999999999999999999", "1441"} {
		durations, err = ParseDurations(huge, "5", "15")
		assert.ErrorIs(t, err, ErrInvalidConfiguration, "input %q", huge)
		assert.Equal(t, Durations{}, durations)
	}

	durations, err = ParseDurations("1440", "5", "15")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, durations.Work)
}

func TestMinutes_RejectsOutOfRange(t *testing.T) {
	_, err := Minutes(0)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = Minutes(MaxMinutes + 1)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = Minutes(600479950316067)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	value, err := Minutes(MaxMinutes)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, value)
}

func TestDurations_ValidateRejectsLongerThanADay(t *testing.T) {
	durations := DefaultDurations()
	durations.LongBreak = 24*time.Hour + time.Second
	assert.ErrorIs(t, durations.Validate(), ErrInvalidConfiguration)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "25:00", FormatClock(25*time.Minute))
	assert.Equal(t, "00:59", FormatClock(59*time.Second))
	assert.Equal(t, "00:00", FormatClock(-time.Second))
	assert.Equal(t, "61:01", FormatClock(61*time.Minute+time.Second))
}

func TestSessionKind_Label(t *testing.T) {
	assert.Equal(t, "Work", SessionWork.Label())
	assert.Equal(t, "Break", SessionShortBreak.Label())
	assert.Equal(t, "Long Break", SessionLongBreak.Label())
	assert.True(t, SessionLongBreak.IsBreak())
	assert.False(t, SessionWork.IsBreak())
}
