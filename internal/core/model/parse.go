package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseMinutes converts user input such as "25" into a duration.
// Non-numeric values and values outside 1..MaxMinutes are rejected with ErrInvalidConfiguration.
func ParseMinutes(value string) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	minutes, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", trimmed, ErrInvalidConfiguration)
	}
	return Minutes(minutes)
}

// Minutes converts a whole number of minutes into a duration.
// The range check runs before multiplying so large values cannot wrap.
func Minutes(minutes int) (time.Duration, error) {
	if minutes <= 0 {
		return 0, fmt.Errorf("%d must be positive: %w", minutes, ErrInvalidConfiguration)
	}
	if minutes > MaxMinutes {
		return 0, fmt.Errorf("%d exceeds %d minutes: %w", minutes, MaxMinutes, ErrInvalidConfiguration)
	}
	return time.Duration(minutes) * time.Minute, nil
}

// ParseDurations parses the three minute fields of a settings form.
// Either all three are valid or nothing is returned.
func ParseDurations(work, shortBreak, longBreak string) (Durations, error) {
	workDuration, err := ParseMinutes(work)
	if err != nil {
		return Durations{}, fmt.Errorf("work: %w", err)
	}
	shortDuration, err := ParseMinutes(shortBreak)
	if err != nil {
		return Durations{}, fmt.Errorf("short break: %w", err)
	}
	longDuration, err := ParseMinutes(longBreak)
	if err != nil {
		return Durations{}, fmt.Errorf("long break: %w", err)
	}
	return Durations{Work: workDuration, ShortBreak: shortDuration, LongBreak: longDuration}, nil
}

// FormatClock renders a duration as MM:SS.
func FormatClock(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	seconds := int(value / time.Second)
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
