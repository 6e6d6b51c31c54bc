package model

import (
	"errors"
	"fmt"
	"time"
)

// LongBreakEvery is the number of completed work sessions between long breaks.
const LongBreakEvery = 4

// MaxMinutes caps a single session at one day.
const MaxMinutes = 24 * 60

// ErrInvalidConfiguration indicates a session duration that is not a whole positive number of seconds.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// SessionKind identifies the countdown currently shown.
type SessionKind string

const (
	SessionWork       SessionKind = "work"
	SessionShortBreak SessionKind = "short_break"
	SessionLongBreak  SessionKind = "long_break"
)

// Label returns the human readable session name.
func (kind SessionKind) Label() string {
	switch kind {
	case SessionWork:
		return "Work"
	case SessionShortBreak:
		return "Break"
	case SessionLongBreak:
		return "Long Break"
	default:
		return string(kind)
	}
}

// IsBreak reports whether the kind is a rest period.
func (kind SessionKind) IsBreak() bool {
	return kind == SessionShortBreak || kind == SessionLongBreak
}

// Durations holds the configured length of every session kind.
type Durations struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
}

// DefaultDurations returns the classic 25/5/15 minute schedule.
func DefaultDurations() Durations {
	return Durations{
		Work:       25 * time.Minute,
		ShortBreak: 5 * time.Minute,
		LongBreak:  15 * time.Minute,
	}
}

// Validate checks that all durations are whole positive seconds no longer than MaxMinutes.
func (durations Durations) Validate() error {
	if err := validateDuration("work", durations.Work); err != nil {
		return err
	}
	if err := validateDuration("short break", durations.ShortBreak); err != nil {
		return err
	}
	return validateDuration("long break", durations.LongBreak)
}

// For returns the configured duration of the given kind.
func (durations Durations) For(kind SessionKind) time.Duration {
	switch kind {
	case SessionShortBreak:
		return durations.ShortBreak
	case SessionLongBreak:
		return durations.LongBreak
	default:
		return durations.Work
	}
}

// Longest returns the maximum configured duration.
func (durations Durations) Longest() time.Duration {
	longest := durations.Work
	if durations.ShortBreak > longest {
		longest = durations.ShortBreak
	}
	if durations.LongBreak > longest {
		longest = durations.LongBreak
	}
	return longest
}

func validateDuration(name string, value time.Duration) error {
	if value <= 0 {
		return fmt.Errorf("%s duration must be positive, got %s: %w", name, value, ErrInvalidConfiguration)
	}
	if value > MaxMinutes*time.Minute {
		return fmt.Errorf("%s duration must be at most %d minutes, got %s: %w", name, MaxMinutes, value, ErrInvalidConfiguration)
	}
	if value%time.Second != 0 {
		return fmt.Errorf("%s duration must be whole seconds, got %s: %w", name, value, ErrInvalidConfiguration)
	}
	return nil
}
