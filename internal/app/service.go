// Package app connects the session clock to persistence for every presenter.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/sessionclock"
	"pomodoro/internal/journal"
	"pomodoro/internal/logging"
	"pomodoro/internal/ui/preferences"

	"github.com/rs/zerolog"
)

// Options configures a Service. Journal and Settings may be nil.
type Options struct {
	Journal  Journal
	Settings SettingsStore
	Logger   zerolog.Logger
	Now      func() time.Time
}

// Service owns the single session clock of the process.
type Service struct {
	clock    *sessionclock.Clock
	journal  Journal
	store    SettingsStore
	logger   zerolog.Logger
	now      func() time.Time
	mu       sync.Mutex
	settings preferences.Settings
}

// New creates a Service around a fresh clock built from settings.
func New(settings preferences.Settings, options Options) (*Service, error) {
	clock, err := sessionclock.New(settings.Durations())
	if err != nil {
		return nil, fmt.Errorf("create session clock: %w", err)
	}
	now := options.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		clock:    clock,
		journal:  options.Journal,
		store:    options.Settings,
		logger:   logging.Component(options.Logger, "session"),
		now:      now,
		settings: settings,
	}, nil
}

// Clock exposes the underlying state machine for subscriptions and snapshots.
func (service *Service) Clock() *sessionclock.Clock {
	return service.clock
}

// Snapshot returns the current clock state.
func (service *Service) Snapshot() sessionclock.State {
	return service.clock.Snapshot()
}

// Settings returns the active preferences.
func (service *Service) Settings() preferences.Settings {
	service.mu.Lock()
	defer service.mu.Unlock()
	return service.settings
}

// Start begins counting down. It returns false when already running.
func (service *Service) Start() bool {
	started := service.clock.Start()
	if started {
		service.logState("started")
	}
	return started
}

// Pause stops counting down. It returns false when already paused.
func (service *Service) Pause() bool {
	paused := service.clock.Pause()
	if paused {
		service.logState("paused")
	}
	return paused
}

// Toggle starts or pauses and returns whether the clock now runs.
func (service *Service) Toggle() bool {
	running := service.clock.Toggle()
	if running {
		service.logState("started")
	} else {
		service.logState("paused")
	}
	return running
}

// Reset returns to a full work session.
func (service *Service) Reset() {
	service.clock.Reset()
	service.logState("reset")
}

// ResetCount clears the completed session counter.
func (service *Service) ResetCount() {
	service.clock.ResetCount()
	service.logState("counter reset")
}

// Tick advances the clock and records a finished session in the journal.
func (service *Service) Tick(ctx context.Context) sessionclock.Outcome {
	outcome, transition := service.clock.TickTransition()
	if outcome != sessionclock.OutcomeFinished {
		return outcome
	}

	service.logger.Info().
		Str("finished", string(transition.Finished)).
		Str("next", string(transition.Next)).
		Int("completed", transition.Completed).
		Msg("session finished")

	if service.journal != nil {
		entry := journal.Entry{
			Kind:       transition.Finished,
			Planned:    transition.Planned,
			Cycle:      transition.Completed,
			FinishedAt: service.now(),
		}
		if _, err := service.journal.Record(ctx, entry); err != nil {
			service.logger.Error().Err(err).Msg("record finished session")
		}
	}
	return outcome
}

// UpdateConfiguration applies new durations and preferences.
// Invalid durations leave both the clock and the stored settings untouched.
func (service *Service) UpdateConfiguration(settings preferences.Settings) error {
	if err := service.clock.UpdateConfiguration(settings.Durations()); err != nil {
		service.logger.Warn().Err(err).Msg("configuration rejected")
		return err
	}

	service.mu.Lock()
	service.settings = settings
	service.mu.Unlock()

	service.logger.Info().
		Dur("work", settings.WorkDuration).
		Dur("short_break", settings.ShortBreakDuration).
		Dur("long_break", settings.LongBreakDuration).
		Msg("configuration updated")

	if service.store == nil {
		return nil
	}
	if err := service.store.Save(settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// ProgressText renders the cycle counter.
func (service *Service) ProgressText() string {
	return service.clock.ProgressText()
}

// Close releases clock subscribers.
func (service *Service) Close() {
	service.clock.Close()
}

func (service *Service) logState(action string) {
	state := service.clock.Snapshot()
	service.logger.Debug().
		Str("kind", string(state.Kind)).
		Str("remaining", model.FormatClock(state.Remaining)).
		Int("completed", state.Completed).
		Msg(action)
}
