package sessionclock

import (
	"time"

	"pomodoro/internal/core/model"
)

// EventType defines the type of SessionClock event.
type EventType string

const (
	EventTick            EventType = "tick"
	EventSessionFinished EventType = "session_finished"
	EventStateChange     EventType = "state_change"
)

// Event represents a SessionClock update for presenters.
type Event struct {
	Type      EventType
	Kind      model.SessionKind
	Finished  model.SessionKind
	Remaining time.Duration
	Completed int
	Running   bool
	At        time.Time
}

// Outcome reports what a single Tick did.
type Outcome int

const (
	// OutcomeIgnored means the clock was not running.
	OutcomeIgnored Outcome = iota
	// OutcomeTicked means one second elapsed and the next tick should be scheduled.
	OutcomeTicked
	// OutcomeFinished means the session ended and the clock stopped.
	OutcomeFinished
)

// Reschedule reports whether the host scheduler should arm another tick.
func (outcome Outcome) Reschedule() bool {
	return outcome == OutcomeTicked
}

// Transition describes the session a finishing tick ended and what follows it.
// It is captured under the same lock as the tick.
type Transition struct {
	Finished  model.SessionKind
	Planned   time.Duration
	Next      model.SessionKind
	Completed int
}

// State is a copy of the observable clock state.
type State struct {
	Kind      model.SessionKind
	Remaining time.Duration
	Completed int
	Running   bool
	Durations model.Durations
}
