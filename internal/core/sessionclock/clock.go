package sessionclock

import (
	"fmt"
	"sync"
	"time"

	"pomodoro/internal/core/model"
)

// Clock is the Pomodoro state machine. It never schedules anything itself;
// the host calls Tick once per elapsed second while running.
type Clock struct {
	mu               sync.Mutex
	durations        model.Durations
	kind             model.SessionKind
	remainingSeconds int
	completed        int
	running          bool
	events           []chan Event
	now              func() time.Time
}

// New creates a stopped Clock at the start of a work session.
func New(durations model.Durations) (*Clock, error) {
	if err := durations.Validate(); err != nil {
		return nil, err
	}
	clock := &Clock{
		durations: durations,
		now:       time.Now,
	}
	clock.resetLocked()
	return clock, nil
}

// Subscribe registers a new observer channel.
func (clock *Clock) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	clock.mu.Lock()
	clock.events = append(clock.events, ch)
	clock.mu.Unlock()
	return ch
}

// Close closes every observer channel.
func (clock *Clock) Close() {
	clock.mu.Lock()
	events := clock.events
	clock.events = nil
	clock.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Start marks the clock running. It returns false if it already was.
func (clock *Clock) Start() bool {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	if clock.running {
		return false
	}
	clock.running = true
	clock.emitStateLocked()
	return true
}

// Pause stops automatic ticking. It returns false if the clock was not running.
func (clock *Clock) Pause() bool {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	if !clock.running {
		return false
	}
	clock.running = false
	clock.emitStateLocked()
	return true
}

// Toggle starts a stopped clock or pauses a running one and returns the new running flag.
func (clock *Clock) Toggle() bool {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.running = !clock.running
	clock.emitStateLocked()
	return clock.running
}

// Reset stops the clock and rewinds to a full work session.
// The completed counter is left untouched.
func (clock *Clock) Reset() {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.resetLocked()
	clock.emitStateLocked()
}

// ResetCount clears the completed work session counter.
func (clock *Clock) ResetCount() {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.completed = 0
	clock.emitStateLocked()
}

// UpdateConfiguration replaces all durations at once and resets the clock.
// Invalid input leaves the previous configuration in place.
func (clock *Clock) UpdateConfiguration(durations model.Durations) error {
	if err := durations.Validate(); err != nil {
		return fmt.Errorf("update configuration: %w", err)
	}
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.durations = durations
	clock.resetLocked()
	clock.emitStateLocked()
	return nil
}

// Tick advances the countdown by one second.
func (clock *Clock) Tick() Outcome {
	outcome, _ := clock.TickTransition()
	return outcome
}

// TickTransition is Tick that also reports the transition when the tick
// finished a session. The Transition is zero for other outcomes.
func (clock *Clock) TickTransition() (Outcome, Transition) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	if !clock.running {
		return OutcomeIgnored, Transition{}
	}

	if clock.remainingSeconds > 0 {
		clock.remainingSeconds--
		clock.emitLocked(Event{
			Type:      EventTick,
			Kind:      clock.kind,
			Remaining: clock.remainingLocked(),
			Completed: clock.completed,
			Running:   true,
			At:        clock.now(),
		})
		return OutcomeTicked, Transition{}
	}

	return OutcomeFinished, clock.finishLocked()
}

// Snapshot returns the current observable state.
func (clock *Clock) Snapshot() State {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return State{
		Kind:      clock.kind,
		Remaining: clock.remainingLocked(),
		Completed: clock.completed,
		Running:   clock.running,
		Durations: clock.durations,
	}
}

// Progress returns the position within the current cycle of four work sessions.
// A full cycle shows as 0/4 again.
func (clock *Clock) Progress() (int, int) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.completed % model.LongBreakEvery, model.LongBreakEvery
}

// ProgressText renders Progress as "n/4".
func (clock *Clock) ProgressText() string {
	numerator, denominator := clock.Progress()
	return fmt.Sprintf("%d/%d", numerator, denominator)
}

func (clock *Clock) finishLocked() Transition {
	finished := clock.kind
	planned := clock.durations.For(finished)
	if finished == model.SessionWork {
		clock.completed++
		if clock.completed%model.LongBreakEvery == 0 {
			clock.kind = model.SessionLongBreak
		} else {
			clock.kind = model.SessionShortBreak
		}
	} else {
		clock.kind = model.SessionWork
	}
	clock.remainingSeconds = seconds(clock.durations.For(clock.kind))
	clock.running = false

	clock.emitLocked(Event{
		Type:      EventSessionFinished,
		Kind:      clock.kind,
		Finished:  finished,
		Remaining: clock.remainingLocked(),
		Completed: clock.completed,
		At:        clock.now(),
	})
	return Transition{
		Finished:  finished,
		Planned:   planned,
		Next:      clock.kind,
		Completed: clock.completed,
	}
}

func (clock *Clock) resetLocked() {
	clock.running = false
	clock.kind = model.SessionWork
	clock.remainingSeconds = seconds(clock.durations.Work)
}

func (clock *Clock) remainingLocked() time.Duration {
	return time.Duration(clock.remainingSeconds) * time.Second
}

func (clock *Clock) emitStateLocked() {
	clock.emitLocked(Event{
		Type:      EventStateChange,
		Kind:      clock.kind,
		Remaining: clock.remainingLocked(),
		Completed: clock.completed,
		Running:   clock.running,
		At:        clock.now(),
	})
}

func (clock *Clock) emitLocked(event Event) {
	for _, ch := range clock.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func seconds(value time.Duration) int {
	return int(value / time.Second)
}
