// Package ticker provides a cancellable, self-rescheduling timer chain.
//
// Each callback is scheduled only after the previous one returned, so calls
// of one chain never overlap. Disarm guarantees that no callback of the
// disarmed chain runs afterwards, even if its timer already fired.
package ticker

import (
	"sync"
	"time"
)

// Stopper cancels a pending callback.
type Stopper interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Stopper
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(d time.Duration, f func()) Stopper

// AfterFunc implements Scheduler.
func (fn SchedulerFunc) AfterFunc(d time.Duration, f func()) Stopper {
	return fn(d, f)
}

// RealScheduler schedules on the runtime timer.
var RealScheduler Scheduler = SchedulerFunc(func(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
})

// Ticker repeatedly invokes a callback every interval while armed.
type Ticker struct {
	mu         sync.Mutex
	interval   time.Duration
	scheduler  Scheduler
	generation uint64
	pending    Stopper
	armed      bool
}

// New creates a disarmed Ticker.
func New(interval time.Duration, scheduler Scheduler) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	if scheduler == nil {
		scheduler = RealScheduler
	}
	return &Ticker{interval: interval, scheduler: scheduler}
}

// Arm starts a new chain. fn returns true to schedule the next call.
// Any previous chain is cancelled first.
func (ticker *Ticker) Arm(fn func() bool) {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	ticker.cancelLocked()
	ticker.armed = true
	ticker.scheduleLocked(ticker.generation, fn)
}

// Disarm cancels the active chain.
func (ticker *Ticker) Disarm() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	ticker.cancelLocked()
}

// Armed reports whether a chain is active.
func (ticker *Ticker) Armed() bool {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	return ticker.armed
}

func (ticker *Ticker) scheduleLocked(generation uint64, fn func() bool) {
	ticker.pending = ticker.scheduler.AfterFunc(ticker.interval, func() {
		ticker.fire(generation, fn)
	})
}

func (ticker *Ticker) fire(generation uint64, fn func() bool) {
	ticker.mu.Lock()
	if generation != ticker.generation || !ticker.armed {
		ticker.mu.Unlock()
		return
	}
	ticker.pending = nil
	ticker.mu.Unlock()

	again := fn()

	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	if generation != ticker.generation || !ticker.armed {
		return
	}
	if !again {
		ticker.armed = false
		return
	}
	ticker.scheduleLocked(generation, fn)
}

func (ticker *Ticker) cancelLocked() {
	ticker.generation++
	ticker.armed = false
	if ticker.pending != nil {
		ticker.pending.Stop()
		ticker.pending = nil
	}
}
