package animation

import (
	"context"
	"image/color"
	"sync"
	"time"
)

// Config contains alert blink timing values.
type Config struct {
	Interval  time.Duration
	Highlight color.Color
	Normal    color.Color
	// MaxDuration stops blinking on its own when positive.
	MaxDuration time.Duration
}

// Engine runs the alert-mode blink until cancelled.
type Engine struct {
	mu     sync.Mutex
	config Config
	paint  func(color.Color)
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a new animation engine. paint is called from the engine goroutine.
func New(config Config, paint func(color.Color)) *Engine {
	if config.Interval <= 0 {
		config.Interval = DefaultConfig().Interval
	}
	return &Engine{
		config: config,
		paint:  paint,
	}
}

// StartAlert begins alternating between the highlight and normal colors.
// A running alert is replaced.
func (engine *Engine) StartAlert(ctx context.Context) {
	engine.mu.Lock()
	engine.stopLocked()
	var runCtx context.Context
	var cancel context.CancelFunc
	if engine.config.MaxDuration > 0 {
		runCtx, cancel = context.WithTimeout(ctx, engine.config.MaxDuration)
	} else {
		runCtx, cancel = context.WithCancel(ctx)
	}
	done := make(chan struct{})
	engine.cancel = cancel
	engine.done = done
	engine.mu.Unlock()

	go engine.run(runCtx, done)
}

// Stop terminates any active alert and restores the normal color.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	done := engine.done
	engine.stopLocked()
	engine.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Active reports whether an alert is blinking.
func (engine *Engine) Active() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.done == nil {
		return false
	}
	select {
	case <-engine.done:
		return false
	default:
		return true
	}
}

func (engine *Engine) stopLocked() {
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
	engine.done = nil
}

func (engine *Engine) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer engine.paint(engine.config.Normal)

	highlight := true
	for {
		if highlight {
			engine.paint(engine.config.Highlight)
		} else {
			engine.paint(engine.config.Normal)
		}
		highlight = !highlight
		if !sleepWithContext(ctx, engine.config.Interval) {
			return
		}
	}
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
