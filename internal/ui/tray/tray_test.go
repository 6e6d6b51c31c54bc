package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_StatusReflectsRunning(t *testing.T) {
	manager := New(nil, Callbacks{})
	assert.Equal(t, "ready (paused)", manager.Status())

	manager.SetRunning(true)
	manager.SetStatus("Work 24:59 · 0/4")
	assert.Equal(t, "Work 24:59 · 0/4", manager.Status())

	manager.SetRunning(false)
	assert.Equal(t, "Work 24:59 · 0/4 (paused)", manager.Status())
}

func TestManager_MenuInvokesCallbacks(t *testing.T) {
	var calls []string
	manager := New(nil, Callbacks{
		OnToggle:     func() { calls = append(calls, "toggle") },
		OnReset:      func() { calls = append(calls, "reset") },
		OnResetCount: func() { calls = append(calls, "count") },
		OnQuit:       func() { calls = append(calls, "quit") },
	})

	menu := manager.Menu()
	byLabel := map[string]func(){}
	for _, item := range menu.Items {
		if item.Action != nil {
			byLabel[item.Label] = item.Action
		}
	}

	require.Contains(t, byLabel, "Start")
	byLabel["Start"]()
	byLabel["Reset"]()
	byLabel["Reset counter"]()
	byLabel["Quit"]()
	// Missing callbacks are ignored.
	byLabel["Settings"]()

	assert.Equal(t, []string{"toggle", "reset", "count", "quit"}, calls)

	manager.SetRunning(true)
	labels := []string{}
	for _, item := range manager.Menu().Items {
		labels = append(labels, item.Label)
	}
	assert.Contains(t, labels, "Pause")
}
