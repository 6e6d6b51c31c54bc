package app

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=app

import (
	"context"

	"pomodoro/internal/journal"
	"pomodoro/internal/ui/preferences"
)

// Journal records finished sessions.
type Journal interface {
	Record(ctx context.Context, entry journal.Entry) (journal.Entry, error)
}

// SettingsStore persists user preferences.
type SettingsStore interface {
	Save(settings preferences.Settings) error
}
