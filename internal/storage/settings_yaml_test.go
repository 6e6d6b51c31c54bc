package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pomodoro/internal/ui/preferences"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadMissingFileReturnsDefaults(t *testing.T) {
	store := NewStore(t.TempDir())

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestStore_SaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "Pomodoro")
	store := NewStore(dir)

	settings := preferences.DefaultSettings()
	settings.WorkDuration = 50 * time.Minute
	settings.ShortBreakDuration = 10 * time.Minute
	settings.LongBreakDuration = 30 * time.Minute
	settings.Compact = true
	settings.BlinkOnFinish = true
	settings.Notify = false

	require.NoError(t, store.Save(settings))
	assert.FileExists(t, filepath.Join(dir, SettingsFileName))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestStore_LoadIgnoresNonPositiveDurations(t *testing.T) {
	dir := t.TempDir()
	content := "work_minutes: 0\nshort_break_minutes: -3\nlong_break_minutes: 20\ncompact: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFileName), []byte(content), 0o644))

	settings, err := NewStore(dir).Load()
	require.NoError(t, err)

	defaults := preferences.DefaultSettings()
	assert.Equal(t, defaults.WorkDuration, settings.WorkDuration)
	assert.Equal(t, defaults.ShortBreakDuration, settings.ShortBreakDuration)
	assert.Equal(t, 20*time.Minute, settings.LongBreakDuration)
	assert.True(t, settings.Compact)
	assert.True(t, settings.Notify)
}

func TestStore_LoadIgnoresOutOfRangeDurations(t *testing.T) {
	dir := t.TempDir()
	content := "work_minutes: 600479950316067\nshort_break_minutes: 1441\nlong_break_minutes: 1440\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFileName), []byte(content), 0o644))

	settings, err := NewStore(dir).Load()
	require.NoError(t, err)

	defaults := preferences.DefaultSettings()
	assert.Equal(t, defaults.WorkDuration, settings.WorkDuration)
	assert.Equal(t, defaults.ShortBreakDuration, settings.ShortBreakDuration)
	assert.Equal(t, 24*time.Hour, settings.LongBreakDuration)
	assert.NoError(t, settings.Durations().Validate())
}

func TestStore_LoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFileName), []byte("work_minutes: [oops"), 0o644))

	settings, err := NewStore(dir).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse settings yaml")
	assert.Equal(t, preferences.DefaultSettings(), settings)
}
