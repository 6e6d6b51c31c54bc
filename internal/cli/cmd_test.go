package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/journal"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/preferences"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)

func newTestApp() (*App, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &App{
		Out: out,
		Err: errOut,
		Now: func() time.Time { return fixedNow },
	}, out, errOut
}

func execute(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	root.SetArgs(args)
	return root.Execute()
}

func seedJournal(t *testing.T, dir string, entries ...journal.Entry) {
	t.Helper()
	db, err := journal.OpenDB(filepath.Join(dir, journal.FileName))
	require.NoError(t, err)
	defer db.Close()
	store := journal.NewStore(db)
	for _, entry := range entries {
		_, err := store.Record(context.Background(), entry)
		require.NoError(t, err)
	}
}

func TestRoot_RunsDesktopWithOverrides(t *testing.T) {
	dir := t.TempDir()
	app, _, _ := newTestApp()

	var got preferences.Settings
	app.RunDesktop = func(env *Env) error {
		got = env.Settings
		assert.Equal(t, dir, env.ConfigDir)
		return nil
	}

	require.NoError(t, execute(t, app, "--config-dir", dir, "--work", "50", "--long", "20"))
	assert.Equal(t, 50*time.Minute, got.WorkDuration)
	assert.Equal(t, 5*time.Minute, got.ShortBreakDuration)
	assert.Equal(t, 20*time.Minute, got.LongBreakDuration)
}

func TestRoot_RejectsNonPositiveOverride(t *testing.T) {
	app, _, _ := newTestApp()
	app.RunDesktop = func(*Env) error {
		t.Fatal("desktop must not start")
		return nil
	}

	err := execute(t, app, "--config-dir", t.TempDir(), "--short", "0")
	require.ErrorIs(t, err, model.ErrInvalidConfiguration)
}

func TestRoot_RejectsOverflowingOverride(t *testing.T) {
	app, _, _ := newTestApp()
	app.RunDesktop = func(*Env) error {
		t.Fatal("desktop must not start")
		return nil
	}

	for _, minutes := range []string{"600479950316067", "1441"} {
		err := execute(t, app, "--config-dir", t.TempDir(), "--work", minutes)
		require.ErrorIs(t, err, model.ErrInvalidConfiguration, "minutes %s", minutes)
	}
}

func TestRoot_LoadsStoredSettings(t *testing.T) {
	dir := t.TempDir()
	stored := preferences.DefaultSettings()
	stored.WorkDuration = 45 * time.Minute
	require.NoError(t, storage.NewStore(dir).Save(stored))

	app, _, _ := newTestApp()
	var got preferences.Settings
	app.RunTerminal = func(env *Env) error {
		got = env.Settings
		return nil
	}

	require.NoError(t, execute(t, app, "tui", "--config-dir", dir))
	assert.Equal(t, 45*time.Minute, got.WorkDuration)
}

func TestRoot_EnvServiceRecordsToJournal(t *testing.T) {
	dir := t.TempDir()
	app, _, _ := newTestApp()
	app.RunTerminal = func(env *Env) error {
		service, err := env.NewService()
		require.NoError(t, err)
		defer service.Close()

		service.Start()
		for i := 0; i <= 60; i++ {
			service.Tick(context.Background())
		}
		entries, err := env.Journal.ListSince(context.Background(), fixedNow.Add(-time.Hour))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, model.SessionWork, entries[0].Kind)
		return nil
	}

	require.NoError(t, execute(t, app, "tui", "--config-dir", dir, "--work", "1"))
}

func TestConfig_RequiresTerminal(t *testing.T) {
	app, _, _ := newTestApp()
	app.IsInteractive = func() bool { return false }

	err := execute(t, app, "config", "--config-dir", t.TempDir())
	require.ErrorIs(t, err, ErrNotInteractive)
}

func TestConfigShow_PrintsSettings(t *testing.T) {
	dir := t.TempDir()
	app, out, _ := newTestApp()

	require.NoError(t, execute(t, app, "config", "show", "--config-dir", dir))
	text := out.String()
	assert.Contains(t, text, "SETTINGS")
	assert.Contains(t, text, "25 min")
	assert.Contains(t, text, "15 min")
	assert.Contains(t, text, filepath.Join(dir, storage.SettingsFileName))
}

func TestConfigForm_Apply(t *testing.T) {
	base := preferences.DefaultSettings()
	values := newConfigForm(base)
	assert.Equal(t, "25", values.work)

	values.work = "30"
	values.blink = true
	settings, err := values.apply(base)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, settings.WorkDuration)
	assert.True(t, settings.BlinkOnFinish)

	values.long = "abc"
	_, err = values.apply(base)
	require.ErrorIs(t, err, model.ErrInvalidConfiguration)
	assert.Error(t, validateMinutes("-1"))
	assert.NoError(t, validateMinutes(" 5 "))
}

func TestStats_SummarizesPeriod(t *testing.T) {
	dir := t.TempDir()
	seedJournal(t, dir,
		journal.Entry{Kind: model.SessionWork, Planned: 25 * time.Minute, Cycle: 1, FinishedAt: fixedNow.Add(-2 * time.Hour)},
		journal.Entry{Kind: model.SessionShortBreak, Planned: 5 * time.Minute, Cycle: 1, FinishedAt: fixedNow.Add(-110 * time.Minute)},
		journal.Entry{Kind: model.SessionWork, Planned: 25 * time.Minute, Cycle: 2, FinishedAt: fixedNow.Add(-time.Hour)},
		journal.Entry{Kind: model.SessionWork, Planned: 25 * time.Minute, Cycle: 9, FinishedAt: fixedNow.AddDate(0, 0, -30)},
	)
	app, out, _ := newTestApp()

	require.NoError(t, execute(t, app, "stats", "--config-dir", dir, "--days", "1"))
	text := out.String()
	assert.Contains(t, text, "TODAY")
	assert.Regexp(t, `Work sessions\s+2`, text)
	assert.Regexp(t, `Short breaks\s+1`, text)
	assert.Contains(t, text, "50m")
}

func TestStats_RejectsNonPositiveDays(t *testing.T) {
	app, _, _ := newTestApp()
	err := execute(t, app, "stats", "--config-dir", t.TempDir(), "--days", "0")
	assert.Error(t, err)
}

func TestReport_WritesPDF(t *testing.T) {
	dir := t.TempDir()
	seedJournal(t, dir,
		journal.Entry{Kind: model.SessionWork, Planned: 25 * time.Minute, Cycle: 1, FinishedAt: fixedNow.Add(-time.Hour)},
	)
	app, out, _ := newTestApp()
	target := filepath.Join(dir, "report.pdf")

	require.NoError(t, execute(t, app, "report", "--config-dir", dir, "--out", target))
	assert.Contains(t, out.String(), "PDF report generated")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "1,234", count(1234))
	assert.Equal(t, "45m", hoursMinutes(45*time.Minute))
	assert.Equal(t, "2h 05m", hoursMinutes(125*time.Minute))
	assert.Equal(t,
		time.Date(2026, 3, 4, 0, 0, 0, 0, time.Local),
		periodStart(fixedNow, 7),
	)
}
