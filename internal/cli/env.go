package cli

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"pomodoro/internal/app"
	"pomodoro/internal/core/model"
	"pomodoro/internal/journal"
	"pomodoro/internal/logging"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/preferences"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Env carries everything a command needs for one run.
type Env struct {
	ConfigDir string
	// Settings are the stored settings with command line overrides applied.
	Settings preferences.Settings
	Store    *storage.Store
	Journal  *journal.Store
	Logger   zerolog.Logger
	Now      func() time.Time
	Out      io.Writer

	db *sql.DB
}

// NewService builds the session service for a presenter.
func (env *Env) NewService() (*app.Service, error) {
	return app.New(env.Settings, app.Options{
		Journal:  env.Journal,
		Settings: env.Store,
		Logger:   env.Logger,
		Now:      env.Now,
	})
}

// Close releases the journal database.
func (env *Env) Close() error {
	if env.db == nil {
		return nil
	}
	return env.db.Close()
}

func openEnv(cmd *cobra.Command, application *App, options *rootOptions) (*Env, error) {
	errOut := application.Err
	if errOut == nil {
		errOut = os.Stderr
	}
	logger := logging.New(logging.Options{Out: errOut, Debug: options.debug})

	configDir := options.configDir
	if configDir == "" {
		dir, err := platform.ConfigDir(AppName)
		if err != nil {
			return nil, fmt.Errorf("finding config directory: %w", err)
		}
		configDir = dir
	}

	store := storage.NewStore(configDir)
	settings, err := store.Load()
	if err != nil {
		logger.Warn().Err(err).Str("path", store.Path()).Msg("settings unreadable, using defaults")
		settings = preferences.DefaultSettings()
	}
	settings, err = applyOverrides(cmd, options, settings)
	if err != nil {
		return nil, err
	}

	db, err := journal.OpenDB(filepath.Join(configDir, journal.FileName))
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}

	logger.Debug().Str("config_dir", configDir).Msg("environment ready")
	return &Env{
		ConfigDir: configDir,
		Settings:  settings,
		Store:     store,
		Journal:   journal.NewStore(db),
		Logger:    logger,
		Now:       application.Now,
		Out:       cmd.OutOrStdout(),
		db:        db,
	}, nil
}

func applyOverrides(cmd *cobra.Command, options *rootOptions, settings preferences.Settings) (preferences.Settings, error) {
	flags := cmd.Flags()
	overrides := []struct {
		name    string
		minutes int
		target  *time.Duration
	}{
		{"work", options.work, &settings.WorkDuration},
		{"short", options.short, &settings.ShortBreakDuration},
		{"long", options.long, &settings.LongBreakDuration},
	}
	for _, override := range overrides {
		if err := overrideMinutes(flags, override.name, override.minutes, override.target); err != nil {
			return settings, err
		}
	}
	if err := settings.Durations().Validate(); err != nil {
		return settings, fmt.Errorf("duration flags: %w", err)
	}
	return settings, nil
}

// overrideMinutes replaces target only when the flag was given explicitly.
func overrideMinutes(flags *pflag.FlagSet, name string, minutes int, target *time.Duration) error {
	if !flags.Changed(name) {
		return nil
	}
	value, err := model.Minutes(minutes)
	if err != nil {
		return fmt.Errorf("--%s: %w", name, err)
	}
	*target = value
	return nil
}
