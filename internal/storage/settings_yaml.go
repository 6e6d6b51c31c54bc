package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

// SettingsFileName is the settings file inside the application config directory.
const SettingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkMinutes       int   `yaml:"work_minutes"`
	ShortBreakMinutes int   `yaml:"short_break_minutes"`
	LongBreakMinutes  int   `yaml:"long_break_minutes"`
	Compact           bool  `yaml:"compact"`
	BlinkOnFinish     bool  `yaml:"blink_on_finish"`
	Notify            *bool `yaml:"notify,omitempty"`
}

// Store reads and writes user preferences as YAML.
type Store struct {
	path string
}

// NewStore returns a store for the settings file in configDir.
func NewStore(configDir string) *Store {
	return &Store{path: filepath.Join(configDir, SettingsFileName)}
}

// Path returns the settings file location.
func (store *Store) Path() string {
	return store.path
}

// Load reads user preferences.
// If the file does not exist, default settings are returned.
func (store *Store) Load() (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// Save writes user preferences.
func (store *Store) Save(settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	notify := settings.Notify
	fileData := yamlSettings{
		WorkMinutes:       int(settings.WorkDuration / time.Minute),
		ShortBreakMinutes: int(settings.ShortBreakDuration / time.Minute),
		LongBreakMinutes:  int(settings.LongBreakDuration / time.Minute),
		Compact:           settings.Compact,
		BlinkOnFinish:     settings.BlinkOnFinish,
		Notify:            &notify,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	applyMinutes(&settings.WorkDuration, fileData.WorkMinutes)
	applyMinutes(&settings.ShortBreakDuration, fileData.ShortBreakMinutes)
	applyMinutes(&settings.LongBreakDuration, fileData.LongBreakMinutes)
	if fileData.Notify != nil {
		settings.Notify = *fileData.Notify
	}

	settings.Compact = fileData.Compact
	settings.BlinkOnFinish = fileData.BlinkOnFinish
}

// applyMinutes keeps the default when the stored value is out of range.
func applyMinutes(target *time.Duration, minutes int) {
	if value, err := model.Minutes(minutes); err == nil {
		*target = value
	}
}
