package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"timetabs/internal/logger"
	"timetabs/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	StopwatchRefreshMillis int     `yaml:"stopwatch_refresh_ms"`
	AlarmCheckMillis       int     `yaml:"alarm_check_ms"`
	CountdownMessage       string  `yaml:"countdown_message"`
	AlarmMessage           string  `yaml:"alarm_message"`
	BeepEnabled            *bool   `yaml:"beep_enabled"`
	NotifyEnabled          *bool   `yaml:"notify_enabled"`
	OverlayOpacity         float64 `yaml:"overlay_opacity"`
	LogLevel               string  `yaml:"log_level"`
}

// DefaultPath returns settings.yaml inside the user config directory.
func DefaultPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads user preferences from the YAML file at path.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(filepath.Clean(path))
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

// SaveSettings writes user preferences to the YAML file at path.
func SaveSettings(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		StopwatchRefreshMillis: int(settings.StopwatchRefresh / time.Millisecond),
		AlarmCheckMillis:       int(settings.AlarmCheck / time.Millisecond),
		CountdownMessage:       settings.CountdownMessage,
		AlarmMessage:           settings.AlarmMessage,
		BeepEnabled:            &settings.BeepEnabled,
		NotifyEnabled:          &settings.NotifyEnabled,
		OverlayOpacity:         settings.OverlayOpacity,
		LogLevel:               settings.LogLevel,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.StopwatchRefreshMillis > 0 {
		settings.StopwatchRefresh = time.Duration(fileData.StopwatchRefreshMillis) * time.Millisecond
	}
	if fileData.AlarmCheckMillis > 0 {
		settings.AlarmCheck = time.Duration(fileData.AlarmCheckMillis) * time.Millisecond
	}
	if message := strings.TrimSpace(fileData.CountdownMessage); message != "" {
		settings.CountdownMessage = message
	}
	if message := strings.TrimSpace(fileData.AlarmMessage); message != "" {
		settings.AlarmMessage = message
	}
	if fileData.BeepEnabled != nil {
		settings.BeepEnabled = *fileData.BeepEnabled
	}
	if fileData.NotifyEnabled != nil {
		settings.NotifyEnabled = *fileData.NotifyEnabled
	}

	if fileData.OverlayOpacity >= preferences.MinOverlayOpacity && fileData.OverlayOpacity <= preferences.MaxOverlayOpacity {
		settings.OverlayOpacity = fileData.OverlayOpacity
	}

	if fileData.LogLevel != "" {
		if _, ok := logger.ParseLogLevel(fileData.LogLevel); ok {
			settings.LogLevel = strings.ToLower(strings.TrimSpace(fileData.LogLevel))
		}
	}
}
