package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"timetabs/internal/ui/preferences"
)

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	settings, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", settingsFileName)
	settings := preferences.DefaultSettings()
	settings.StopwatchRefresh = 50 * time.Millisecond
	settings.AlarmCheck = 2 * time.Second
	settings.AlarmMessage = "Stand up"
	settings.BeepEnabled = false
	settings.OverlayOpacity = 0.6
	settings.LogLevel = "debug"

	require.NoError(t, SaveSettings(path, settings))

	loaded, err := LoadSettings(path)
	require.NoError(t, err)
	require.Equal(t, settings, loaded)
}

func TestLoadSettingsIgnoresInvalidValues(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), settingsFileName)
	content := []byte(`stopwatch_refresh_ms: -5
countdown_tick_ms: 0
alarm_check_ms: 250
countdown_tick_ms: 5
countdown_message: "   "
overlay_opacity: 3
log_level: shouty
notify_enabled: false
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	loaded, err := LoadSettings(path)
	require.NoError(t, err)

	defaults := preferences.DefaultSettings()
	require.Equal(t, defaults.StopwatchRefresh, loaded.StopwatchRefresh)
	require.Equal(t, 250*time.Millisecond, loaded.AlarmCheck)
	require.Equal(t, time.Second, loaded.ToolsConfig().Countdown.TickInterval)
	require.Equal(t, defaults.CountdownMessage, loaded.CountdownMessage)
	require.Equal(t, defaults.OverlayOpacity, loaded.OverlayOpacity)
	require.Equal(t, defaults.LogLevel, loaded.LogLevel)
	require.True(t, loaded.BeepEnabled)
	require.False(t, loaded.NotifyEnabled)
}

func TestLoadSettingsMalformedYaml(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("alarm_check_ms: [oops"), 0o600))

	settings, err := LoadSettings(path)
	require.ErrorContains(t, err, "parse settings yaml")
	require.Equal(t, preferences.DefaultSettings(), settings)
}
