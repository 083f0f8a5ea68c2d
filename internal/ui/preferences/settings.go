package preferences

import (
	"time"

	"timetabs/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	StopwatchRefresh time.Duration
	AlarmCheck       time.Duration

	CountdownMessage string
	AlarmMessage     string

	BeepEnabled    bool
	NotifyEnabled  bool
	OverlayOpacity float64

	LogLevel string
}

// Opacity bounds for the alert overlay.
const (
	MinOverlayOpacity = 0.5
	MaxOverlayOpacity = 1.0
)

// DefaultSettings returns default settings for timetabs.
func DefaultSettings() Settings {
	return Settings{
		StopwatchRefresh: model.DefaultRefreshInterval,
		AlarmCheck:       model.DefaultCheckInterval,
		CountdownMessage: model.DefaultCountdownMessage,
		AlarmMessage:     model.DefaultAlarmMessage,
		BeepEnabled:      true,
		NotifyEnabled:    true,
		OverlayOpacity:   0.85,
		LogLevel:         "info",
	}
}

// ToolsConfig converts settings to the timekeeper configuration. The
// countdown always ticks once per second.
func (settings Settings) ToolsConfig() model.ToolsConfig {
	return model.ToolsConfig{
		Stopwatch: model.StopwatchConfig{RefreshInterval: settings.StopwatchRefresh}.WithDefaults(),
		Countdown: model.CountdownConfig{
			TickInterval: model.DefaultTickInterval,
			Message:      settings.CountdownMessage,
		}.WithDefaults(),
		Alarm: model.AlarmConfig{
			CheckInterval: settings.AlarmCheck,
			Message:       settings.AlarmMessage,
		}.WithDefaults(),
	}
}

// OverlayAlpha converts OverlayOpacity to an 8-bit alpha value.
func (settings Settings) OverlayAlpha() uint8 {
	opacity := settings.OverlayOpacity
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return uint8(opacity * 255)
}
