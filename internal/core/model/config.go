package model

import "time"

// StopwatchConfig controls the stopwatch refresh rate.
type StopwatchConfig struct {
	RefreshInterval time.Duration
}

// CountdownConfig controls the countdown tick and the alert it raises.
type CountdownConfig struct {
	TickInterval time.Duration
	Message      string
}

// AlarmConfig controls how often the alarm compares the clock with its target.
type AlarmConfig struct {
	CheckInterval time.Duration
	Message       string
}

// ToolsConfig contains runtime settings for the three timekeeper tools.
type ToolsConfig struct {
	Stopwatch StopwatchConfig
	Countdown CountdownConfig
	Alarm     AlarmConfig
}

// Default intervals and messages.
const (
	DefaultRefreshInterval = 10 * time.Millisecond
	DefaultTickInterval    = time.Second
	DefaultCheckInterval   = time.Second

	DefaultCountdownMessage = "Time's up!"
	DefaultAlarmMessage     = "Wake up!"
)

// DefaultToolsConfig returns the standard intervals and alert messages.
func DefaultToolsConfig() ToolsConfig {
	return ToolsConfig{
		Stopwatch: StopwatchConfig{RefreshInterval: DefaultRefreshInterval},
		Countdown: CountdownConfig{TickInterval: DefaultTickInterval, Message: DefaultCountdownMessage},
		Alarm:     AlarmConfig{CheckInterval: DefaultCheckInterval, Message: DefaultAlarmMessage},
	}
}

// WithDefaults fills zero or negative fields.
func (config StopwatchConfig) WithDefaults() StopwatchConfig {
	if config.RefreshInterval <= 0 {
		config.RefreshInterval = DefaultRefreshInterval
	}
	return config
}

// WithDefaults fills zero or negative fields.
func (config CountdownConfig) WithDefaults() CountdownConfig {
	if config.TickInterval <= 0 {
		config.TickInterval = DefaultTickInterval
	}
	if config.Message == "" {
		config.Message = DefaultCountdownMessage
	}
	return config
}

// WithDefaults fills zero or negative fields.
func (config AlarmConfig) WithDefaults() AlarmConfig {
	if config.CheckInterval <= 0 {
		config.CheckInterval = DefaultCheckInterval
	}
	if config.Message == "" {
		config.Message = DefaultAlarmMessage
	}
	return config
}
