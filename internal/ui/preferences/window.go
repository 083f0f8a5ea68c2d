package preferences

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Window handles the preferences UI.
type Window struct {
	window       fyne.Window
	settings     Settings
	onSave       func(Settings)
	refresh      *widget.Entry
	check        *widget.Entry
	countdownMsg *widget.Entry
	alarmMsg     *widget.Entry
	beep         *widget.Check
	notify       *widget.Check
	opacity      *widget.Slider
	logLevel     *widget.Select
	save         *widget.Button
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("timetabs Settings")

	prefs := &Window{
		window:       window,
		onSave:       onSave,
		refresh:      widget.NewEntry(),
		check:        widget.NewEntry(),
		countdownMsg: widget.NewEntry(),
		alarmMsg:     widget.NewEntry(),
		beep:         widget.NewCheck("Beep on alert", nil),
		notify:       widget.NewCheck("Also send desktop notification", nil),
		opacity:      widget.NewSlider(MinOverlayOpacity, MaxOverlayOpacity),
		logLevel:     widget.NewSelect(logLevels, nil),
	}
	prefs.opacity.Step = 0.01
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Refresh", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Stopwatch refresh"), prefs.refresh, widget.NewLabel("ms")),
		container.NewHBox(widget.NewLabel("Alarm check"), prefs.check, widget.NewLabel("ms")),
		widget.NewLabelWithStyle("Alerts", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewForm(
			widget.NewFormItem("Timer message", prefs.countdownMsg),
			widget.NewFormItem("Alarm message", prefs.alarmMsg),
		),
		prefs.beep,
		prefs.notify,
		widget.NewLabel("Alert window opacity"),
		prefs.opacity,
		container.NewHBox(widget.NewLabel("Log level"), prefs.logLevel),
	)

	prefs.save = widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	})
	buttons := container.NewHBox(prefs.save, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 480))
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.refresh.SetText(formatMillis(settings.StopwatchRefresh))
	prefs.check.SetText(formatMillis(settings.AlarmCheck))
	prefs.countdownMsg.SetText(settings.CountdownMessage)
	prefs.alarmMsg.SetText(settings.AlarmMessage)
	prefs.beep.SetChecked(settings.BeepEnabled)
	prefs.notify.SetChecked(settings.NotifyEnabled)
	prefs.opacity.Value = settings.OverlayOpacity
	prefs.opacity.Refresh()
	prefs.logLevel.SetSelected(settings.LogLevel)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if millis, ok := parsePositiveInt(prefs.refresh.Text); ok {
		settings.StopwatchRefresh = time.Duration(millis) * time.Millisecond
	}
	if millis, ok := parsePositiveInt(prefs.check.Text); ok {
		settings.AlarmCheck = time.Duration(millis) * time.Millisecond
	}
	if message := strings.TrimSpace(prefs.countdownMsg.Text); message != "" {
		settings.CountdownMessage = message
	}
	if message := strings.TrimSpace(prefs.alarmMsg.Text); message != "" {
		settings.AlarmMessage = message
	}

	settings.BeepEnabled = prefs.beep.Checked
	settings.NotifyEnabled = prefs.notify.Checked
	settings.OverlayOpacity = prefs.opacity.Value
	if prefs.logLevel.Selected != "" {
		settings.LogLevel = prefs.logLevel.Selected
	}

	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func formatMillis(value time.Duration) string {
	return fmt.Sprintf("%d", value.Milliseconds())
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
