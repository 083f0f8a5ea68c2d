package tabs

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"timetabs/internal/core/timekeeper"
)

// Tools groups the state machines shown in the window.
type Tools struct {
	Stopwatch *timekeeper.Stopwatch
	Countdown *timekeeper.Countdown
	Alarm     *timekeeper.Alarm
}

// ErrorReporter surfaces a rejected input to the user.
type ErrorReporter func(title, message string)

// Window is the main tabbed window.
type Window struct {
	window    fyne.Window
	tabs      *container.AppTabs
	stopwatch *stopwatchTab
	countdown *countdownTab
	alarm     *alarmTab
}

const (
	windowWidth  = float32(400)
	windowHeight = float32(500)
)

// New creates the window with one tab per tool.
func New(app fyne.App, tools Tools) *Window {
	window := app.NewWindow("Timer, Stopwatch, and Alarm")

	view := &Window{window: window}
	report := func(title, message string) {
		dialog.ShowInformation(title, message, window)
	}

	view.stopwatch = newStopwatchTab(tools.Stopwatch)
	view.countdown = newCountdownTab(tools.Countdown, report)
	view.alarm = newAlarmTab(tools.Alarm, report)

	view.tabs = container.NewAppTabs(
		container.NewTabItem("Stopwatch", view.stopwatch.content),
		container.NewTabItem("Timer", view.countdown.content),
		container.NewTabItem("Alarm", view.alarm.content),
	)
	window.SetContent(view.tabs)
	window.Resize(fyne.NewSize(windowWidth, windowHeight))

	return view
}

// Show displays and focuses the window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// Hide hides the window without stopping any tool.
func (view *Window) Hide() {
	view.window.Hide()
}

// SetCloseIntercept replaces the default close behaviour.
func (view *Window) SetCloseIntercept(handler func()) {
	view.window.SetCloseIntercept(handler)
}

// SelectTab switches to the tab at index (0 stopwatch, 1 timer, 2 alarm).
func (view *Window) SelectTab(index int) {
	view.tabs.SelectIndex(index)
}

// FyneWindow exposes the underlying window for dialogs.
func (view *Window) FyneWindow() fyne.Window {
	return view.window
}

func reportInputError(report ErrorReporter, err error) {
	switch {
	case errors.Is(err, timekeeper.ErrInvalidDuration):
		report("Invalid time", "Please set a time greater than 0.")
	case errors.Is(err, timekeeper.ErrInvalidInput):
		report("Invalid input", "Please enter valid numbers.\n"+err.Error())
	default:
		report("Error", err.Error())
	}
}
