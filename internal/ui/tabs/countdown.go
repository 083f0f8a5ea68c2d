package tabs

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"timetabs/internal/core/timekeeper"
)

type countdownTab struct {
	countdown *timekeeper.Countdown
	report    ErrorReporter
	hours     *widget.Entry
	minutes   *widget.Entry
	seconds   *widget.Entry
	display   *canvas.Text
	start     *widget.Button
	pause     *widget.Button
	resume    *widget.Button
	reset     *widget.Button
	content   fyne.CanvasObject
}

func newCountdownTab(countdown *timekeeper.Countdown, report ErrorReporter) *countdownTab {
	tab := &countdownTab{
		countdown: countdown,
		report:    report,
		hours:     newNumberEntry("h"),
		minutes:   newNumberEntry("m"),
		seconds:   newNumberEntry("s"),
		display:   newDisplay(countdown.Display()),
	}

	tab.start = widget.NewButton("Start", tab.handleStart)
	tab.pause = widget.NewButton("Pause", countdown.Pause)
	tab.resume = widget.NewButton("Resume", countdown.Resume)
	tab.reset = widget.NewButton("Reset", countdown.Reset)

	inputs := container.NewGridWithColumns(6,
		widget.NewLabel("Hours:"), tab.hours,
		widget.NewLabel("Minutes:"), tab.minutes,
		widget.NewLabel("Seconds:"), tab.seconds,
	)
	buttons := container.NewCenter(container.NewHBox(tab.start, tab.pause, tab.resume, tab.reset))
	tab.content = container.NewVBox(inputs, container.NewCenter(tab.display), buttons)

	countdown.Subscribe(tab.handleEvent)
	return tab
}

func (tab *countdownTab) handleStart() {
	if err := tab.countdown.Start(tab.hours.Text, tab.minutes.Text, tab.seconds.Text); err != nil {
		reportInputError(tab.report, err)
	}
}

func (tab *countdownTab) handleEvent(event timekeeper.Event) {
	setDisplay(tab.display, event.Display)
	if event.Type != timekeeper.EventStateChange {
		return
	}
	if event.State == timekeeper.StateFinished {
		setDisplayColor(tab.display, theme.Color(theme.ColorNamePrimary))
		return
	}
	setDisplayColor(tab.display, theme.Color(theme.ColorNameForeground))
}

func newNumberEntry(placeholder string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder)
	return entry
}
