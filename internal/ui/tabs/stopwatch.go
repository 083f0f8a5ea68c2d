package tabs

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"timetabs/internal/core/timekeeper"
)

const displayTextSize = 48

type stopwatchTab struct {
	stopwatch *timekeeper.Stopwatch
	display   *canvas.Text
	laps      *widget.List
	start     *widget.Button
	stop      *widget.Button
	lap       *widget.Button
	reset     *widget.Button
	content   fyne.CanvasObject
}

func newStopwatchTab(stopwatch *timekeeper.Stopwatch) *stopwatchTab {
	tab := &stopwatchTab{
		stopwatch: stopwatch,
		display:   newDisplay(stopwatch.Display()),
	}

	tab.laps = widget.NewList(
		func() int { return len(stopwatch.LapTimes()) },
		func() fyne.CanvasObject { return widget.NewLabel("Lap 00: 00:00.00") },
		func(id widget.ListItemID, item fyne.CanvasObject) {
			laps := stopwatch.Laps()
			if id < len(laps) {
				item.(*widget.Label).SetText(laps[id])
			}
		},
	)

	tab.start = widget.NewButton("Start", stopwatch.Start)
	tab.stop = widget.NewButton("Stop", stopwatch.Stop)
	tab.lap = widget.NewButton("Lap", stopwatch.Lap)
	tab.reset = widget.NewButton("Reset", stopwatch.Reset)

	buttons := container.NewCenter(container.NewHBox(tab.start, tab.stop, tab.lap, tab.reset))
	top := container.NewVBox(container.NewCenter(tab.display), buttons)
	tab.content = container.NewBorder(top, nil, nil, nil, tab.laps)

	stopwatch.Subscribe(tab.handleEvent)
	return tab
}

func (tab *stopwatchTab) handleEvent(event timekeeper.Event) {
	setDisplay(tab.display, event.Display)
	switch event.Type {
	case timekeeper.EventLap:
		tab.laps.Refresh()
		tab.laps.ScrollToBottom()
	case timekeeper.EventStateChange:
		tab.laps.Refresh()
	}
}

func newDisplay(text string) *canvas.Text {
	display := canvas.NewText(text, theme.Color(theme.ColorNameForeground))
	display.Alignment = fyne.TextAlignCenter
	display.TextStyle = fyne.TextStyle{Monospace: true}
	display.TextSize = displayTextSize
	return display
}

func setDisplay(display *canvas.Text, text string) {
	if display.Text == text {
		return
	}
	display.Text = text
	display.Refresh()
}

func setDisplayColor(display *canvas.Text, value color.Color) {
	display.Color = value
	display.Refresh()
}
