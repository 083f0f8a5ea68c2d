package tabs

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"timetabs/internal/core/timekeeper"
)

type alarmTab struct {
	alarm   *timekeeper.Alarm
	report  ErrorReporter
	hour    *widget.Entry
	minute  *widget.Entry
	second  *widget.Entry
	label   *widget.Label
	set     *widget.Button
	cancel  *widget.Button
	content fyne.CanvasObject
}

func newAlarmTab(alarm *timekeeper.Alarm, report ErrorReporter) *alarmTab {
	tab := &alarmTab{
		alarm:  alarm,
		report: report,
		hour:   newNumberEntry("0-23"),
		minute: newNumberEntry("0-59"),
		second: newNumberEntry("0-59"),
		label:  widget.NewLabelWithStyle(alarm.Label(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
	}

	tab.set = widget.NewButton("Set Alarm", tab.handleSet)
	tab.cancel = widget.NewButton("Cancel Alarm", alarm.Cancel)

	inputs := container.NewGridWithColumns(6,
		widget.NewLabel("Hour (24h):"), tab.hour,
		widget.NewLabel("Minute:"), tab.minute,
		widget.NewLabel("Second:"), tab.second,
	)
	tab.content = container.NewVBox(inputs, tab.set, tab.cancel, tab.label)

	alarm.Subscribe(tab.handleEvent)
	return tab
}

func (tab *alarmTab) handleSet() {
	if err := tab.alarm.Set(tab.hour.Text, tab.minute.Text, tab.second.Text); err != nil {
		reportInputError(tab.report, err)
	}
}

func (tab *alarmTab) handleEvent(event timekeeper.Event) {
	tab.label.SetText(event.Display)
}
