package timekeeper

import (
	"time"

	"timetabs/internal/core/schedule"
)

var epoch = time.Date(2024, time.June, 12, 12, 0, 0, 0, time.Local)

type recordingAlerter struct {
	messages []string
	beeps    int
}

func (alerter *recordingAlerter) Notify(message string) {
	alerter.messages = append(alerter.messages, message)
}

func (alerter *recordingAlerter) Beep() {
	alerter.beeps++
}

func newManual() *schedule.Manual {
	return schedule.NewManual(epoch)
}
