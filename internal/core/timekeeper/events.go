package timekeeper

import "time"

// State represents the mode of a tool.
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StatePaused   State = "paused"
	StateArmed    State = "armed"
	StateFinished State = "finished"
)

// EventType defines the type of a tool event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
	EventLap         EventType = "lap"
	EventAlert       EventType = "alert"
)

// Event describes a change observers should render.
type Event struct {
	Type    EventType
	State   State
	Display string
	Message string
	At      time.Time
}

// Alerter raises the audible and visual cues when a countdown or alarm
// completes. Calls must not block.
type Alerter interface {
	Notify(message string)
	Beep()
}

type observers struct {
	handlers []func(Event)
}

// Subscribe registers handler for every future event. Handlers run
// synchronously on the goroutine that triggered the event.
func (list *observers) Subscribe(handler func(Event)) {
	if handler == nil {
		return
	}
	list.handlers = append(list.handlers, handler)
}

func (list *observers) emit(event Event) {
	for _, handler := range list.handlers {
		handler(event)
	}
}

type noopAlerter struct{}

func (noopAlerter) Notify(string) {}
func (noopAlerter) Beep()         {}
