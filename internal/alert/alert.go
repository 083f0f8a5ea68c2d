// Package alert provides implementations of the timekeeper alert capability.
package alert

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

const bell = "\a"

// Alerter raises a visual message and an audible cue.
type Alerter interface {
	Notify(message string)
	Beep()
}

// Terminal prints messages and rings the terminal bell.
type Terminal struct {
	mu  sync.Mutex
	out io.Writer
	log *zap.SugaredLogger
}

// NewTerminal creates a terminal alerter writing to out.
func NewTerminal(out io.Writer, log *zap.SugaredLogger) *Terminal {
	return &Terminal{out: out, log: log}
}

// Notify prints message on its own line.
func (terminal *Terminal) Notify(message string) {
	terminal.write(fmt.Sprintln(message))
}

// Beep writes the BEL control character.
func (terminal *Terminal) Beep() {
	terminal.write(bell)
}

func (terminal *Terminal) write(text string) {
	terminal.mu.Lock()
	defer terminal.mu.Unlock()
	if _, err := io.WriteString(terminal.out, text); err != nil && terminal.log != nil {
		terminal.log.Warnw("write alert", "error", err)
	}
}

// Options selects which channels of a Multi alerter are active.
type Options struct {
	Notify bool
	Beep   bool
}

// Multi forwards alerts to a primary alerter and optional extras. The
// primary always shows the message so an alert is never silent; Options
// gates its beep and every channel of the extras.
type Multi struct {
	mu      sync.Mutex
	options Options
	primary Alerter
	extras  []Alerter
}

// NewMulti creates a fan-out alerter.
func NewMulti(options Options, primary Alerter, extras ...Alerter) *Multi {
	return &Multi{options: options, primary: primary, extras: extras}
}

// SetOptions switches channels on or off.
func (multi *Multi) SetOptions(options Options) {
	multi.mu.Lock()
	defer multi.mu.Unlock()
	multi.options = options
}

// Notify shows message on the primary and, when enabled, on the extras.
func (multi *Multi) Notify(message string) {
	options := multi.currentOptions()
	if multi.primary != nil {
		multi.primary.Notify(message)
	}
	if !options.Notify {
		return
	}
	for _, alerter := range multi.extras {
		alerter.Notify(message)
	}
}

// Beep forwards the audible cue when beeping is enabled.
func (multi *Multi) Beep() {
	if !multi.currentOptions().Beep {
		return
	}
	if multi.primary != nil {
		multi.primary.Beep()
	}
	for _, alerter := range multi.extras {
		alerter.Beep()
	}
}

func (multi *Multi) currentOptions() Options {
	multi.mu.Lock()
	defer multi.mu.Unlock()
	return multi.options
}
