package overlay

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"timetabs/internal/core/schedule"
)

// Config defines overlay visuals.
type Config struct {
	Opacity uint8
}

// Window is the undecorated window that announces a finished countdown or
// a fired alarm until the user dismisses it. Its methods touch widgets and
// must run on the fyne main goroutine.
type Window struct {
	window       fyne.Window
	config       Config
	background   *canvas.Rectangle
	messageLabel *canvas.Text
	timeLabel    *canvas.Text
	dismiss      *widget.Button
	flash        *fyne.Animation
	onDismiss    func()
	clock        schedule.Clock
}

var (
	accentColor = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
	textColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

const (
	overlayWidth  = float32(360)
	overlayHeight = float32(180)
	flashDuration = 400 * time.Millisecond
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates a hidden overlay window. The clock stamps each alert and
// defaults to the system clock.
func New(app fyne.App, clock schedule.Clock, config Config) *Window {
	if clock == nil {
		clock = schedule.SystemClock{}
	}

	window := app.NewWindow("timetabs")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(backgroundColor(config.Opacity))

	messageLabel := canvas.NewText("", textColor)
	messageLabel.Alignment = fyne.TextAlignCenter
	messageLabel.TextStyle = fyne.TextStyle{Bold: true}
	messageLabel.TextSize = 28

	timeLabel := canvas.NewText("", accentColor)
	timeLabel.Alignment = fyne.TextAlignCenter
	timeLabel.TextSize = 16

	overlay := &Window{
		window:       window,
		config:       config,
		background:   background,
		messageLabel: messageLabel,
		timeLabel:    timeLabel,
		clock:        clock,
	}
	overlay.dismiss = widget.NewButton("Dismiss", overlay.handleDismiss)

	content := container.NewVBox(
		layout.NewSpacer(),
		messageLabel,
		timeLabel,
		layout.NewSpacer(),
		container.NewCenter(overlay.dismiss),
	)
	window.SetContent(container.NewStack(background, container.NewPadded(content)))
	window.Resize(fyne.NewSize(overlayWidth, overlayHeight))

	return overlay
}

// Notify shows message with the time it was raised.
func (overlay *Window) Notify(message string) {
	overlay.messageLabel.Text = message
	overlay.messageLabel.Refresh()
	overlay.timeLabel.Text = overlay.clock.Now().Format(time.TimeOnly)
	overlay.timeLabel.Refresh()

	overlay.window.CenterOnScreen()
	overlay.window.Show()
	overlay.window.RequestFocus()
}

// Beep flashes the overlay background as a visual bell.
func (overlay *Window) Beep() {
	if overlay.flash != nil {
		overlay.flash.Stop()
	}
	resting := backgroundColor(overlay.config.Opacity)
	overlay.flash = canvas.NewColorRGBAAnimation(accentColor, resting, flashDuration, func(value color.Color) {
		overlay.background.FillColor = value
		overlay.background.Refresh()
	})
	overlay.flash.Start()
}

// Hide closes the overlay.
func (overlay *Window) Hide() {
	if overlay.flash != nil {
		overlay.flash.Stop()
		overlay.flash = nil
	}
	overlay.background.FillColor = backgroundColor(overlay.config.Opacity)
	overlay.background.Refresh()
	overlay.window.Hide()
}

// Message returns the message currently shown.
func (overlay *Window) Message() string {
	return overlay.messageLabel.Text
}

// SetOnDismiss sets the dismiss handler.
func (overlay *Window) SetOnDismiss(handler func()) {
	overlay.onDismiss = handler
}

// UpdateConfig updates overlay visuals.
func (overlay *Window) UpdateConfig(config Config) {
	overlay.config = config
	overlay.background.FillColor = backgroundColor(config.Opacity)
	canvas.Refresh(overlay.background)
}

func (overlay *Window) handleDismiss() {
	overlay.Hide()
	if overlay.onDismiss != nil {
		overlay.onDismiss()
	}
}

func backgroundColor(alpha uint8) color.Color {
	return color.NRGBA{R: 0, G: 0, B: 0, A: alpha}
}
