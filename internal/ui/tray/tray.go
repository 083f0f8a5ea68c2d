package tray

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow            func()
	OnToggleStopwatch func()
	OnPauseCountdown  func()
	OnCancelAlarm     func()
	OnPreferences     func()
	OnQuit            func()
}

// Status describes what the tray menu shows for each tool.
type Status struct {
	Stopwatch string
	Countdown string
	Alarm     string
}

// Icons are swapped depending on whether any tool is active.
type Icons struct {
	Active fyne.Resource
	Idle   fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	app       desktop.App
	notifier  fyne.App
	callbacks Callbacks
	icons     Icons
	status    Status
	active    bool

	stopwatchItem *fyne.MenuItem
	countdownItem *fyne.MenuItem
	alarmItem     *fyne.MenuItem
}

// New creates a tray manager with the provided callbacks.
func New(app fyne.App, desktopApp desktop.App, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       desktopApp,
		notifier:  app,
		callbacks: callbacks,
		icons:     icons,
		status: Status{
			Stopwatch: "stopped",
			Countdown: "idle",
			Alarm:     "not set",
		},
	}

	manager.stopwatchItem = fyne.NewMenuItem("", func() { call(manager.callbacks.OnToggleStopwatch) })
	manager.countdownItem = fyne.NewMenuItem("", func() { call(manager.callbacks.OnPauseCountdown) })
	manager.alarmItem = fyne.NewMenuItem("", func() { call(manager.callbacks.OnCancelAlarm) })

	manager.refreshMenu()
	manager.refreshIcon()
	return manager
}

// SetStatus updates the per-tool status lines and the tray icon.
func (manager *Manager) SetStatus(status Status, active bool) {
	if status == manager.status && active == manager.active {
		return
	}
	iconChanged := active != manager.active
	manager.status = status
	manager.active = active
	manager.refreshMenu()
	if iconChanged {
		manager.refreshIcon()
	}
}

// SetCallbacks replaces the action handlers and rebuilds the menu.
func (manager *Manager) SetCallbacks(callbacks Callbacks) {
	manager.callbacks = callbacks
	manager.refreshMenu()
}

// Notify sends a desktop notification.
func (manager *Manager) Notify(message string) {
	if manager.notifier == nil {
		return
	}
	manager.notifier.SendNotification(fyne.NewNotification("timetabs", message))
}

// Beep is a no-op; the tray has no audible channel.
func (manager *Manager) Beep() {}

// Menu returns the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.buildMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.buildMenu())
	}
}

func (manager *Manager) refreshIcon() {
	if manager.app == nil {
		return
	}
	icon := manager.icons.Idle
	if manager.active {
		icon = manager.icons.Active
	}
	if icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

func (manager *Manager) buildMenu() *fyne.Menu {
	manager.stopwatchItem.Label = "Stopwatch: " + manager.status.Stopwatch
	manager.stopwatchItem.Disabled = manager.callbacks.OnToggleStopwatch == nil

	manager.countdownItem.Label = "Timer: " + manager.status.Countdown
	manager.countdownItem.Disabled = !strings.HasPrefix(manager.status.Countdown, "running")

	manager.alarmItem.Label = "Alarm: " + manager.status.Alarm
	manager.alarmItem.Disabled = !strings.HasPrefix(manager.status.Alarm, "at ")

	// fyne appends its own Quit item unless one is flagged IsQuit.
	quit := fyne.NewMenuItem("Quit", func() { call(manager.callbacks.OnQuit) })
	quit.IsQuit = true

	return fyne.NewMenu("timetabs",
		fyne.NewMenuItem("Show", func() { call(manager.callbacks.OnShow) }),
		fyne.NewMenuItemSeparator(),
		manager.stopwatchItem,
		manager.countdownItem,
		manager.alarmItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", func() { call(manager.callbacks.OnPreferences) }),
		quit,
	)
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}
