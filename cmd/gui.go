package main

import (
	"context"
	"errors"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"timetabs/internal/alert"
	"timetabs/internal/core/schedule"
	"timetabs/internal/core/timekeeper"
	"timetabs/internal/logger"
	"timetabs/internal/platform"
	"timetabs/internal/storage"
	"timetabs/internal/ui/overlay"
	"timetabs/internal/ui/preferences"
	"timetabs/internal/ui/tabs"
	"timetabs/internal/ui/tray"
	"timetabs/resources"
)

func runGUI(ctx context.Context, opts *options) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if !errors.Is(err, platform.ErrAlreadyRunning) {
			return err
		}
		logger.Infof(ctx, "already running, asking it to show its window")
		if err := platform.NotifyRunning(ctx, appName); err != nil {
			logger.Warnf(ctx, "hand-off: %v", err)
		}
		return nil
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, settingsPath := opts.loadSettings(ctx)
	logger.Debugf(ctx, "single instance guard on %s", guard.Address())

	fyneApp := app.NewWithID("com.timetabs.app")
	fyneApp.SetIcon(resources.MustIcon(resources.AppIcon))

	scheduler := schedule.NewTimerScheduler(fyne.Do)
	defer scheduler.Close()
	clock := schedule.SystemClock{}

	overlayWindow := overlay.New(fyneApp, clock, overlay.Config{Opacity: settings.OverlayAlpha()})
	extraAlerts := []alert.Alerter{alert.NewTerminal(os.Stdout, logger.Named("alert"))}

	desktopApp, hasTray := fyneApp.(desktop.App)
	var trayManager *tray.Manager
	if hasTray {
		trayManager = tray.New(fyneApp, desktopApp, tray.Icons{
			Active: resources.MustIcon(resources.ActiveIcon),
			Idle:   resources.MustIcon(resources.IdleIcon),
		}, tray.Callbacks{})
		extraAlerts = append(extraAlerts, trayManager)
	} else {
		logger.Warnf(ctx, "system tray unsupported on this platform")
	}
	// The overlay always shows a finished countdown or a fired alarm.
	alerts := alert.NewMulti(alertOptions(settings), overlayWindow, extraAlerts...)

	config := settings.ToolsConfig()
	stopwatch := timekeeper.NewStopwatch(scheduler, clock, config.Stopwatch)
	stopwatch.SetLogger(logger.Named("stopwatch"))
	countdown := timekeeper.NewCountdown(scheduler, clock, alerts, config.Countdown)
	countdown.SetLogger(logger.Named("countdown"))
	alarm := timekeeper.NewAlarm(scheduler, clock, alerts, config.Alarm)
	alarm.SetLogger(logger.Named("alarm"))

	mainWindow := tabs.New(fyneApp, tabs.Tools{
		Stopwatch: stopwatch,
		Countdown: countdown,
		Alarm:     alarm,
	})
	mainWindow.FyneWindow().SetMaster()
	overlayWindow.SetOnDismiss(mainWindow.Show)

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		config := settings.ToolsConfig()
		stopwatch.UpdateConfig(config.Stopwatch)
		countdown.UpdateConfig(config.Countdown)
		alarm.UpdateConfig(config.Alarm)
		overlayWindow.UpdateConfig(overlay.Config{Opacity: settings.OverlayAlpha()})
		alerts.SetOptions(alertOptions(settings))
		if level, ok := logger.ParseLogLevel(settings.LogLevel); ok {
			logger.SetLevel(level)
		}
		if settingsPath == "" {
			return
		}
		if err := storage.SaveSettings(settingsPath, settings); err != nil {
			logger.ErrorKV(ctx, "save settings", "path", settingsPath, "error", err)
		}
	})

	if trayManager != nil {
		// Closing the window keeps the tools running in the tray.
		mainWindow.SetCloseIntercept(mainWindow.Hide)
		wireTray(fyneApp, trayManager, mainWindow, prefsWindow, stopwatch, countdown, alarm)
	}

	serveCtx, stopServe := context.WithCancel(ctx)
	defer stopServe()
	go func() {
		err := guard.Serve(serveCtx, func() {
			fyne.Do(func() {
				mainWindow.Show()
				mainWindow.FyneWindow().RequestFocus()
			})
		})
		if err != nil {
			logger.Warnf(ctx, "instance guard: %v", err)
		}
	}()

	go func() {
		<-ctx.Done()
		fyne.Do(fyneApp.Quit)
	}()

	mainWindow.Show()
	fyneApp.Run()
	return nil
}

func wireTray(
	fyneApp fyne.App,
	trayManager *tray.Manager,
	mainWindow *tabs.Window,
	prefsWindow *preferences.Window,
	stopwatch *timekeeper.Stopwatch,
	countdown *timekeeper.Countdown,
	alarm *timekeeper.Alarm,
) {
	refresh := func(timekeeper.Event) {
		trayManager.SetStatus(tray.BuildStatus(stopwatch.Snapshot(), countdown.Snapshot(), alarm.Snapshot()))
	}
	stopwatch.Subscribe(refresh)
	countdown.Subscribe(refresh)
	alarm.Subscribe(refresh)

	trayManager.SetCallbacks(tray.Callbacks{
		OnShow: mainWindow.Show,
		OnToggleStopwatch: func() {
			if stopwatch.Running() {
				stopwatch.Stop()
				return
			}
			stopwatch.Start()
		},
		OnPauseCountdown: countdown.Pause,
		OnCancelAlarm:    alarm.Cancel,
		OnPreferences:    prefsWindow.Show,
		OnQuit:           fyneApp.Quit,
	})
}

func alertOptions(settings preferences.Settings) alert.Options {
	return alert.Options{Notify: settings.NotifyEnabled, Beep: settings.BeepEnabled}
}
