package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"timetabs/internal/alert"
	"timetabs/internal/core/schedule"
	"timetabs/internal/core/timekeeper"
	"timetabs/internal/logger"
	"timetabs/internal/ui/preferences"
)

const loopBuffer = 16

func newCountdownCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "countdown [hours] [minutes] [seconds]",
		Short: "Count down in the terminal and ring the bell at zero.",
		Example: `  timetabs countdown 0 25 0
  timetabs countdown "" "" 90`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCountdown(cmd.Context(), opts, cmd.OutOrStdout(), fields(args))
		},
	}
}

func newAlarmCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "alarm <hour> [minute] [second]",
		Short: "Wait for a time of day and ring the bell.",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlarm(cmd.Context(), opts, cmd.OutOrStdout(), fields(args))
		},
	}
}

func runCountdown(ctx context.Context, opts *options, out io.Writer, input [3]string) error {
	settings, _ := opts.loadSettings(ctx)
	ctx = logger.WithName(ctx, "countdown")

	loop := schedule.NewLoop(loopBuffer)
	scheduler := schedule.NewTimerScheduler(loop.Dispatch)
	defer scheduler.Close()

	runCtx, finish := context.WithCancel(ctx)
	defer finish()

	countdown := newTerminalCountdown(ctx, scheduler, schedule.SystemClock{}, settings, out, finish)
	if err := countdown.Start(input[0], input[1], input[2]); err != nil {
		return err
	}
	fmt.Fprintln(out, countdown.Display())

	return waitLoop(ctx, loop.Run(runCtx), countdown.Pause)
}

func runAlarm(ctx context.Context, opts *options, out io.Writer, input [3]string) error {
	settings, _ := opts.loadSettings(ctx)
	ctx = logger.WithName(ctx, "alarm")

	loop := schedule.NewLoop(loopBuffer)
	scheduler := schedule.NewTimerScheduler(loop.Dispatch)
	defer scheduler.Close()

	runCtx, finish := context.WithCancel(ctx)
	defer finish()

	alarm := newTerminalAlarm(ctx, scheduler, schedule.SystemClock{}, settings, out, finish)
	if err := alarm.Set(input[0], input[1], input[2]); err != nil {
		return err
	}
	fmt.Fprintln(out, alarm.Label())

	return waitLoop(ctx, loop.Run(runCtx), alarm.Cancel)
}

// newTerminalCountdown builds a countdown that prints every tick to out and
// calls finish once it has alerted.
func newTerminalCountdown(
	ctx context.Context,
	scheduler schedule.Scheduler,
	clock schedule.Clock,
	settings preferences.Settings,
	out io.Writer,
	finish func(),
) *timekeeper.Countdown {
	countdown := timekeeper.NewCountdown(scheduler, clock, terminalAlerts(ctx, settings, out), settings.ToolsConfig().Countdown)
	countdown.SetLogger(logger.FromContext(ctx))
	countdown.Subscribe(func(event timekeeper.Event) {
		switch event.Type {
		case timekeeper.EventProgress:
			fmt.Fprintln(out, event.Display)
		case timekeeper.EventAlert:
			finish()
		}
	})
	return countdown
}

// newTerminalAlarm builds an alarm that calls finish once it has fired.
func newTerminalAlarm(
	ctx context.Context,
	scheduler schedule.Scheduler,
	clock schedule.Clock,
	settings preferences.Settings,
	out io.Writer,
	finish func(),
) *timekeeper.Alarm {
	alarm := timekeeper.NewAlarm(scheduler, clock, terminalAlerts(ctx, settings, out), settings.ToolsConfig().Alarm)
	alarm.SetLogger(logger.FromContext(ctx))
	alarm.Subscribe(func(event timekeeper.Event) {
		if event.Type == timekeeper.EventAlert {
			finish()
		}
	})
	return alarm
}

func terminalAlerts(ctx context.Context, settings preferences.Settings, out io.Writer) *alert.Multi {
	return alert.NewMulti(alertOptions(settings), alert.NewTerminal(out, logger.FromContext(ctx)))
}

// waitLoop interprets the loop result: finishing normally and being
// interrupted by a signal are both clean exits.
func waitLoop(ctx context.Context, err error, stop func()) error {
	if ctx.Err() != nil {
		stop()
		logger.Infof(ctx, "interrupted")
		return nil
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func fields(args []string) [3]string {
	var input [3]string
	copy(input[:], args)
	return input
}
