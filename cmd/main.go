package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"timetabs/internal/logger"
	"timetabs/internal/storage"
	"timetabs/internal/ui/preferences"
)

const appName = "timetabs"

type options struct {
	configPath string
	logLevel   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()
	defer logger.Sync()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Stopwatch, countdown timer and alarm in one window.",
		Long: `Opens a tabbed window with a stopwatch, a countdown timer and an alarm clock.

Settings are read from settings.yaml in the user config directory unless
--config points elsewhere. The countdown and alarm subcommands run the same
tools in the terminal without a window.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGUI(cmd.Context(), opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to settings file")
	rootCmd.PersistentFlags().StringVarP(&opts.logLevel, "log-level", "l", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newCountdownCommand(opts), newAlarmCommand(opts))
	return rootCmd
}

// loadSettings resolves the settings file and applies the log level.
// A broken settings file is logged and replaced by defaults.
func (opts *options) loadSettings(ctx context.Context) (preferences.Settings, string) {
	path := opts.configPath
	if path == "" {
		resolved, err := storage.DefaultPath(appName)
		if err != nil {
			logger.Warnf(ctx, "settings path: %v", err)
			return opts.applyLogLevel(ctx, preferences.DefaultSettings()), ""
		}
		path = resolved
	}

	settings, err := storage.LoadSettings(path)
	if err != nil {
		logger.WarnKV(ctx, "load settings, using defaults", "path", path, "error", err)
	}
	return opts.applyLogLevel(ctx, settings), path
}

func (opts *options) applyLogLevel(ctx context.Context, settings preferences.Settings) preferences.Settings {
	if opts.logLevel != "" {
		settings.LogLevel = opts.logLevel
	}
	level, ok := logger.ParseLogLevel(settings.LogLevel)
	if !ok {
		logger.Warnf(ctx, "unknown log level %q, using %s", settings.LogLevel, level)
	}
	logger.SetLevel(level)
	return settings
}
