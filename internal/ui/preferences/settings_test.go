package preferences

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"timetabs/internal/core/model"
)

func TestToolsConfigDefaults(t *testing.T) {
	t.Parallel()

	require.Equal(t, model.DefaultToolsConfig(), DefaultSettings().ToolsConfig())

	// Zero values fall back to defaults.
	config := Settings{AlarmCheck: 250 * time.Millisecond}.ToolsConfig()
	require.Equal(t, 250*time.Millisecond, config.Alarm.CheckInterval)
	require.Equal(t, time.Second, config.Countdown.TickInterval)
	require.Equal(t, model.DefaultRefreshInterval, config.Stopwatch.RefreshInterval)
	require.Equal(t, model.DefaultAlarmMessage, config.Alarm.Message)
}

func TestOverlayAlpha(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint8(255), Settings{OverlayOpacity: 1.4}.OverlayAlpha())
	require.Equal(t, uint8(0), Settings{OverlayOpacity: -1}.OverlayAlpha())
	require.Equal(t, uint8(127), Settings{OverlayOpacity: 0.5}.OverlayAlpha())
}
