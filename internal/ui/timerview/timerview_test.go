package timerview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openf3l/soartimer/internal/core"
	"github.com/openf3l/soartimer/internal/ui/styles"
)

func TestView_Render(t *testing.T) {
	v := New(styles.New())

	t.Run("idle shows full limits and no last flight", func(t *testing.T) {
		snap := core.Snapshot{
			Window:     core.WindowIdle,
			Flight:     core.NoFlight,
			WorkingRem: 540,
			FlightRem:  360,
		}
		out := v.Render(snap, "", 0)

		assert.Contains(t, out, "WORKING TIME")
		assert.Contains(t, out, "FLIGHT TIME")
		assert.Contains(t, out, "9:00.0")
		assert.Contains(t, out, "6:00.0")
		assert.Contains(t, out, "last flight: --")
	})

	t.Run("armed badge while ready to launch", func(t *testing.T) {
		snap := core.Snapshot{
			Window:     core.WindowRunning,
			Flight:     core.NoFlight,
			ArmLaunch:  true,
			WorkingRem: 300,
			FlightRem:  360,
		}
		assert.Contains(t, v.Render(snap, "", 0), "LAUNCH ARMED")
	})

	t.Run("no armed badge mid-flight", func(t *testing.T) {
		snap := core.Snapshot{
			Window:     core.WindowRunning,
			Flight:     core.FlightInProgress,
			WorkingRem: 300,
			FlightRem:  200,
		}
		assert.NotContains(t, v.Render(snap, "", 0), "LAUNCH ARMED")
	})

	t.Run("last flight and back hint", func(t *testing.T) {
		snap := core.Snapshot{
			Window:     core.WindowRunning,
			Flight:     core.FlightEnded,
			WorkingRem: 100,
			FlightRem:  12.7,
			LastFlight: &core.FlightResult{Duration: 347.3, Seconds: 347},
			BackHint:   true,
		}
		out := v.Render(snap, "", 0)

		assert.Contains(t, out, "5:47.3")
		assert.Contains(t, out, "5 minutes 47 seconds")
		assert.Contains(t, out, "reset everything")
	})

	t.Run("progress bar is included when given", func(t *testing.T) {
		snap := core.Snapshot{Window: core.WindowRunning, WorkingRem: 270, WindowFrac: 0.5}
		assert.Contains(t, v.Render(snap, "##PROGRESS##", 0), "##PROGRESS##")
	})
}
