package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMillis(t *testing.T) {
	assert.Equal(t, Millis(1500), FromSeconds(1.5))
	assert.Equal(t, 1.5, Millis(1500).Seconds())
	assert.Equal(t, 1, Millis(1999).WholeSeconds())
	assert.Equal(t, 2, Millis(1500).RoundSeconds())
	assert.Equal(t, 1, Millis(1499).RoundSeconds())
	assert.Equal(t, 0, Millis(-200).RoundSeconds(), "negative remaining clamps to zero")
}

func TestSnapshot_Idle(t *testing.T) {
	s := NewSession()
	snap := s.Snapshot(FromSeconds(12))

	assert.Equal(t, WindowIdle, snap.Window)
	assert.Equal(t, NoFlight, snap.Flight)
	assert.Equal(t, 540.0, snap.WorkingRem, "idle window shows the full limit")
	assert.Equal(t, 360.0, snap.FlightRem)
	assert.Zero(t, snap.WindowFrac)
	assert.Nil(t, snap.LastFlight)
	assert.False(t, snap.BackHint)
}

func TestSnapshot_RunningAndExpired(t *testing.T) {
	s := NewSession()
	s.PressLap(FromSeconds(10))

	snap := s.Snapshot(FromSeconds(110))
	assert.Equal(t, WindowRunning, snap.Window)
	assert.InDelta(t, 440.0, snap.WorkingRem, 0.001)
	assert.InDelta(t, 100.0/540.0, snap.WindowFrac, 0.001)

	tick(s, 551, 0)
	snap = s.Snapshot(FromSeconds(600))
	assert.Equal(t, WindowExpired, snap.Window)
	assert.Zero(t, snap.WorkingRem)
	assert.Equal(t, 1.0, snap.WindowFrac)
}

func TestSnapshot_FlightFreezesOnEnd(t *testing.T) {
	s := NewSession()
	s.PressLap(0)
	tick(s, 10, 100)

	snap := s.Snapshot(FromSeconds(70))
	assert.InDelta(t, 300.0, snap.FlightRem, 0.001, "live remaining while flying")

	s.Advance(FromSeconds(100), Inputs{LandingDown: true})
	require.Equal(t, FlightEnded, s.flightPhase)

	snap = s.Snapshot(FromSeconds(200))
	assert.InDelta(t, 270.0, snap.FlightRem, 0.001, "remaining freezes at the landing time")
	require.NotNil(t, snap.LastFlight)
	assert.Equal(t, 90, snap.LastFlight.Seconds)
}

func TestSnapshot_LastFlightIsACopy(t *testing.T) {
	s := NewSession()
	s.PressLap(0)
	tick(s, 1, 100)
	s.Advance(FromSeconds(31), Inputs{LandingDown: true})

	snap := s.Snapshot(FromSeconds(32))
	require.NotNil(t, snap.LastFlight)
	snap.LastFlight.Seconds = 9999

	assert.Equal(t, 30, s.lastFlight.Seconds, "mutating a snapshot must not touch the session")
}

func TestHardReset_PreservesSwitchEdgeMemory(t *testing.T) {
	s := NewSession()
	s.PressLap(0)
	tick(s, 1, 100)

	// Land, keep the switch held down, hard-reset, start a new window and
	// launch: the held switch must not register as a fresh landing edge.
	s.Advance(FromSeconds(20), Inputs{LandingDown: true})
	s.PressBack(FromSeconds(21))
	s.PressBack(FromSeconds(22))
	require.Equal(t, WindowIdle, s.windowPhase)

	s.PressLap(FromSeconds(23))
	s.Advance(FromSeconds(24), Inputs{Elevator: 100, LandingDown: true})
	assert.Equal(t, FlightInProgress, s.flightPhase,
		"a switch held across a hard reset is not a landing edge")
}
