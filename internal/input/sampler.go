// Package input defines the sensor-side contract of the timer: one frame of
// sampled channel state per tick, plus normalization of the raw elevator
// reading. Gesture presses are not part of a frame; the host delivers them
// as one-shot events.
package input

import "math"

// Frame is one tick's raw sensor sample.
type Frame struct {
	// Elevator is the raw axis reading in the source's own range; nil
	// means the channel was missing this tick.
	Elevator *float64

	// LandingDown is true while the two-position landing switch sits in
	// its active position.
	LandingDown bool

	// Query is true while the momentary query button is held.
	Query bool
}

// Gesture is a one-shot UI gesture event.
type Gesture int

const (
	GestureBack Gesture = iota // confirm/back press
	GestureLap                 // start/lap press
)

// Rescale maps a raw reading from [lo, hi] onto the 0..100 percentage scale,
// clamping the result. A degenerate range yields zero.
func Rescale(raw, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return clampPercent((raw - lo) / (hi - lo) * 100)
}

// NormalizeElevator converts a raw elevator sample to the 0..100 percentage
// the launch detector compares against. Missing and non-finite readings
// degrade to zero, which can never trigger a launch.
func NormalizeElevator(raw *float64) float64 {
	if raw == nil {
		return 0
	}
	v := *raw
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return clampPercent(v)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
